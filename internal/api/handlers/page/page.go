package page

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Index 提供內嵌的單頁前端
// 純展示層：收集三個輸入、呼叫 /generate-recipe、渲染結果，不含任何決策邏輯
func Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
}

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Recipe Generator</title>
    <style>
        body { font-family: 'Segoe UI', sans-serif; background: linear-gradient(135deg, #1e3c72 0%, #2a5298 100%); min-height: 100vh; margin: 0; color: #333; }
        .container { max-width: 960px; margin: 0 auto; padding: 2rem 1rem; }
        .header { background: linear-gradient(135deg, #ff6b35 0%, #f7931e 100%); border-radius: 16px; padding: 2rem; text-align: center; color: #fff; margin-bottom: 2rem; }
        .card { background: #fff; border-radius: 16px; padding: 1.5rem; margin-bottom: 1.5rem; box-shadow: 0 8px 24px rgba(0,0,0,0.2); }
        .card h2 { margin-top: 0; }
        label { display: block; font-weight: 600; margin: 1rem 0 0.3rem; }
        textarea, select { width: 100%; padding: 0.6rem; border: 2px solid #ccc; border-radius: 8px; font-size: 1rem; box-sizing: border-box; }
        button { width: 100%; margin-top: 1.2rem; padding: 0.9rem; border: 0; border-radius: 8px; background: linear-gradient(90deg, #28a745, #2a5298); color: #fff; font-size: 1.1rem; font-weight: 700; cursor: pointer; }
        button:disabled { opacity: 0.6; cursor: wait; }
        .tag { display: inline-block; background: #ffe8e0; color: #dc3545; border-radius: 999px; padding: 0.25rem 0.7rem; margin: 0.15rem; font-size: 0.9rem; }
        .row { display: flex; justify-content: space-between; padding: 0.4rem 0; border-bottom: 1px solid #eee; }
        .hidden { display: none; }
        .error { color: #dc3545; font-weight: 600; margin-top: 1rem; }
        ol li { margin-bottom: 0.4rem; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Recipe Generator</h1>
            <p>Personalized recipes with nutrition analysis and a smart shopping list</p>
        </div>

        <div class="card">
            <h2>Recipe Preferences</h2>
            <form id="recipeForm">
                <label for="ingredients">Available Ingredients</label>
                <textarea id="ingredients" rows="3" placeholder="e.g., chicken, rice, tomatoes, onions, garlic"></textarea>

                <label for="dietaryPref">Dietary Preference</label>
                <select id="dietaryPref">
                    <option>High-Protein</option><option>Low-Carb</option><option>Vegetarian</option>
                    <option>Vegan</option><option>Gluten-Free</option><option>Dairy-Free</option>
                    <option>Balanced</option><option>Keto</option>
                </select>

                <label for="cuisineType">Cuisine Type</label>
                <select id="cuisineType">
                    <option>Asian</option><option>Italian</option><option>Mexican</option>
                    <option>Indian</option><option>Mediterranean</option><option>American</option>
                    <option>Fusion</option>
                </select>

                <button type="submit" id="generateBtn">Generate Recipe</button>
            </form>
            <div id="error" class="error hidden"></div>
        </div>

        <div id="results" class="hidden">
            <div class="card">
                <h2 id="recipeName"></h2>
                <div id="recipeMeta"></div>
                <h3>Ingredients</h3>
                <div id="ingredientsList"></div>
                <h3>Cooking Steps</h3>
                <ol id="cookingSteps"></ol>
            </div>
            <div class="card">
                <h2>Nutrition Analysis</h2>
                <div id="nutritionInfo"></div>
            </div>
            <div class="card">
                <h2>Shopping List</h2>
                <div class="row"><strong>Budget Estimate</strong><strong id="budgetEstimate"></strong></div>
                <div id="shoppingItems"></div>
            </div>
        </div>
    </div>

    <script>
        document.getElementById('recipeForm').addEventListener('submit', async function (e) {
            e.preventDefault();

            const ingredients = document.getElementById('ingredients').value
                .split(',')
                .map(function (s) { return s.trim(); })
                .filter(function (s) { return s.length > 0; });

            const errorBox = document.getElementById('error');
            errorBox.classList.add('hidden');

            if (ingredients.length < 2) {
                errorBox.textContent = 'Please enter at least 2 ingredients';
                errorBox.classList.remove('hidden');
                return;
            }

            const btn = document.getElementById('generateBtn');
            btn.disabled = true;

            try {
                const response = await fetch('/generate-recipe', {
                    method: 'POST',
                    headers: { 'Content-Type': 'application/json' },
                    body: JSON.stringify({
                        ingredients: ingredients,
                        dietary_preferences: document.getElementById('dietaryPref').value,
                        cuisine_type: document.getElementById('cuisineType').value
                    })
                });

                const data = await response.json();
                if (!response.ok || !data.success) {
                    throw new Error(data.error || 'Failed to generate recipe');
                }
                render(data);
            } catch (err) {
                errorBox.textContent = err.message;
                errorBox.classList.remove('hidden');
            } finally {
                btn.disabled = false;
            }
        });

        function render(data) {
            document.getElementById('recipeName').textContent = data.recipe.name;
            document.getElementById('recipeMeta').innerHTML =
                '<span class="tag">' + data.recipe.cuisine + '</span>' +
                '<span class="tag">' + data.recipe.dietary_type + '</span>' +
                '<span class="tag">' + data.recipe.cooking_time + '</span>' +
                '<span class="tag">' + data.recipe.difficulty + '</span>';

            document.getElementById('ingredientsList').innerHTML = data.recipe.ingredients
                .map(function (ing) { return '<span class="tag">' + ing + '</span>'; }).join('');

            document.getElementById('cookingSteps').innerHTML = data.recipe.steps
                .map(function (step) { return '<li>' + step + '</li>'; }).join('');

            const n = data.nutrition;
            document.getElementById('nutritionInfo').innerHTML =
                row('Calories', n.calories + ' kcal') +
                row('Protein', n.protein) +
                row('Carbohydrates', n.carbs) +
                row('Fat', n.fat) +
                row('Fiber', n.fiber) +
                row('Health Score', n.health_score + '/10') +
                row('Dietary Compliance', n.dietary_compliance);

            document.getElementById('budgetEstimate').textContent = '$' + data.budget_estimate.toFixed(2);
            document.getElementById('shoppingItems').innerHTML = data.shopping_list
                .map(function (item) { return row('&#10003;', item); }).join('');

            document.getElementById('results').classList.remove('hidden');
        }

        function row(label, value) {
            return '<div class="row"><span>' + label + '</span><span><strong>' + value + '</strong></span></div>';
        }
    </script>
</body>
</html>
`
