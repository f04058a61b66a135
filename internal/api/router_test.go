package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	recipeEngine "recipe-generator/internal/core/recipe"
	"recipe-generator/internal/infrastructure/config"
	"recipe-generator/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		App: config.AppConfig{
			Name:    "recipe-generator",
			Version: "1.0.0",
			Env:     "test",
			Debug:   true,
		},
		Server: config.ServerConfig{Port: 8080},
		Engine: config.EngineConfig{
			FallbackUnitPrice:   2.50,
			MaxTitleIngredients: 3,
		},
		DedupWindow: time.Second,
	}

	engine := recipeEngine.NewService(recipeEngine.NewReferenceData(), recipeEngine.Options{
		FallbackUnitPrice:   cfg.Engine.FallbackUnitPrice,
		MaxTitleIngredients: cfg.Engine.MaxTitleIngredients,
	})

	router, err := SetupRouter(cfg, engine)
	require.NoError(t, err)
	return router
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoints(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, common.ParseJSONBytes(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "recipe-generator", body["service"])

	assert.Equal(t, http.StatusOK, doJSON(router, http.MethodGet, "/ready", "").Code)
	assert.Equal(t, http.StatusOK, doJSON(router, http.MethodGet, "/live", "").Code)
}

func TestIndexPage(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Recipe Generator")
}

func TestGenerateRecipeSuccess(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/generate-recipe",
		`{"ingredients":["chicken","rice","tomatoes","onions","garlic"],"dietary_preferences":"High-Protein","cuisine_type":"Asian"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Success        bool     `json:"success"`
		Message        string   `json:"message"`
		ShoppingList   []string `json:"shopping_list"`
		BudgetEstimate float64  `json:"budget_estimate"`
		Recipe         struct {
			Name        string   `json:"name"`
			Cuisine     string   `json:"cuisine"`
			DietaryType string   `json:"dietary_type"`
			Ingredients []string `json:"ingredients"`
			Steps       []string `json:"steps"`
		} `json:"recipe"`
		Nutrition struct {
			Calories          int     `json:"calories"`
			HealthScore       float64 `json:"health_score"`
			DietaryCompliance string  `json:"dietary_compliance"`
		} `json:"nutrition"`
	}
	require.NoError(t, common.ParseJSONBytes(w.Body.Bytes(), &body))

	assert.True(t, body.Success)
	assert.Equal(t, "Recipe generated successfully!", body.Message)
	assert.Equal(t, "Asian High-Protein Recipe with Chicken, Rice, Tomatoes", body.Recipe.Name)
	assert.Equal(t, "Asian", body.Recipe.Cuisine)
	assert.Equal(t, "High-Protein", body.Recipe.DietaryType)
	assert.NotEmpty(t, body.Recipe.Steps)
	assert.Equal(t, 548, body.Nutrition.Calories)
	assert.Equal(t, "Fully Compliant", body.Nutrition.DietaryCompliance)
	assert.InDelta(t, 14.60, body.BudgetEstimate, 1e-9)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestGenerateRecipeTooFewIngredients(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/generate-recipe",
		`{"ingredients":["chicken"],"dietary_preferences":"Balanced","cuisine_type":"Asian"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	require.NoError(t, common.ParseJSONBytes(w.Body.Bytes(), &body))
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
}

func TestGenerateRecipeUnknownEnum(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/generate-recipe",
		`{"ingredients":["chicken","rice"],"dietary_preferences":"Carnivore","cuisine_type":"Asian"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	require.NoError(t, common.ParseJSONBytes(w.Body.Bytes(), &body))
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
}

func TestGenerateRecipeMalformedBody(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/generate-recipe", `{"ingredients": not-json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	require.NoError(t, common.ParseJSONBytes(w.Body.Bytes(), &body))
	assert.Equal(t, "INVALID_REQUEST", body["code"])
}

func TestGenerateRecipeDeduplication(t *testing.T) {
	router := newTestRouter(t)

	payload := `{"ingredients":["tofu","noodles","cabbage"],"dietary_preferences":"Vegan","cuisine_type":"Asian"}`
	first := doJSON(router, http.MethodPost, "/generate-recipe", payload)
	require.Equal(t, http.StatusOK, first.Code)

	// 視窗內的相同請求被視為連點
	second := doJSON(router, http.MethodPost, "/generate-recipe", payload)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
