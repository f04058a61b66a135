package recipe

// buildTemplates 建立靜態食譜模板
// 查找順序依賴切片順序：先精確配對 (cuisine, dietary)，再配對 cuisine，最後通用模板
func buildTemplates() []RecipeTemplate {
	return []RecipeTemplate{
		// ---- 精確配對 (cuisine, dietary) ----
		{
			Cuisine: CuisineAsian,
			Dietary: DietHighProtein,
			Roles:   []Role{RoleProtein, RoleStarch, RoleVegetable, RoleAromatic},
			Fillers: map[Role]string{RoleProtein: "chicken", RoleStarch: "rice", RoleVegetable: "broccoli", RoleAromatic: "ginger"},
			Steps: []string{
				"Cut the {protein} into bite-sized pieces and marinate with a splash of soy sauce.",
				"Heat a wok over high heat and add a drizzle of oil.",
				"Stir-fry the {aromatic} for 30 seconds until fragrant.",
				"Add the {protein} and sear until browned on all sides.",
				"Toss in the {vegetable} and stir-fry for 3-4 minutes.",
				"Serve hot over steamed {starch}.",
			},
			CookingTime: "30 minutes",
			Difficulty:  "Easy",
		},
		{
			Cuisine: CuisineAsian,
			Dietary: DietVegan,
			Roles:   []Role{RoleProtein, RoleStarch, RoleVegetable, RoleAromatic},
			Fillers: map[Role]string{RoleProtein: "tofu", RoleStarch: "rice", RoleVegetable: "broccoli", RoleAromatic: "ginger"},
			Steps: []string{
				"Press and cube the {protein}, then toss with a little soy sauce.",
				"Heat a wok over high heat with a drizzle of sesame oil.",
				"Fry the {aromatic} until fragrant, then add the {protein} and crisp it up.",
				"Add the {vegetable} and stir-fry for 3-4 minutes.",
				"Serve over steamed {starch} and finish with scallions.",
			},
			CookingTime: "25 minutes",
			Difficulty:  "Easy",
		},
		{
			Cuisine: CuisineItalian,
			Dietary: DietVegetarian,
			Roles:   []Role{RoleStarch, RoleVegetable, RoleAromatic},
			Fillers: map[Role]string{RoleProtein: "cheese", RoleStarch: "pasta", RoleVegetable: "tomato", RoleAromatic: "garlic"},
			Steps: []string{
				"Bring a large pot of salted water to a boil and cook the {starch} until al dente.",
				"Meanwhile, warm olive oil in a pan and soften the {aromatic}.",
				"Add the {vegetable} and simmer into a quick sauce.",
				"Toss the drained {starch} through the sauce and season to taste.",
				"Plate and finish with fresh basil.",
			},
			CookingTime: "25 minutes",
			Difficulty:  "Easy",
		},
		{
			Cuisine: CuisineIndian,
			Dietary: DietVegetarian,
			Roles:   []Role{RoleProtein, RoleStarch, RoleVegetable, RoleAromatic},
			Fillers: map[Role]string{RoleProtein: "chickpeas", RoleStarch: "rice", RoleVegetable: "spinach", RoleAromatic: "ginger"},
			Steps: []string{
				"Warm oil in a heavy pot and bloom the cumin and turmeric.",
				"Add the {aromatic} and cook until golden.",
				"Stir in the {vegetable} and the {protein} with a splash of water.",
				"Simmer gently for 15 minutes until the curry thickens.",
				"Serve over fluffy {starch}.",
			},
			CookingTime: "35 minutes",
			Difficulty:  "Medium",
		},
		{
			Cuisine: CuisineMexican,
			Dietary: DietHighProtein,
			Roles:   []Role{RoleProtein, RoleStarch, RoleVegetable, RoleAromatic},
			Fillers: map[Role]string{RoleProtein: "chicken", RoleStarch: "rice", RoleVegetable: "pepper", RoleAromatic: "onion"},
			Steps: []string{
				"Season the {protein} generously with cumin and a pinch of salt.",
				"Sear the {protein} in a hot skillet until cooked through, then set aside.",
				"In the same skillet, soften the {aromatic} and the {vegetable}.",
				"Slice the {protein} and return it to the pan with a squeeze of lime.",
				"Serve over {starch} with fresh cilantro.",
			},
			CookingTime: "30 minutes",
			Difficulty:  "Easy",
		},
		{
			Cuisine: CuisineAmerican,
			Dietary: DietKeto,
			Roles:   []Role{RoleProtein, RoleVegetable, RoleAromatic},
			Fillers: map[Role]string{RoleProtein: "chicken", RoleStarch: "cauliflower", RoleVegetable: "broccoli", RoleAromatic: "garlic"},
			Steps: []string{
				"Pat the {protein} dry and season with salt and black pepper.",
				"Sear the {protein} in butter over medium-high heat until golden.",
				"Add the {aromatic} and the {vegetable} to the pan.",
				"Cover and cook for 5 minutes until tender.",
				"Rest briefly, then serve straight from the pan.",
			},
			CookingTime: "25 minutes",
			Difficulty:  "Easy",
		},

		// ---- 僅配對 cuisine ----
		{
			Cuisine: CuisineAsian,
			Roles:   []Role{RoleProtein, RoleStarch, RoleVegetable, RoleAromatic},
			Fillers: map[Role]string{RoleProtein: "chicken", RoleStarch: "rice", RoleVegetable: "broccoli", RoleAromatic: "ginger"},
			Steps: []string{
				"Prepare all ingredients: chop the {vegetable} and cut the {protein} into even pieces.",
				"Heat a wok until smoking and add a drizzle of oil.",
				"Stir-fry the {aromatic}, then add the {protein} and cook through.",
				"Add the {vegetable} with a splash of soy sauce and toss well.",
				"Serve over steamed {starch}.",
			},
			CookingTime: "30 minutes",
			Difficulty:  "Easy",
		},
		{
			Cuisine: CuisineItalian,
			Roles:   []Role{RoleProtein, RoleStarch, RoleVegetable, RoleAromatic},
			Fillers: map[Role]string{RoleProtein: "chicken", RoleStarch: "pasta", RoleVegetable: "tomato", RoleAromatic: "garlic"},
			Steps: []string{
				"Cook the {starch} in salted boiling water until al dente.",
				"Brown the {protein} in olive oil, then set aside.",
				"Soften the {aromatic} and the {vegetable} in the same pan.",
				"Return the {protein}, toss with the drained {starch}, and season.",
				"Finish with basil and a drizzle of olive oil.",
			},
			CookingTime: "35 minutes",
			Difficulty:  "Medium",
		},
		{
			Cuisine: CuisineMexican,
			Roles:   []Role{RoleProtein, RoleStarch, RoleVegetable, RoleAromatic},
			Fillers: map[Role]string{RoleProtein: "beans", RoleStarch: "tortillas", RoleVegetable: "pepper", RoleAromatic: "onion"},
			Steps: []string{
				"Warm the {starch} and keep covered.",
				"Sauté the {aromatic} and the {vegetable} with cumin.",
				"Add the {protein} and cook until heated through.",
				"Squeeze over lime and scatter with cilantro.",
				"Build and serve immediately.",
			},
			CookingTime: "25 minutes",
			Difficulty:  "Easy",
		},
		{
			Cuisine: CuisineIndian,
			Roles:   []Role{RoleProtein, RoleStarch, RoleVegetable, RoleAromatic},
			Fillers: map[Role]string{RoleProtein: "chicken", RoleStarch: "rice", RoleVegetable: "spinach", RoleAromatic: "ginger"},
			Steps: []string{
				"Toast cumin and turmeric in hot oil until aromatic.",
				"Add the {aromatic} and fry until golden.",
				"Stir in the {protein} and brown on all sides.",
				"Add the {vegetable} with a splash of water and simmer for 15 minutes.",
				"Serve the curry over {starch}.",
			},
			CookingTime: "40 minutes",
			Difficulty:  "Medium",
		},
		{
			Cuisine: CuisineMediterranean,
			Roles:   []Role{RoleProtein, RoleStarch, RoleVegetable, RoleAromatic},
			Fillers: map[Role]string{RoleProtein: "chickpeas", RoleStarch: "couscous", RoleVegetable: "tomato", RoleAromatic: "garlic"},
			Steps: []string{
				"Prepare the {starch} according to taste and fluff with a fork.",
				"Warm olive oil and gently cook the {aromatic}.",
				"Add the {vegetable} and the {protein}, season with oregano.",
				"Simmer for 10 minutes until everything comes together.",
				"Serve over the {starch} with a squeeze of lemon.",
			},
			CookingTime: "30 minutes",
			Difficulty:  "Easy",
		},
		{
			Cuisine: CuisineAmerican,
			Roles:   []Role{RoleProtein, RoleStarch, RoleVegetable, RoleAromatic},
			Fillers: map[Role]string{RoleProtein: "beef", RoleStarch: "potatoes", RoleVegetable: "carrot", RoleAromatic: "onion"},
			Steps: []string{
				"Season the {protein} with salt and black pepper.",
				"Brown the {protein} in a skillet over medium-high heat.",
				"Add the {aromatic}, the {vegetable} and the {starch}.",
				"Cover and cook until the {starch} is tender.",
				"Serve family-style straight from the pan.",
			},
			CookingTime: "45 minutes",
			Difficulty:  "Medium",
		},
		{
			Cuisine: CuisineFusion,
			Roles:   []Role{RoleProtein, RoleStarch, RoleVegetable, RoleAromatic},
			Fillers: map[Role]string{RoleProtein: "chicken", RoleStarch: "rice", RoleVegetable: "pepper", RoleAromatic: "garlic"},
			Steps: []string{
				"Cut the {protein} into strips and season lightly.",
				"Sear the {protein} in a hot pan with a little oil.",
				"Add the {aromatic} and the {vegetable}, tossing frequently.",
				"Glaze with a mix of soy sauce and lime juice.",
				"Serve over {starch}.",
			},
			CookingTime: "30 minutes",
			Difficulty:  "Easy",
		},

		// ---- 通用備援模板 ----
		{
			Roles:   []Role{RoleProtein, RoleStarch, RoleVegetable, RoleAromatic},
			Fillers: map[Role]string{RoleProtein: "chicken", RoleStarch: "rice", RoleVegetable: "tomato", RoleAromatic: "onion"},
			Steps: []string{
				"Prepare and portion all ingredients before cooking.",
				"Heat oil in a large pan over medium heat.",
				"Cook the {aromatic} until softened, then add the {protein}.",
				"Add the {vegetable} and cook until everything is done.",
				"Serve together with the {starch}.",
			},
			CookingTime: "30 minutes",
			Difficulty:  "Easy",
		},
	}
}
