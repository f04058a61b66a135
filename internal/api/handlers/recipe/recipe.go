package recipe

import (
	"net/http"

	recipeEngine "recipe-generator/internal/core/recipe"
	"recipe-generator/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GenerateRecipeRequest 食譜生成請求
type GenerateRecipeRequest struct {
	Ingredients        []string `json:"ingredients" binding:"required"`         // 使用者現有食材
	DietaryPreferences string   `json:"dietary_preferences" binding:"required"` // 飲食偏好
	CuisineType        string   `json:"cuisine_type" binding:"required"`        // 料理類型
}

// GenerateRecipeResponse 食譜生成響應
type GenerateRecipeResponse struct {
	Success        bool                          `json:"success"`
	Recipe         recipeEngine.ComposedRecipe   `json:"recipe"`
	Nutrition      recipeEngine.NutritionProfile `json:"nutrition"`
	ShoppingList   []string                      `json:"shopping_list"`
	BudgetEstimate float64                       `json:"budget_estimate"`
	Message        string                        `json:"message"`
}

// Handler 食譜處理程序
type Handler struct {
	engine *recipeEngine.Service
}

// NewHandler 創建新的食譜處理程序
func NewHandler(engine *recipeEngine.Service) *Handler {
	return &Handler{
		engine: engine,
	}
}

// HandleGenerateRecipe 生成食譜、營養估算、採買清單與預算
func (h *Handler) HandleGenerateRecipe(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = common.GenerateUUID()
		c.Header("X-Request-ID", requestID)
	}

	common.LogInfo("開始處理食譜生成請求",
		zap.String("request_id", requestID),
		zap.String("client_ip", c.ClientIP()),
	)

	var req GenerateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogWarn("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	// 表層先行檢查最低食材數，與引擎內的驗證相同
	if len(req.Ingredients) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Please provide at least 2 ingredients",
			"code":  common.ErrCodeValidation,
		})
		return
	}

	result, err := h.engine.Generate(c.Request.Context(), req.Ingredients, req.DietaryPreferences, req.CuisineType)
	if err != nil {
		switch {
		case common.IsValidationError(err):
			common.LogWarn("食譜生成輸入無效",
				zap.Error(err),
				zap.String("request_id", requestID),
			)
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
				"code":  common.ErrCodeValidation,
			})
		case common.IsGenerationError(err):
			common.LogError("食譜生成失敗",
				zap.Error(err),
				zap.String("request_id", requestID),
			)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Recipe generation failed",
				"code":  common.ErrCodeGenerationFailure,
			})
		default:
			common.LogError("食譜生成發生未預期錯誤",
				zap.Error(err),
				zap.String("request_id", requestID),
			)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Recipe generation failed",
				"code":  common.ErrCodeInternalError,
			})
		}
		return
	}

	response := GenerateRecipeResponse{
		Success:        true,
		Recipe:         result.GeneratedRecipes[0],
		Nutrition:      result.NutritionalAnalysis,
		ShoppingList:   result.ShoppingList,
		BudgetEstimate: result.BudgetEstimate,
		Message:        "Recipe generated successfully!",
	}

	common.LogInfo("食譜生成成功",
		zap.String("request_id", requestID),
		zap.String("recipe_name", response.Recipe.Name),
	)

	c.JSON(http.StatusOK, response)
}
