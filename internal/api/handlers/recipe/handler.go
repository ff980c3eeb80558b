package recipe

import (
	"net/http"

	"recipe-scaler/internal/api/handlers"
	"recipe-scaler/internal/core/ingredient"
	recipeService "recipe-scaler/internal/core/recipe"
	"recipe-scaler/internal/core/scaling"
	"recipe-scaler/internal/core/units"

	"github.com/gin-gonic/gin"
)

// ParseRequest 食材解析請求
type ParseRequest struct {
	Lines []string `json:"lines"`
}

// ParseResponse 食材解析響應
type ParseResponse struct {
	Ingredients []ingredient.ParsedIngredient `json:"ingredients"`
}

// BuildRequest 組合食譜請求
type BuildRequest struct {
	Servings string   `json:"servings"`
	Lines    []string `json:"lines"`
}

// ScaleRequest 縮放食譜請求
type ScaleRequest struct {
	Recipe     ingredient.Recipe `json:"recipe"`
	Multiplier float64           `json:"multiplier"`
}

// UnitsResponse 單位表響應
type UnitsResponse struct {
	Units []units.Definition `json:"units"`
}

// Handler 食譜處理器
type Handler struct {
	service *recipeService.Service
}

// NewHandler 創建食譜處理器
func NewHandler(service *recipeService.Service) *Handler {
	return &Handler{service: service}
}

// HandleParse 解析食材行
func (h *Handler) HandleParse(c *gin.Context) {
	var req ParseRequest
	if !handlers.BindJSON(c, &req) {
		return
	}

	parsed, err := h.service.ParseIngredients(c.Request.Context(), req.Lines)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ParseResponse{Ingredients: parsed})
}

// HandleBuild 解析份量與食材行為食譜
func (h *Handler) HandleBuild(c *gin.Context) {
	var req BuildRequest
	if !handlers.BindJSON(c, &req) {
		return
	}

	built, err := h.service.BuildRecipe(c.Request.Context(), req.Servings, req.Lines)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, built)
}

// HandleScale 縮放食譜
func (h *Handler) HandleScale(c *gin.Context) {
	var req ScaleRequest
	if !handlers.BindJSON(c, &req) {
		return
	}

	scaled, err := h.service.ScaleRecipe(c.Request.Context(), req.Recipe, scaling.Options{Multiplier: req.Multiplier})
	if err != nil {
		handlers.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, scaled)
}

// HandleUnits 返回支援的單位
func (h *Handler) HandleUnits(c *gin.Context) {
	c.JSON(http.StatusOK, UnitsResponse{Units: h.service.Units()})
}
