package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/volttrack/backend/internal/application/usecase/settings"
	domainerror "github.com/volttrack/backend/internal/domain/error"
	"github.com/volttrack/backend/internal/integration/entrypoint/dto"
)

// SettingsController handles user settings endpoints.
type SettingsController struct {
	getUseCase    *settings.GetSettingsUseCase
	updateUseCase *settings.UpdateCurrencyUseCase
}

// NewSettingsController creates a new settings controller instance.
func NewSettingsController(getUseCase *settings.GetSettingsUseCase, updateUseCase *settings.UpdateCurrencyUseCase) *SettingsController {
	return &SettingsController{
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
	}
}

// Get handles GET /settings requests.
func (c *SettingsController) Get(ctx *gin.Context) {
	s, err := c.getUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleSettingsError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(s))
}

// Update handles PUT /settings requests.
func (c *SettingsController) Update(ctx *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeInvalidRequestBody),
			Details: err.Error(),
		})
		return
	}

	s, err := c.updateUseCase.Execute(ctx.Request.Context(), settings.UpdateCurrencyInput{Currency: req.Currency})
	if err != nil {
		c.handleSettingsError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(s))
}

func (c *SettingsController) handleSettingsError(ctx *gin.Context, err error) {
	var settingsErr *domainerror.SettingsError
	if errors.As(err, &settingsErr) {
		status := http.StatusInternalServerError
		if settingsErr.Code == domainerror.ErrCodeInvalidCurrency {
			status = http.StatusBadRequest
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: settingsErr.Message,
			Code:  string(settingsErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
