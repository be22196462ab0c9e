package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/volttrack/backend/internal/application/usecase/insight"
	domainerror "github.com/volttrack/backend/internal/domain/error"
	"github.com/volttrack/backend/internal/integration/entrypoint/dto"
)

// InsightController handles AI insight endpoints.
type InsightController struct {
	generateUseCase *insight.GenerateInsightUseCase
}

// NewInsightController creates a new insight controller instance.
func NewInsightController(generateUseCase *insight.GenerateInsightUseCase) *InsightController {
	return &InsightController{generateUseCase: generateUseCase}
}

// Generate handles POST /insights requests.
func (c *InsightController) Generate(ctx *gin.Context) {
	output, err := c.generateUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleInsightError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToInsightResponse(output))
}

// handleInsightError maps insight errors to HTTP responses. Generation
// failures carry the retryable flag so the client can offer a retry.
func (c *InsightController) handleInsightError(ctx *gin.Context, err error) {
	var insightErr *domainerror.InsightError
	if !errors.As(err, &insightErr) {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	switch insightErr.Code {
	case domainerror.ErrCodeInsightServiceUnavailable:
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error: insightErr.Message,
			Code:  string(insightErr.Code),
		})
	case domainerror.ErrCodeInsightRateLimited:
		ctx.JSON(http.StatusTooManyRequests, dto.ProcessingErrorResponse{
			Code:      string(insightErr.Code),
			Message:   insightErr.Message,
			Retryable: insightErr.Retryable,
		})
	default:
		ctx.JSON(http.StatusBadGateway, dto.ProcessingErrorResponse{
			Code:      string(insightErr.Code),
			Message:   insightErr.Message,
			Retryable: insightErr.Retryable,
		})
	}
}
