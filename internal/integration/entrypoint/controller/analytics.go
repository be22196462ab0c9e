package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/volttrack/backend/internal/application/usecase/analytics"
	domainerror "github.com/volttrack/backend/internal/domain/error"
	"github.com/volttrack/backend/internal/domain/valueobject"
	"github.com/volttrack/backend/internal/integration/entrypoint/dto"
)

// AnalyticsController handles usage analytics endpoints.
type AnalyticsController struct {
	summaryUseCase   *analytics.GetSummaryUseCase
	anomaliesUseCase *analytics.GetAnomaliesUseCase
	intervalsUseCase *analytics.GetIntervalsUseCase
	dailyUseCase     *analytics.GetDailyUsageUseCase
	monthUseCase     *analytics.GetMonthViewUseCase
	chartUseCase     *analytics.GetChartSeriesUseCase
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(
	summaryUseCase *analytics.GetSummaryUseCase,
	anomaliesUseCase *analytics.GetAnomaliesUseCase,
	intervalsUseCase *analytics.GetIntervalsUseCase,
	dailyUseCase *analytics.GetDailyUsageUseCase,
	monthUseCase *analytics.GetMonthViewUseCase,
	chartUseCase *analytics.GetChartSeriesUseCase,
) *AnalyticsController {
	return &AnalyticsController{
		summaryUseCase:   summaryUseCase,
		anomaliesUseCase: anomaliesUseCase,
		intervalsUseCase: intervalsUseCase,
		dailyUseCase:     dailyUseCase,
		monthUseCase:     monthUseCase,
		chartUseCase:     chartUseCase,
	}
}

// GetSummary handles GET /analytics/summary requests.
func (c *AnalyticsController) GetSummary(ctx *gin.Context) {
	output, err := c.summaryUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}

// GetAnomalies handles GET /analytics/anomalies requests.
func (c *AnalyticsController) GetAnomalies(ctx *gin.Context) {
	output, err := c.anomaliesUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToAnomalyListResponse(output))
}

// GetIntervals handles GET /analytics/intervals requests.
func (c *AnalyticsController) GetIntervals(ctx *gin.Context) {
	output, err := c.intervalsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToIntervalListResponse(output))
}

// GetDailyUsage handles GET /analytics/daily requests.
// Query params: from, to (YYYY-MM-DD, both optional).
func (c *AnalyticsController) GetDailyUsage(ctx *gin.Context) {
	var input analytics.GetDailyUsageInput

	if raw := ctx.Query("from"); raw != "" {
		from, err := time.Parse(valueobject.DateLayout, raw)
		if err != nil {
			c.respondInvalidDate(ctx, "from")
			return
		}
		input.From = from
	}
	if raw := ctx.Query("to"); raw != "" {
		to, err := time.Parse(valueobject.DateLayout, raw)
		if err != nil {
			c.respondInvalidDate(ctx, "to")
			return
		}
		input.To = to
	}

	output, err := c.dailyUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToDailyUsageListResponse(output))
}

// GetMonthView handles GET /analytics/month requests.
// Query params: year, month. Both default to the current UTC month.
func (c *AnalyticsController) GetMonthView(ctx *gin.Context) {
	now := time.Now().UTC()
	input := analytics.GetMonthViewInput{Year: now.Year(), Month: int(now.Month())}

	if raw := ctx.Query("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: domainerror.ErrInvalidYear.Error(),
				Code:  string(domainerror.ErrCodeInvalidYear),
			})
			return
		}
		input.Year = year
	}
	if raw := ctx.Query("month"); raw != "" {
		month, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: domainerror.ErrInvalidMonth.Error(),
				Code:  string(domainerror.ErrCodeInvalidMonth),
			})
			return
		}
		input.Month = month
	}

	output, err := c.monthUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToMonthViewResponse(output))
}

// GetChartSeries handles GET /analytics/chart requests.
func (c *AnalyticsController) GetChartSeries(ctx *gin.Context) {
	output, err := c.chartUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToChartSeriesResponse(output))
}

func (c *AnalyticsController) respondInvalidDate(ctx *gin.Context, param string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   domainerror.ErrInvalidDateFormat.Error(),
		Code:    string(domainerror.ErrCodeInvalidDateFormat),
		Details: param,
	})
}

// handleAnalyticsError handles analytics errors and returns appropriate HTTP responses.
func (c *AnalyticsController) handleAnalyticsError(ctx *gin.Context, err error) {
	var analyticsErr *domainerror.AnalyticsError
	if errors.As(err, &analyticsErr) {
		status := http.StatusInternalServerError
		switch analyticsErr.Code {
		case domainerror.ErrCodeInvalidMonth,
			domainerror.ErrCodeInvalidYear,
			domainerror.ErrCodeInvalidDateRange,
			domainerror.ErrCodeInvalidDateFormat:
			status = http.StatusBadRequest
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: analyticsErr.Message,
			Code:  string(analyticsErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
