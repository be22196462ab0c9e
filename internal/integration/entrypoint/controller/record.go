package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/volttrack/backend/internal/application/usecase/record"
	domainerror "github.com/volttrack/backend/internal/domain/error"
	"github.com/volttrack/backend/internal/integration/bundle"
	"github.com/volttrack/backend/internal/integration/entrypoint/dto"
)

// RecordController handles meter record endpoints.
type RecordController struct {
	listUseCase   *record.ListRecordsUseCase
	createUseCase *record.CreateRecordUseCase
	getUseCase    *record.GetRecordUseCase
	updateUseCase *record.UpdateRecordUseCase
	deleteUseCase *record.DeleteRecordUseCase
	checkUseCase  *record.CheckReadingUseCase
}

// NewRecordController creates a new record controller instance.
func NewRecordController(
	listUseCase *record.ListRecordsUseCase,
	createUseCase *record.CreateRecordUseCase,
	getUseCase *record.GetRecordUseCase,
	updateUseCase *record.UpdateRecordUseCase,
	deleteUseCase *record.DeleteRecordUseCase,
	checkUseCase *record.CheckReadingUseCase,
) *RecordController {
	return &RecordController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		checkUseCase:  checkUseCase,
	}
}

// List handles GET /records requests.
func (c *RecordController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecordListResponse(output.Records))
}

// Create handles POST /records requests.
func (c *RecordController) Create(ctx *gin.Context) {
	fields, ok := c.bindFields(ctx)
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), record.CreateRecordInput{RecordFields: fields})
	if err != nil {
		c.handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRecordResponse(output.Record))
}

// Get handles GET /records/:id requests.
func (c *RecordController) Get(ctx *gin.Context) {
	id, ok := c.parseID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), record.GetRecordInput{ID: id})
	if err != nil {
		c.handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecordResponse(output.Record))
}

// Update handles PUT /records/:id requests.
func (c *RecordController) Update(ctx *gin.Context) {
	id, ok := c.parseID(ctx)
	if !ok {
		return
	}

	fields, ok := c.bindFields(ctx)
	if !ok {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), record.UpdateRecordInput{
		ID:           id,
		RecordFields: fields,
	})
	if err != nil {
		c.handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecordResponse(output.Record))
}

// Delete handles DELETE /records/:id requests.
func (c *RecordController) Delete(ctx *gin.Context) {
	id, ok := c.parseID(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), record.DeleteRecordInput{ID: id}); err != nil {
		c.handleRecordError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// CheckReading handles POST /records/check-reading requests.
func (c *RecordController) CheckReading(ctx *gin.Context) {
	var req dto.CheckReadingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeInvalidRequestBody),
			Details: err.Error(),
		})
		return
	}

	output, err := c.checkUseCase.Execute(ctx.Request.Context(), record.CheckReadingInput{MeterReading: *req.MeterReading})
	if err != nil {
		c.handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCheckReadingResponse(output.Warning))
}

func (c *RecordController) parseID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid record ID format",
			Code:  string(domainerror.ErrCodeInvalidRecordID),
		})
		return uuid.Nil, false
	}
	return id, true
}

func (c *RecordController) bindFields(ctx *gin.Context) (record.RecordFields, bool) {
	var req dto.RecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeInvalidRequestBody),
			Details: err.Error(),
		})
		return record.RecordFields{}, false
	}

	fields := record.RecordFields{
		Kind:         req.Kind,
		MeterReading: *req.MeterReading,
		Price:        req.Price,
		VAT:          req.VAT,
		ServiceFee:   req.ServiceFee,
		Units:        req.Units,
	}

	if req.Timestamp != "" {
		timestamp, err := bundle.ParseDate(req.Timestamp)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: domainerror.ErrInvalidTimestamp.Error(),
				Code:  string(domainerror.ErrCodeInvalidTimestamp),
			})
			return record.RecordFields{}, false
		}
		fields.Timestamp = &timestamp
	}

	return fields, true
}

// handleRecordError handles record errors and returns appropriate HTTP responses.
func (c *RecordController) handleRecordError(ctx *gin.Context, err error) {
	var recordErr *domainerror.RecordError
	if errors.As(err, &recordErr) {
		ctx.JSON(c.getStatusCodeForRecordError(recordErr.Code), dto.ErrorResponse{
			Error: recordErr.Message,
			Code:  string(recordErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForRecordError maps record error codes to HTTP status codes.
func (c *RecordController) getStatusCodeForRecordError(code domainerror.RecordErrorCode) int {
	switch code {
	case domainerror.ErrCodeRecordNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidRecordKind,
		domainerror.ErrCodeNegativeMeterReading,
		domainerror.ErrCodeNegativeAmount,
		domainerror.ErrCodeUnitsRequired,
		domainerror.ErrCodeInvalidRecordID,
		domainerror.ErrCodeInvalidTimestamp:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
