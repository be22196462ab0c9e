package controller

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/volttrack/backend/internal/application/usecase/backup"
	domainerror "github.com/volttrack/backend/internal/domain/error"
	"github.com/volttrack/backend/internal/integration/bundle"
	"github.com/volttrack/backend/internal/integration/entrypoint/dto"
)

// maxImportBytes bounds the size of an uploaded bundle.
const maxImportBytes = 10 << 20

// BackupController handles cloud backup and local export/import endpoints.
type BackupController struct {
	createUseCase  *backup.CreateBackupUseCase
	previewUseCase *backup.PreviewBackupUseCase
	restoreUseCase *backup.RestoreBackupUseCase
	exportUseCase  *backup.ExportDataUseCase
	importUseCase  *backup.ImportDataUseCase
}

// NewBackupController creates a new backup controller instance.
func NewBackupController(
	createUseCase *backup.CreateBackupUseCase,
	previewUseCase *backup.PreviewBackupUseCase,
	restoreUseCase *backup.RestoreBackupUseCase,
	exportUseCase *backup.ExportDataUseCase,
	importUseCase *backup.ImportDataUseCase,
) *BackupController {
	return &BackupController{
		createUseCase:  createUseCase,
		previewUseCase: previewUseCase,
		restoreUseCase: restoreUseCase,
		exportUseCase:  exportUseCase,
		importUseCase:  importUseCase,
	}
}

// Create handles POST /backup requests.
func (c *BackupController) Create(ctx *gin.Context) {
	output, err := c.createUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleBackupError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToBackupResponse(output))
}

// Preview handles GET /backup requests.
func (c *BackupController) Preview(ctx *gin.Context) {
	output, err := c.previewUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleBackupError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToBackupPreviewResponse(output))
}

// Restore handles POST /backup/restore requests.
func (c *BackupController) Restore(ctx *gin.Context) {
	output, err := c.restoreUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleBackupError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.RestoreResponse{
		RecordCount: output.RecordCount,
		Currency:    output.Currency,
	})
}

// Export handles GET /backup/export requests. The body is the bundle document.
func (c *BackupController) Export(ctx *gin.Context) {
	b, err := c.exportUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleBackupError(ctx, err)
		return
	}

	content, err := bundle.Encode(b)
	if err != nil {
		c.handleBackupError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="volttrack_data.json"`)
	ctx.Data(http.StatusOK, "application/json", content)
}

// Import handles POST /backup/import requests with a bundle document body.
func (c *BackupController) Import(ctx *gin.Context) {
	content, err := io.ReadAll(io.LimitReader(ctx.Request.Body, maxImportBytes))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeInvalidRequestBody),
			Details: err.Error(),
		})
		return
	}

	b, err := bundle.Decode(content)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   domainerror.ErrMalformedBackup.Error(),
			Code:    string(domainerror.ErrCodeMalformedBackup),
			Details: err.Error(),
		})
		return
	}

	output, err := c.importUseCase.Execute(ctx.Request.Context(), backup.ImportDataInput{Bundle: b})
	if err != nil {
		c.handleBackupError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.RestoreResponse{
		RecordCount: output.RecordCount,
		Currency:    output.Currency,
	})
}

// handleBackupError handles backup errors and returns appropriate HTTP responses.
func (c *BackupController) handleBackupError(ctx *gin.Context, err error) {
	var backupErr *domainerror.BackupError
	if errors.As(err, &backupErr) {
		ctx.JSON(c.getStatusCodeForBackupError(backupErr.Code), dto.ErrorResponse{
			Error: backupErr.Message,
			Code:  string(backupErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForBackupError maps backup error codes to HTTP status codes.
func (c *BackupController) getStatusCodeForBackupError(code domainerror.BackupErrorCode) int {
	switch code {
	case domainerror.ErrCodeBackupStorageUnavailable:
		return http.StatusServiceUnavailable
	case domainerror.ErrCodeBackupNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeBackupUploadFailed, domainerror.ErrCodeBackupDownloadFailed:
		return http.StatusBadGateway
	case domainerror.ErrCodeMalformedBackup:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
