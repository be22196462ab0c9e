package adapters

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/volttrack/backend/internal/application/adapter"
	"github.com/volttrack/backend/internal/domain/entity"
	domainerror "github.com/volttrack/backend/internal/domain/error"
	"github.com/volttrack/backend/internal/integration/bundle"
)

const backupMimeType = "application/json"

// DriveStorage implements adapter.BackupStorage on a single Google Drive file.
type DriveStorage struct {
	fileName string
	opts     []option.ClientOption

	mu      sync.Mutex
	service *drive.Service
}

// NewDriveStorage creates a Drive backup storage authenticated with a service
// account credentials file. An empty path leaves the storage unavailable.
func NewDriveStorage(credentialsFile, fileName string) *DriveStorage {
	if credentialsFile == "" {
		return &DriveStorage{fileName: fileName}
	}
	return NewDriveStorageWithOptions(fileName,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(drive.DriveFileScope),
	)
}

// NewDriveStorageWithOptions creates a Drive backup storage with explicit client options.
func NewDriveStorageWithOptions(fileName string, opts ...option.ClientOption) *DriveStorage {
	return &DriveStorage{
		fileName: fileName,
		opts:     opts,
	}
}

// IsAvailable checks if Drive credentials are configured.
func (s *DriveStorage) IsAvailable() bool {
	return len(s.opts) > 0
}

func (s *DriveStorage) client(ctx context.Context) (*drive.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.service != nil {
		return s.service, nil
	}
	if !s.IsAvailable() {
		return nil, domainerror.ErrBackupStorageUnavailable
	}

	// The service outlives the request that created it.
	svc, err := drive.NewService(context.WithoutCancel(ctx), s.opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create drive client: %w", err)
	}
	s.service = svc
	return svc, nil
}

// findFile returns the ID of the backup file, or "" when none exists.
func (s *DriveStorage) findFile(ctx context.Context, svc *drive.Service) (string, error) {
	query := fmt.Sprintf("name = '%s' and trashed = false", strings.ReplaceAll(s.fileName, "'", `\'`))
	list, err := svc.Files.List().
		Q(query).
		Fields("files(id, name)").
		Spaces("drive").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to search backup file: %w", err)
	}
	if len(list.Files) == 0 {
		return "", nil
	}
	return list.Files[0].Id, nil
}

// Save uploads the bundle, updating the existing backup file when one exists.
func (s *DriveStorage) Save(ctx context.Context, b *entity.BackupBundle) (*adapter.BackupWriteResult, error) {
	svc, err := s.client(ctx)
	if err != nil {
		return nil, err
	}

	content, err := bundle.Encode(b)
	if err != nil {
		return nil, fmt.Errorf("failed to encode backup: %w", err)
	}

	fileID, err := s.findFile(ctx, svc)
	if err != nil {
		return nil, err
	}

	if fileID != "" {
		updated, err := svc.Files.Update(fileID, &drive.File{}).
			Media(bytes.NewReader(content), googleapi.ContentType(backupMimeType)).
			Context(ctx).
			Do()
		if err != nil {
			return nil, fmt.Errorf("failed to update backup file: %w", err)
		}
		slog.Debug("Drive backup updated", "file_id", updated.Id)
		return &adapter.BackupWriteResult{FileID: updated.Id, Created: false}, nil
	}

	created, err := svc.Files.Create(&drive.File{
		Name:     s.fileName,
		MimeType: backupMimeType,
	}).
		Media(bytes.NewReader(content), googleapi.ContentType(backupMimeType)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create backup file: %w", err)
	}
	slog.Debug("Drive backup created", "file_id", created.Id)
	return &adapter.BackupWriteResult{FileID: created.Id, Created: true}, nil
}

// Load downloads the latest bundle.
func (s *DriveStorage) Load(ctx context.Context) (*entity.BackupBundle, error) {
	svc, err := s.client(ctx)
	if err != nil {
		return nil, err
	}

	fileID, err := s.findFile(ctx, svc)
	if err != nil {
		return nil, err
	}
	if fileID == "" {
		return nil, domainerror.ErrBackupNotFound
	}

	resp, err := svc.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound {
			return nil, domainerror.ErrBackupNotFound
		}
		return nil, fmt.Errorf("failed to download backup file: %w", err)
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup file: %w", err)
	}

	return bundle.Decode(content)
}

// Ensure DriveStorage implements adapter.BackupStorage.
var _ adapter.BackupStorage = (*DriveStorage)(nil)
