// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/volttrack/backend/internal/domain/entity"
)

// RecordRepository defines the interface for meter record persistence.
type RecordRepository interface {
	// Create stores a new record.
	Create(ctx context.Context, record *entity.Record) error

	// Update replaces an existing record wholesale. Returns ErrRecordNotFound when absent.
	Update(ctx context.Context, record *entity.Record) error

	// Delete removes a record. Returns ErrRecordNotFound when absent.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID retrieves a record by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Record, error)

	// FindAll returns every stored record, newest first.
	FindAll(ctx context.Context) ([]*entity.Record, error)

	// Count returns the number of stored records.
	Count(ctx context.Context) (int64, error)
}
