package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/nftpro1212/frons-pos/internal/domain/entity"
)

// TableRepository defines the interface for dining table data operations
type TableRepository interface {
	Create(ctx context.Context, table *entity.Table) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Table, error)
	GetByName(ctx context.Context, name string) (*entity.Table, error)
	Update(ctx context.Context, table *entity.Table) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, activeOnly bool) ([]entity.Table, error)
}
