package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/nftpro1212/frons-pos/internal/domain/entity"
)

// PrinterRepository defines the interface for printer profile data operations
type PrinterRepository interface {
	Create(ctx context.Context, profile *entity.PrinterProfile) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.PrinterProfile, error)
	Update(ctx context.Context, profile *entity.PrinterProfile) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.PrinterProfile, error)
	ListEnabled(ctx context.Context) ([]entity.PrinterProfile, error)
}
