package repository

import (
	"context"

	"github.com/nftpro1212/frons-pos/internal/domain/entity"
)

// SettingsRepository defines the interface for venue settings data access.
// A deployment carries exactly one settings row.
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.VenueSettings, error)
	Create(ctx context.Context, settings *entity.VenueSettings) error
	Update(ctx context.Context, settings *entity.VenueSettings) error
}
