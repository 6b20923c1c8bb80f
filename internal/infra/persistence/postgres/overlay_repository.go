// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"pinesvet/internal/domain/entity"
	domainerrors "pinesvet/internal/domain/errors"
	"pinesvet/internal/domain/repository"
	"pinesvet/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// overlayRepository implements the repository.OverlayRepository interface using GORM.
type overlayRepository struct {
	db *gorm.DB
}

// NewOverlayRepository is the constructor for overlayRepository.
func NewOverlayRepository(db *gorm.DB) repository.OverlayRepository {
	return &overlayRepository{
		db: db,
	}
}

// FindByPage retrieves the overlay settings for one portal page.
func (repo *overlayRepository) FindByPage(ctx context.Context, page string) (*entity.OverlaySettings, error) {
	var settingsM model.OverlaySettingsModel

	if err := repo.db.WithContext(ctx).
		Where("page = ?", page).
		First(&settingsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOverlayNotFound
		}

		return nil, errors.Wrap(err, "failed to find overlay settings by page")
	}

	return toOverlayDomain(&settingsM), nil
}

// Save inserts or replaces the settings for a page.
func (repo *overlayRepository) Save(ctx context.Context, settings *entity.OverlaySettings) error {
	settingsM := &model.OverlaySettingsModel{
		Page:     settings.Page,
		Enabled:  settings.Enabled,
		Title:    settings.Title,
		Message:  settings.Message,
		ImageURL: settings.ImageURL,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "page"}},
			DoUpdates: clause.AssignmentColumns([]string{"enabled", "title", "message", "image_url", "updated_at"}),
		}).
		Create(settingsM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save overlay settings")
	}

	settings.UpdatedAt = settingsM.UpdatedAt

	return nil
}

// List retrieves the settings of every configured page.
func (repo *overlayRepository) List(ctx context.Context) ([]*entity.OverlaySettings, error) {
	var settingsModels []*model.OverlaySettingsModel

	if err := repo.db.WithContext(ctx).
		Order("page ASC").
		Find(&settingsModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list overlay settings")
	}

	settings := make([]*entity.OverlaySettings, 0, len(settingsModels))
	for _, settingsM := range settingsModels {
		settings = append(settings, toOverlayDomain(settingsM))
	}

	return settings, nil
}

// toOverlayDomain converts a GORM OverlaySettingsModel to a domain entity.
func toOverlayDomain(data *model.OverlaySettingsModel) *entity.OverlaySettings {
	if data == nil {
		return nil
	}

	return &entity.OverlaySettings{
		Page:      data.Page,
		Enabled:   data.Enabled,
		Title:     data.Title,
		Message:   data.Message,
		ImageURL:  data.ImageURL,
		UpdatedAt: data.UpdatedAt,
	}
}
