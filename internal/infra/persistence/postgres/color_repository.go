package postgres

import (
	"context"

	"sklad/internal/domain/entity"
	domainerrors "sklad/internal/domain/errors"
	"sklad/internal/domain/repository"
	"sklad/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// colorRepository implements the repository.ColorRepository interface.
type colorRepository struct {
	db *gorm.DB
}

// NewColorRepository is the constructor for colorRepository.
func NewColorRepository(db *gorm.DB) repository.ColorRepository {
	return &colorRepository{db: db}
}

// FindByID retrieves a color by its unique ID.
func (repo *colorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Color, error) {
	var colorM model.ColorModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&colorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrColorNotFound
		}

		return nil, errors.Wrap(err, "failed to find color by id")
	}

	return toColorDomain(&colorM), nil
}

// List retrieves colors ordered by name with pagination and search.
func (repo *colorRepository) List(ctx context.Context, params repository.ListParams) ([]*entity.Color, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ColorModel{})

	if params.Search != "" {
		query = query.Where("name ILIKE ?", "%"+params.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count colors")
	}

	var colorModels []*model.ColorModel
	if err := query.
		Order("name ASC").
		Offset(params.Offset).
		Limit(params.Limit).
		Find(&colorModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list colors")
	}

	colors := make([]*entity.Color, 0, len(colorModels))
	for _, colorM := range colorModels {
		colors = append(colors, toColorDomain(colorM))
	}

	return colors, total, nil
}

// Create persists a new color.
func (repo *colorRepository) Create(ctx context.Context, color *entity.Color) error {
	colorM := fromColorDomain(color)

	if err := repo.db.WithContext(ctx).Create(colorM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateName.WrapMessage("color name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create color")
	}

	color.ID = colorM.ID
	color.CreatedAt = colorM.CreatedAt
	color.UpdatedAt = colorM.UpdatedAt

	return nil
}

// Update modifies an existing color.
func (repo *colorRepository) Update(ctx context.Context, color *entity.Color) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ColorModel{}).
		Where("id = ?", color.ID).
		Updates(map[string]any{
			"name": color.Name,
			"hex":  color.Hex,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrDuplicateName.WrapMessage("color name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update color")
	}
	if result.RowsAffected == 0 {
		return repository.ErrColorNotFound
	}

	return nil
}

// Delete removes a color; returns ErrEntityInUse while products reference it.
func (repo *colorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	var refs int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("color_id = ? AND deleted_at IS NULL", id).
		Count(&refs).Error; err != nil {
		return errors.Wrap(err, "failed to count color references")
	}
	if refs > 0 {
		return repository.ErrEntityInUse
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ColorModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrEntityInUse
		}

		return errors.Wrap(result.Error, "failed to delete color")
	}
	if result.RowsAffected == 0 {
		return repository.ErrColorNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toColorDomain(data *model.ColorModel) *entity.Color {
	if data == nil {
		return nil
	}

	return &entity.Color{
		ID:        data.ID,
		Name:      data.Name,
		Hex:       data.Hex,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromColorDomain(data *entity.Color) *model.ColorModel {
	if data == nil {
		return nil
	}

	return &model.ColorModel{
		ID:   data.ID,
		Name: data.Name,
		Hex:  data.Hex,
	}
}
