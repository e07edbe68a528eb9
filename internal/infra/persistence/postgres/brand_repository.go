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

// brandRepository implements the repository.BrandRepository interface.
type brandRepository struct {
	db *gorm.DB
}

// NewBrandRepository is the constructor for brandRepository.
func NewBrandRepository(db *gorm.DB) repository.BrandRepository {
	return &brandRepository{db: db}
}

// FindByID retrieves a brand by its unique ID.
func (repo *brandRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Brand, error) {
	var brandM model.BrandModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&brandM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBrandNotFound
		}

		return nil, errors.Wrap(err, "failed to find brand by id")
	}

	return toBrandDomain(&brandM), nil
}

// List retrieves brands ordered by name with pagination and search.
func (repo *brandRepository) List(ctx context.Context, params repository.ListParams) ([]*entity.Brand, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.BrandModel{})

	if params.Search != "" {
		query = query.Where("name ILIKE ?", "%"+params.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count brands")
	}

	var brandModels []*model.BrandModel
	if err := query.
		Order("name ASC").
		Offset(params.Offset).
		Limit(params.Limit).
		Find(&brandModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list brands")
	}

	brands := make([]*entity.Brand, 0, len(brandModels))
	for _, brandM := range brandModels {
		brands = append(brands, toBrandDomain(brandM))
	}

	return brands, total, nil
}

// Create persists a new brand.
func (repo *brandRepository) Create(ctx context.Context, brand *entity.Brand) error {
	brandM := fromBrandDomain(brand)

	if err := repo.db.WithContext(ctx).Create(brandM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateName.WrapMessage("brand name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create brand")
	}

	brand.ID = brandM.ID
	brand.CreatedAt = brandM.CreatedAt
	brand.UpdatedAt = brandM.UpdatedAt

	return nil
}

// Update modifies an existing brand.
func (repo *brandRepository) Update(ctx context.Context, brand *entity.Brand) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BrandModel{}).
		Where("id = ?", brand.ID).
		Update("name", brand.Name)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrDuplicateName.WrapMessage("brand name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update brand")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBrandNotFound
	}

	return nil
}

// Delete removes a brand; returns ErrEntityInUse while products reference it.
func (repo *brandRepository) Delete(ctx context.Context, id uuid.UUID) error {
	var refs int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("brand_id = ? AND deleted_at IS NULL", id).
		Count(&refs).Error; err != nil {
		return errors.Wrap(err, "failed to count brand references")
	}
	if refs > 0 {
		return repository.ErrEntityInUse
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BrandModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrEntityInUse
		}

		return errors.Wrap(result.Error, "failed to delete brand")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBrandNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toBrandDomain(data *model.BrandModel) *entity.Brand {
	if data == nil {
		return nil
	}

	return &entity.Brand{
		ID:        data.ID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromBrandDomain(data *entity.Brand) *model.BrandModel {
	if data == nil {
		return nil
	}

	return &model.BrandModel{
		ID:   data.ID,
		Name: data.Name,
	}
}
