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

// realizationRepository implements the repository.RealizationRepository interface.
type realizationRepository struct {
	db *gorm.DB
}

// NewRealizationRepository is the constructor for realizationRepository.
func NewRealizationRepository(db *gorm.DB) repository.RealizationRepository {
	return &realizationRepository{db: db}
}

// FindByID retrieves a realization with its items. Items are matched by
// the foreign key first; legacy rows with a NULL foreign key are
// attached when their creation time falls within the link window.
func (repo *realizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Realization, error) {
	var realizationM model.RealizationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&realizationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRealizationNotFound
		}

		return nil, errors.Wrap(err, "failed to find realization by id")
	}

	var items []*model.RealizationItemModel
	if err := repo.db.WithContext(ctx).
		Preload("Product").
		Where("realization_id = ? OR (realization_id IS NULL AND created_at BETWEEN ? AND ?)",
			realizationM.ID,
			realizationM.CreatedAt.Add(-legacyLinkWindow),
			realizationM.CreatedAt.Add(legacyLinkWindow),
		).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load realization items")
	}
	realizationM.Items = items

	return toRealizationDomain(&realizationM), nil
}

// List retrieves realizations newest-first; search matches the document
// number and customer. Items are loaded through the foreign key only.
func (repo *realizationRepository) List(ctx context.Context, params repository.ListParams) ([]*entity.Realization, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.RealizationModel{})

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("number ILIKE ? OR customer ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count realizations")
	}

	var realizationModels []*model.RealizationModel
	if err := query.
		Preload("Items").
		Preload("Items.Product").
		Order("created_at DESC").
		Offset(params.Offset).
		Limit(params.Limit).
		Find(&realizationModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list realizations")
	}

	realizations := make([]*entity.Realization, 0, len(realizationModels))
	for _, realizationM := range realizationModels {
		realizations = append(realizations, toRealizationDomain(realizationM))
	}

	return realizations, total, nil
}

// Create persists a realization header together with its items.
func (repo *realizationRepository) Create(ctx context.Context, realization *entity.Realization) error {
	realizationM := fromRealizationDomain(realization)

	if err := repo.db.WithContext(ctx).Create(realizationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateDocumentNumber.WrapMessage("realization number already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid product reference in realization items")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create realization")
	}

	realization.ID = realizationM.ID
	realization.CreatedAt = realizationM.CreatedAt
	realization.UpdatedAt = realizationM.UpdatedAt
	for i, itemM := range realizationM.Items {
		realization.Items[i].ID = itemM.ID
		if itemM.RealizationID != nil {
			realization.Items[i].RealizationID = *itemM.RealizationID
		}
		realization.Items[i].CreatedAt = itemM.CreatedAt
	}

	return nil
}

// Delete removes a realization and its items, including legacy item rows
// attached through the creation-time window, mirroring FindByID.
func (repo *realizationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	var realizationM model.RealizationModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&realizationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrRealizationNotFound
		}

		return errors.Wrap(err, "failed to find realization for delete")
	}

	if err := repo.db.WithContext(ctx).
		Where("realization_id = ? OR (realization_id IS NULL AND created_at BETWEEN ? AND ?)",
			id,
			realizationM.CreatedAt.Add(-legacyLinkWindow),
			realizationM.CreatedAt.Add(legacyLinkWindow),
		).
		Delete(&model.RealizationItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete realization items")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.RealizationModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete realization")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRealizationNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toRealizationDomain(data *model.RealizationModel) *entity.Realization {
	if data == nil {
		return nil
	}

	items := make([]*entity.RealizationItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, &entity.RealizationItem{
			ID:            itemM.ID,
			RealizationID: data.ID,
			ProductID:     itemM.ProductID,
			Product:       toProductDomain(itemM.Product),
			Quantity:      itemM.Quantity,
			UnitPrice:     itemM.UnitPrice,
			CreatedAt:     itemM.CreatedAt,
		})
	}

	return &entity.Realization{
		ID:          data.ID,
		Number:      data.Number,
		Customer:    data.Customer,
		Note:        data.Note,
		CreatedByID: data.CreatedByID,
		Items:       items,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromRealizationDomain(data *entity.Realization) *model.RealizationModel {
	if data == nil {
		return nil
	}

	items := make([]*model.RealizationItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, &model.RealizationItemModel{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	return &model.RealizationModel{
		ID:          data.ID,
		Number:      data.Number,
		Customer:    data.Customer,
		Note:        data.Note,
		CreatedByID: data.CreatedByID,
		Items:       items,
	}
}
