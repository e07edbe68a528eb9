package postgres

import (
	"context"
	"time"

	"sklad/internal/domain/entity"
	domainerrors "sklad/internal/domain/errors"
	"sklad/internal/domain/repository"
	"sklad/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// legacyLinkWindow bounds the creation-time window used to attach item
// rows that predate the parent foreign key and carry NULL in it.
const legacyLinkWindow = 5 * time.Second

// receiptRepository implements the repository.ReceiptRepository interface.
type receiptRepository struct {
	db *gorm.DB
}

// NewReceiptRepository is the constructor for receiptRepository.
func NewReceiptRepository(db *gorm.DB) repository.ReceiptRepository {
	return &receiptRepository{db: db}
}

// FindByID retrieves a receipt with its items. Items are matched by the
// foreign key first; legacy rows with a NULL foreign key are attached
// when their creation time falls within the link window of the header.
func (repo *receiptRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	var receiptM model.ReceiptModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&receiptM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReceiptNotFound
		}

		return nil, errors.Wrap(err, "failed to find receipt by id")
	}

	var items []*model.ReceiptItemModel
	if err := repo.db.WithContext(ctx).
		Preload("Product").
		Where("receipt_id = ? OR (receipt_id IS NULL AND created_at BETWEEN ? AND ?)",
			receiptM.ID,
			receiptM.CreatedAt.Add(-legacyLinkWindow),
			receiptM.CreatedAt.Add(legacyLinkWindow),
		).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load receipt items")
	}
	receiptM.Items = items

	return toReceiptDomain(&receiptM), nil
}

// List retrieves receipts newest-first; search matches the document
// number and supplier. Items are loaded through the foreign key only.
func (repo *receiptRepository) List(ctx context.Context, params repository.ListParams) ([]*entity.Receipt, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ReceiptModel{})

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("number ILIKE ? OR supplier ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count receipts")
	}

	var receiptModels []*model.ReceiptModel
	if err := query.
		Preload("Items").
		Preload("Items.Product").
		Order("created_at DESC").
		Offset(params.Offset).
		Limit(params.Limit).
		Find(&receiptModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list receipts")
	}

	receipts := make([]*entity.Receipt, 0, len(receiptModels))
	for _, receiptM := range receiptModels {
		receipts = append(receipts, toReceiptDomain(receiptM))
	}

	return receipts, total, nil
}

// Create persists a receipt header together with its items.
func (repo *receiptRepository) Create(ctx context.Context, receipt *entity.Receipt) error {
	receiptM := fromReceiptDomain(receipt)

	if err := repo.db.WithContext(ctx).Create(receiptM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateDocumentNumber.WrapMessage("receipt number already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid product reference in receipt items")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create receipt")
	}

	receipt.ID = receiptM.ID
	receipt.CreatedAt = receiptM.CreatedAt
	receipt.UpdatedAt = receiptM.UpdatedAt
	for i, itemM := range receiptM.Items {
		receipt.Items[i].ID = itemM.ID
		if itemM.ReceiptID != nil {
			receipt.Items[i].ReceiptID = *itemM.ReceiptID
		}
		receipt.Items[i].CreatedAt = itemM.CreatedAt
	}

	return nil
}

// Delete removes a receipt and its items. Legacy item rows with a NULL
// foreign key are matched by the same creation-time window FindByID uses,
// so the rows whose stock effect the caller reverses cannot survive the
// delete and re-attach to a later header.
func (repo *receiptRepository) Delete(ctx context.Context, id uuid.UUID) error {
	var receiptM model.ReceiptModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&receiptM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrReceiptNotFound
		}

		return errors.Wrap(err, "failed to find receipt for delete")
	}

	if err := repo.db.WithContext(ctx).
		Where("receipt_id = ? OR (receipt_id IS NULL AND created_at BETWEEN ? AND ?)",
			id,
			receiptM.CreatedAt.Add(-legacyLinkWindow),
			receiptM.CreatedAt.Add(legacyLinkWindow),
		).
		Delete(&model.ReceiptItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete receipt items")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ReceiptModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete receipt")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReceiptNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toReceiptDomain(data *model.ReceiptModel) *entity.Receipt {
	if data == nil {
		return nil
	}

	items := make([]*entity.ReceiptItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		item := &entity.ReceiptItem{
			ID:        itemM.ID,
			ReceiptID: data.ID,
			ProductID: itemM.ProductID,
			Product:   toProductDomain(itemM.Product),
			Quantity:  itemM.Quantity,
			UnitCost:  itemM.UnitCost,
			CreatedAt: itemM.CreatedAt,
		}
		items = append(items, item)
	}

	return &entity.Receipt{
		ID:          data.ID,
		Number:      data.Number,
		Supplier:    data.Supplier,
		Note:        data.Note,
		CreatedByID: data.CreatedByID,
		Items:       items,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromReceiptDomain(data *entity.Receipt) *model.ReceiptModel {
	if data == nil {
		return nil
	}

	items := make([]*model.ReceiptItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, &model.ReceiptItemModel{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitCost:  item.UnitCost,
		})
	}

	return &model.ReceiptModel{
		ID:          data.ID,
		Number:      data.Number,
		Supplier:    data.Supplier,
		Note:        data.Note,
		CreatedByID: data.CreatedByID,
		Items:       items,
	}
}
