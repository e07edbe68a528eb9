package postgres

import (
	"context"
	"time"

	"sklad/internal/domain/entity"
	"sklad/internal/domain/repository"
	"sklad/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reportRepository implements the repository.ReportRepository interface.
// Reports are read-only aggregates, so it queries models directly.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository is the constructor for reportRepository.
func NewReportRepository(db *gorm.DB) repository.ReportRepository {
	return &reportRepository{db: db}
}

// StockLevels returns current stock per product with references preloaded,
// ordered by stock ascending so shortages surface first.
func (repo *reportRepository) StockLevels(ctx context.Context, params repository.ListParams) ([]*entity.Product, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("deleted_at IS NULL")

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("name ILIKE ? OR sku ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count stock levels")
	}

	var productModels []*model.ProductModel
	if err := query.
		Preload("Brand").
		Preload("Category").
		Preload("Color").
		Order("stock ASC, name ASC").
		Offset(params.Offset).
		Limit(params.Limit).
		Find(&productModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list stock levels")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, total, nil
}

// movementRow is the scan target for the per-direction aggregate queries.
type movementRow struct {
	ProductID   uuid.UUID
	ProductName string
	Qty         int
	Amount      int64
}

// Movements aggregates received and shipped quantities per product between
// from and to. Receipts and realizations are aggregated separately and
// merged by product, so a product appears once even when it moved both ways.
func (repo *reportRepository) Movements(ctx context.Context, from, to time.Time) ([]*repository.MovementTotals, error) {
	var receivedRows []movementRow
	if err := repo.db.WithContext(ctx).
		Model(&model.ReceiptItemModel{}).
		Select("receipt_items.product_id AS product_id, products.name AS product_name, SUM(receipt_items.quantity) AS qty, SUM(receipt_items.quantity * receipt_items.unit_cost) AS amount").
		Joins("JOIN receipts ON receipts.id = receipt_items.receipt_id").
		Joins("JOIN products ON products.id = receipt_items.product_id").
		Where("receipts.created_at BETWEEN ? AND ?", from, to).
		Group("receipt_items.product_id, products.name").
		Scan(&receivedRows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate receipt movements")
	}

	var shippedRows []movementRow
	if err := repo.db.WithContext(ctx).
		Model(&model.RealizationItemModel{}).
		Select("realization_items.product_id AS product_id, products.name AS product_name, SUM(realization_items.quantity) AS qty, SUM(realization_items.quantity * realization_items.unit_price) AS amount").
		Joins("JOIN realizations ON realizations.id = realization_items.realization_id").
		Joins("JOIN products ON products.id = realization_items.product_id").
		Where("realizations.created_at BETWEEN ? AND ?", from, to).
		Group("realization_items.product_id, products.name").
		Scan(&shippedRows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate realization movements")
	}

	byProduct := make(map[uuid.UUID]*repository.MovementTotals, len(receivedRows)+len(shippedRows))
	order := make([]uuid.UUID, 0, len(receivedRows)+len(shippedRows))

	for _, row := range receivedRows {
		totals := &repository.MovementTotals{
			ProductID:    row.ProductID,
			ProductName:  row.ProductName,
			ReceivedQty:  row.Qty,
			ReceivedCost: row.Amount,
		}
		byProduct[row.ProductID] = totals
		order = append(order, row.ProductID)
	}
	for _, row := range shippedRows {
		totals, ok := byProduct[row.ProductID]
		if !ok {
			totals = &repository.MovementTotals{
				ProductID:   row.ProductID,
				ProductName: row.ProductName,
			}
			byProduct[row.ProductID] = totals
			order = append(order, row.ProductID)
		}
		totals.ShippedQty = row.Qty
		totals.ShippedRevenue = row.Amount
	}

	movements := make([]*repository.MovementTotals, 0, len(order))
	for _, id := range order {
		movements = append(movements, byProduct[id])
	}

	return movements, nil
}

// Counts returns the entity counters behind the summary dashboard.
func (repo *reportRepository) Counts(ctx context.Context) (*repository.SummaryCounts, error) {
	counts := &repository.SummaryCounts{}

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("deleted_at IS NULL").
		Count(&counts.Products).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count products")
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("deleted_at IS NULL").
		Count(&counts.Users).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.ReceiptModel{}).
		Count(&counts.Receipts).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count receipts")
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.RealizationModel{}).
		Count(&counts.Realizations).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count realizations")
	}

	var stockUnits *int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("deleted_at IS NULL").
		Select("COALESCE(SUM(stock), 0)").
		Scan(&stockUnits).Error; err != nil {
		return nil, errors.Wrap(err, "failed to sum stock units")
	}
	if stockUnits != nil {
		counts.StockUnits = *stockUnits
	}

	return counts, nil
}
