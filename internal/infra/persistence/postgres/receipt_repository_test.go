package postgres

import (
	"context"
	"testing"
	"time"

	"sklad/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return gormDB, mock
}

func TestReceiptRepository_Delete_RemovesWindowLinkedLegacyItems(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := NewReceiptRepository(gormDB)

	receiptID := uuid.New()
	createdAt := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "receipts" WHERE id = \$1`).
		WithArgs(receiptID, 1).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "number", "supplier", "note", "created_by_id", "created_at", "updated_at"}).
			AddRow(receiptID.String(), "ПН-001", "База №1", "", uuid.New().String(), createdAt, createdAt))

	// Item cleanup must cover legacy NULL-FK rows inside the link window,
	// not just rows carrying the foreign key
	mock.ExpectExec(`DELETE FROM "receipt_items" WHERE receipt_id = \$1 OR \(receipt_id IS NULL AND created_at BETWEEN \$2 AND \$3\)`).
		WithArgs(receiptID, createdAt.Add(-legacyLinkWindow), createdAt.Add(legacyLinkWindow)).
		WillReturnResult(sqlmock.NewResult(0, 2))

	mock.ExpectExec(`DELETE FROM "receipts" WHERE id = \$1`).
		WithArgs(receiptID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), receiptID)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReceiptRepository_Delete_UnknownReceipt(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := NewReceiptRepository(gormDB)

	receiptID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "receipts" WHERE id = \$1`).
		WithArgs(receiptID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err := repo.Delete(context.Background(), receiptID)

	assert.ErrorIs(t, err, repository.ErrReceiptNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRealizationRepository_Delete_RemovesWindowLinkedLegacyItems(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := NewRealizationRepository(gormDB)

	realizationID := uuid.New()
	createdAt := time.Date(2026, 2, 11, 9, 30, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "realizations" WHERE id = \$1`).
		WithArgs(realizationID, 1).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "number", "customer", "note", "created_by_id", "created_at", "updated_at"}).
			AddRow(realizationID.String(), "РН-007", "ООО Ромашка", "", uuid.New().String(), createdAt, createdAt))

	mock.ExpectExec(`DELETE FROM "realization_items" WHERE realization_id = \$1 OR \(realization_id IS NULL AND created_at BETWEEN \$2 AND \$3\)`).
		WithArgs(realizationID, createdAt.Add(-legacyLinkWindow), createdAt.Add(legacyLinkWindow)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectExec(`DELETE FROM "realizations" WHERE id = \$1`).
		WithArgs(realizationID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), realizationID)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
