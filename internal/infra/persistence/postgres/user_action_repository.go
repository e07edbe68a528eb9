package postgres

import (
	"context"

	"sklad/internal/domain/entity"
	domainerrors "sklad/internal/domain/errors"
	"sklad/internal/domain/repository"
	"sklad/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userActionRepository implements the repository.UserActionRepository interface.
type userActionRepository struct {
	db *gorm.DB
}

// NewUserActionRepository is the constructor for userActionRepository.
func NewUserActionRepository(db *gorm.DB) repository.UserActionRepository {
	return &userActionRepository{db: db}
}

// Create appends an audit entry.
func (repo *userActionRepository) Create(ctx context.Context, action *entity.UserAction) error {
	actionM := fromUserActionDomain(action)

	if err := repo.db.WithContext(ctx).Create(actionM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create user action")
	}

	action.ID = actionM.ID
	action.CreatedAt = actionM.CreatedAt

	return nil
}

// List retrieves audit entries newest-first with pagination and filters.
func (repo *userActionRepository) List(ctx context.Context, params repository.ListParams, filter repository.UserActionFilter) ([]*entity.UserAction, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.UserActionModel{})

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if !filter.From.IsZero() {
		query = query.Where("created_at >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		query = query.Where("created_at <= ?", filter.To)
	}
	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("action ILIKE ? OR path ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count user actions")
	}

	var actionModels []*model.UserActionModel
	if err := query.
		Order("created_at DESC").
		Offset(params.Offset).
		Limit(params.Limit).
		Find(&actionModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list user actions")
	}

	actions := make([]*entity.UserAction, 0, len(actionModels))
	for _, actionM := range actionModels {
		actions = append(actions, toUserActionDomain(actionM))
	}

	return actions, total, nil
}

// --- Mapper Functions ---

func toUserActionDomain(data *model.UserActionModel) *entity.UserAction {
	if data == nil {
		return nil
	}

	return &entity.UserAction{
		ID:        data.ID,
		UserID:    data.UserID,
		Action:    data.Action,
		Method:    data.Method,
		Path:      data.Path,
		EntityID:  data.EntityID,
		CreatedAt: data.CreatedAt,
	}
}

func fromUserActionDomain(data *entity.UserAction) *model.UserActionModel {
	if data == nil {
		return nil
	}

	return &model.UserActionModel{
		ID:       data.ID,
		UserID:   data.UserID,
		Action:   data.Action,
		Method:   data.Method,
		Path:     data.Path,
		EntityID: data.EntityID,
	}
}
