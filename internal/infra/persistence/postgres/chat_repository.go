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

// chatRepository implements the repository.ChatRepository interface.
type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository is the constructor for chatRepository.
func NewChatRepository(db *gorm.DB) repository.ChatRepository {
	return &chatRepository{db: db}
}

// Create persists a new chat message.
func (repo *chatRepository) Create(ctx context.Context, message *entity.ChatMessage) error {
	messageM := fromChatMessageDomain(message)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid author reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create chat message")
	}

	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt

	return nil
}

// FindByID retrieves a single message by its unique ID.
func (repo *chatRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ChatMessage, error) {
	var messageM model.ChatMessageModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&messageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMessageNotFound
		}

		return nil, errors.Wrap(err, "failed to find chat message by id")
	}

	return toChatMessageDomain(&messageM), nil
}

// List retrieves messages newest-first with pagination and an optional
// lower time bound.
func (repo *chatRepository) List(ctx context.Context, params repository.ListParams, since time.Time) ([]*entity.ChatMessage, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ChatMessageModel{})

	if !since.IsZero() {
		query = query.Where("created_at > ?", since)
	}
	if params.Search != "" {
		query = query.Where("text ILIKE ?", "%"+params.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count chat messages")
	}

	var messageModels []*model.ChatMessageModel
	if err := query.
		Order("created_at DESC").
		Offset(params.Offset).
		Limit(params.Limit).
		Find(&messageModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list chat messages")
	}

	messages := make([]*entity.ChatMessage, 0, len(messageModels))
	for _, messageM := range messageModels {
		messages = append(messages, toChatMessageDomain(messageM))
	}

	return messages, total, nil
}

// Delete removes a message by its ID.
func (repo *chatRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ChatMessageModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete chat message")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMessageNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toChatMessageDomain(data *model.ChatMessageModel) *entity.ChatMessage {
	if data == nil {
		return nil
	}

	return &entity.ChatMessage{
		ID:         data.ID,
		AuthorID:   data.AuthorID,
		AuthorName: data.AuthorName,
		Text:       data.Text,
		CreatedAt:  data.CreatedAt,
	}
}

func fromChatMessageDomain(data *entity.ChatMessage) *model.ChatMessageModel {
	if data == nil {
		return nil
	}

	return &model.ChatMessageModel{
		ID:         data.ID,
		AuthorID:   data.AuthorID,
		AuthorName: data.AuthorName,
		Text:       data.Text,
	}
}
