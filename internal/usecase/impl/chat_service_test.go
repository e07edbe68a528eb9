package impl

import (
	"context"
	"strings"
	"testing"

	"sklad/internal/domain/entity"
	domainerrors "sklad/internal/domain/errors"
	mockRepo "sklad/internal/mocks/repository"
	"sklad/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type chatServiceFixtures struct {
	service  usecase.ChatUsecase
	chatRepo *mockRepo.MockChatRepository
	userRepo *mockRepo.MockUserRepository
}

func createTestChatService(t *testing.T) chatServiceFixtures {
	t.Helper()

	chatRepo := new(mockRepo.MockChatRepository)
	userRepo := new(mockRepo.MockUserRepository)

	service := NewChatService(ChatServiceParams{
		ChatRepo: chatRepo,
		UserRepo: userRepo,
		Logger:   newDiscardLogger(),
	})

	return chatServiceFixtures{service: service, chatRepo: chatRepo, userRepo: userRepo}
}

func TestChatService_PostMessage_DenormalizesAuthorName(t *testing.T) {
	fx := createTestChatService(t)
	ctx := context.Background()

	authorID := uuid.New()

	fx.userRepo.On("FindByID", ctx, authorID).
		Return(&entity.User{ID: authorID, Name: "Мария"}, nil)
	fx.chatRepo.On("Create", ctx, mock.AnythingOfType("*entity.ChatMessage")).Return(nil)

	message, err := fx.service.PostMessage(ctx, authorID, &usecase.PostMessageInput{
		Text: "  Поставка   приехала \n встречайте ",
	})

	require.NoError(t, err)
	assert.Equal(t, "Мария", message.AuthorName)
	assert.Equal(t, "Поставка приехала встречайте", message.Text)
}

func TestChatService_PostMessage_EmptyText(t *testing.T) {
	fx := createTestChatService(t)

	message, err := fx.service.PostMessage(context.Background(), uuid.New(), &usecase.PostMessageInput{
		Text: "   \n\t  ",
	})

	require.Error(t, err)
	assert.Nil(t, message)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestChatService_PostMessage_TooLong(t *testing.T) {
	fx := createTestChatService(t)

	message, err := fx.service.PostMessage(context.Background(), uuid.New(), &usecase.PostMessageInput{
		Text: strings.Repeat("я", maxMessageLength+1),
	})

	require.Error(t, err)
	assert.Nil(t, message)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestChatService_DeleteMessage_OwnMessage(t *testing.T) {
	fx := createTestChatService(t)
	ctx := context.Background()

	authorID := uuid.New()
	messageID := uuid.New()

	fx.chatRepo.On("FindByID", ctx, messageID).
		Return(&entity.ChatMessage{ID: messageID, AuthorID: authorID}, nil)
	fx.chatRepo.On("Delete", ctx, messageID).Return(nil)

	err := fx.service.DeleteMessage(ctx, authorID, entity.Roles{entity.RoleWorker}, messageID)

	require.NoError(t, err)
	fx.chatRepo.AssertExpectations(t)
}

func TestChatService_DeleteMessage_ForeignMessageDenied(t *testing.T) {
	fx := createTestChatService(t)
	ctx := context.Background()

	messageID := uuid.New()

	fx.chatRepo.On("FindByID", ctx, messageID).
		Return(&entity.ChatMessage{ID: messageID, AuthorID: uuid.New()}, nil)

	err := fx.service.DeleteMessage(ctx, uuid.New(), entity.Roles{entity.RoleWorker}, messageID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotMessageAuthor))
	fx.chatRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestChatService_DeleteMessage_AdminDeletesAny(t *testing.T) {
	fx := createTestChatService(t)
	ctx := context.Background()

	messageID := uuid.New()

	fx.chatRepo.On("FindByID", ctx, messageID).
		Return(&entity.ChatMessage{ID: messageID, AuthorID: uuid.New()}, nil)
	fx.chatRepo.On("Delete", ctx, messageID).Return(nil)

	err := fx.service.DeleteMessage(ctx, uuid.New(), entity.Roles{entity.RoleAdmin}, messageID)

	require.NoError(t, err)
	fx.chatRepo.AssertExpectations(t)
}
