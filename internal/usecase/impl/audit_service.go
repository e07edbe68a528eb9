package impl

import (
	"context"
	"log/slog"

	"sklad/internal/domain/entity"
	"sklad/internal/domain/repository"
	"sklad/internal/usecase"
	"sklad/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// auditService implements the AuditUsecase interface.
type auditService struct {
	actionRepo repository.UserActionRepository
	logger     *slog.Logger
}

// AuditServiceParams holds dependencies for auditService, injected by Fx.
type AuditServiceParams struct {
	fx.In

	ActionRepo repository.UserActionRepository
	Logger     *slog.Logger
}

// NewAuditService is the constructor for auditService.
func NewAuditService(params AuditServiceParams) usecase.AuditUsecase {
	return &auditService{
		actionRepo: params.ActionRepo,
		logger:     params.Logger,
	}
}

// RecordAction appends an audit entry. The caller treats the returned
// error as advisory: a failed audit write must not abort the request
// being audited.
func (srv *auditService) RecordAction(ctx context.Context, input *usecase.RecordActionInput) error {
	action := &entity.UserAction{
		UserID:   input.UserID,
		Action:   input.Action,
		Method:   input.Method,
		Path:     input.Path,
		EntityID: input.EntityID,
	}

	if err := srv.actionRepo.Create(ctx, action); err != nil {
		srv.logger.Error("Failed to record user action", "error", err, "action", input.Action, "userID", input.UserID)

		return errors.Wrap(err, "failed to record user action")
	}

	return nil
}

// ListActions retrieves audit entries newest-first.
func (srv *auditService) ListActions(ctx context.Context, input *usecase.ListActionsInput) (*usecase.ListActionsOutput, error) {
	_, limit, offset := util.NormalizePagination(input.Page, input.Limit)

	actions, total, err := srv.actionRepo.List(ctx, repository.ListParams{
		Offset: offset,
		Limit:  limit,
		Search: input.Search,
	}, repository.UserActionFilter{
		UserID: input.UserID,
		From:   input.From,
		To:     input.To,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user actions")
	}

	return &usecase.ListActionsOutput{Actions: actions, Total: total}, nil
}
