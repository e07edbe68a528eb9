package impl

import (
	"context"
	"log/slog"
	"strings"

	"sklad/internal/domain/entity"
	domainerrors "sklad/internal/domain/errors"
	"sklad/internal/domain/repository"
	"sklad/internal/usecase"
	"sklad/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// colorService implements the ColorUsecase interface.
type colorService struct {
	colorRepo repository.ColorRepository
	logger    *slog.Logger
}

// ColorServiceParams holds dependencies for colorService, injected by Fx.
type ColorServiceParams struct {
	fx.In

	ColorRepo repository.ColorRepository
	Logger    *slog.Logger
}

// NewColorService is the constructor for colorService.
func NewColorService(params ColorServiceParams) usecase.ColorUsecase {
	return &colorService{
		colorRepo: params.ColorRepo,
		logger:    params.Logger,
	}
}

// resolveHex settles the display hex code for a color. An explicit code
// wins; otherwise it is derived from the Russian color name, and a name
// the dictionary does not know is rejected so two saves of the same
// name always produce the same code.
func resolveHex(name, hex string) (string, error) {
	hex = strings.TrimSpace(hex)
	if hex != "" {
		if !util.IsValidHexCode(hex) {
			return "", domainerrors.ErrValidationFailed.WrapMessage("malformed hex code")
		}

		return strings.ToUpper(hex), nil
	}

	derived, ok := util.ColorHexByName(name)
	if !ok {
		return "", domainerrors.ErrUnknownColorName.WrapMessage("cannot derive hex code")
	}

	return derived, nil
}

func (srv *colorService) GetColor(ctx context.Context, id uuid.UUID) (*entity.Color, error) {
	color, err := srv.colorRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrColorNotFound) {
			return nil, errors.Wrap(domainerrors.ErrColorNotFound, "get color failed")
		}

		return nil, errors.Wrap(err, "failed to find color by id")
	}

	return color, nil
}

func (srv *colorService) ListColors(ctx context.Context, input *usecase.ListInput) (*usecase.ListColorsOutput, error) {
	_, limit, offset := util.NormalizePagination(input.Page, input.Limit)

	colors, total, err := srv.colorRepo.List(ctx, repository.ListParams{
		Offset: offset,
		Limit:  limit,
		Search: input.Search,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list colors")
	}

	return &usecase.ListColorsOutput{Colors: colors, Total: total}, nil
}

func (srv *colorService) CreateColor(ctx context.Context, input *usecase.ColorInput) (*entity.Color, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("color name is empty")
	}

	hex, err := resolveHex(name, input.Hex)
	if err != nil {
		return nil, err
	}

	color := &entity.Color{Name: name, Hex: hex}
	if err := srv.colorRepo.Create(ctx, color); err != nil {
		return nil, errors.Wrap(err, "failed to create color")
	}
	srv.logger.Info("Color created", "colorID", color.ID, "name", color.Name, "hex", color.Hex)

	return color, nil
}

func (srv *colorService) UpdateColor(ctx context.Context, id uuid.UUID, input *usecase.ColorInput) (*entity.Color, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("color name is empty")
	}

	hex, err := resolveHex(name, input.Hex)
	if err != nil {
		return nil, err
	}

	color, err := srv.colorRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrColorNotFound) {
			return nil, errors.Wrap(domainerrors.ErrColorNotFound, "update color failed")
		}

		return nil, errors.Wrap(err, "failed to find color by id")
	}

	color.Name = name
	color.Hex = hex
	if err := srv.colorRepo.Update(ctx, color); err != nil {
		return nil, errors.Wrap(err, "failed to update color")
	}

	return color, nil
}

func (srv *colorService) DeleteColor(ctx context.Context, id uuid.UUID) error {
	if err := srv.colorRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrColorNotFound):
			return errors.Wrap(domainerrors.ErrColorNotFound, "delete color failed")
		case errors.Is(err, repository.ErrEntityInUse):
			return errors.Wrap(domainerrors.ErrEntityInUse, "delete color failed")
		default:
			return errors.Wrap(err, "failed to delete color")
		}
	}
	srv.logger.Info("Color deleted", "colorID", id)

	return nil
}
