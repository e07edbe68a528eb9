package main

import (
	"context"
	"log/slog"
	"os"

	"sklad/config"
	"sklad/internal/delivery"
	"sklad/internal/delivery/http"
	"sklad/internal/delivery/http/middleware"
	"sklad/internal/delivery/http/router/handler"
	"sklad/internal/infra/auth"
	logs "sklad/internal/infra/log"
	"sklad/internal/infra/persistence/postgres"
	"sklad/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		newAuthConfig,
		newRateLimitConfig,
	)
}

// newAuthConfig exposes the auth section for components that only need it
func newAuthConfig(cfg *config.Config) *config.AuthConfig {
	return cfg.Auth
}

// newRateLimitConfig exposes the rate limit section for the limiter middleware
func newRateLimitConfig(cfg *config.Config) *config.RateLimitConfig {
	return cfg.RateLimit
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewBrandRepository,
			postgres.NewCategoryRepository,
			postgres.NewColorRepository,
			postgres.NewProductRepository,
			postgres.NewReceiptRepository,
			postgres.NewRealizationRepository,
			postgres.NewChatRepository,
			postgres.NewTaskRepository,
			postgres.NewUserActionRepository,
			postgres.NewReportRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewBrandService,
			impl.NewCategoryService,
			impl.NewColorService,
			impl.NewProductService,
			impl.NewReceiptService,
			impl.NewRealizationService,
			impl.NewChatService,
			impl.NewTaskService,
			impl.NewAuditService,
			impl.NewReportService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRateLimitMiddleware,
			middleware.NewAuditMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewBrandHandler,
			handler.NewCategoryHandler,
			handler.NewColorHandler,
			handler.NewProductHandler,
			handler.NewReceiptHandler,
			handler.NewRealizationHandler,
			handler.NewChatHandler,
			handler.NewTaskHandler,
			handler.NewReportHandler,
			handler.NewActionHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
