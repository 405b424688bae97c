package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"pfp3"
	"pfp3/config"
	"pfp3/internal/application/usecase"
	"pfp3/internal/domain/model"
	"pfp3/internal/domain/repository/blob"
	"pfp3/internal/infrastructure/broker"
	"pfp3/internal/infrastructure/database"
	"pfp3/internal/infrastructure/fsstore"
	"pfp3/internal/infrastructure/identity"
	minioInfra "pfp3/internal/infrastructure/minio"
	"pfp3/internal/presentation"
	"pfp3/internal/presentation/handler"
	"pfp3/internal/presentation/middleware"
	"pfp3/pkg/logger"
)

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	logger.Info("running pfp3", "version", pfp3.StringVersion())

	db, err := database.Connect(cfg.DBConfig)
	if err != nil {
		ExitOnError(err)
	}

	users := database.NewUserRetriever(db)
	pointers := database.NewAvatarWriter(db)

	if err := database.NewUserSeeder(db).Seed(context.Background(), seedUsers(cfg.Users)); err != nil {
		ExitOnError(err)
	}

	blobStore, err := newBlobStore(cfg)
	if err != nil {
		ExitOnError(err)
	}

	brokerClient, err := broker.NewClient(cfg.BrokerConfig)
	if err != nil {
		ExitOnError(err)
	}
	publisher := broker.NewPublisher(brokerClient, cfg.PublisherConfig)

	validator := usecase.NewValidator(cfg.Avatar.AllowedMediaTypes, cfg.Avatar.MaxSizeInBytes)
	uploader := usecase.NewUploader(validator, users, pointers, blobStore, blobStore, publisher)
	getter := usecase.NewGetter(users, blobStore)
	resolver := identity.NewDirectoryResolver(users)

	uploadHandler := handler.NewUploadHandler(uploader)
	getHandler := handler.NewGetHandler(getter)

	e := echo.New()
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderContentLength},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		MaxAge:       86400,
	}))
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	// Above the avatar ceiling on purpose: policy violations surface as 413
	// from validation, not as a transport-level rejection.
	e.Use(echoMiddleware.BodyLimit("8M"))
	e.Use(echoMiddleware.RateLimiter(echoMiddleware.NewRateLimiterMemoryStore(20)))

	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	e.POST("/users/me/avatar", uploadHandler.Handle, middleware.AuthMiddleware(resolver))
	e.GET(fmt.Sprintf("/users/:%s/avatar", presentation.UserIDParam), getHandler.Handle)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(cfg.HTTPServer.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(fmt.Errorf("shutting down server: %w", err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		ExitOnError(err)
	}

	if err := brokerClient.Close(); err != nil {
		logger.Error("failed to close broker client", "err", err)
	}
	if err := db.Stop(); err != nil {
		logger.Error("failed to disconnect database", "err", err)
	}
}

func newBlobStore(cfg *config.Config) (blob.Store, error) {
	switch cfg.Storage.Backend {
	case config.BackendMinIO:
		client, err := minioInfra.New(&cfg.MinIOClient)
		if err != nil {
			return nil, err
		}
		if err := client.EnsureBucket(context.Background(), cfg.MinIOStore.Bucket); err != nil {
			return nil, err
		}

		return minioInfra.NewStore(client.MinioClient, &cfg.MinIOStore), nil

	default:
		return fsstore.New(&cfg.FSStore)
	}
}

func seedUsers(seeds []config.SeedUser) []model.User {
	users := make([]model.User, 0, len(seeds))
	for _, s := range seeds {
		users = append(users, model.User{ID: s.ID, Username: s.Username})
	}

	return users
}
