package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "broker_quotes/docs" // generated by swag init
	"broker_quotes/internal/adapter/http/handlers"
	"broker_quotes/internal/adapter/http/middleware"
	"broker_quotes/internal/adapter/persistence/repository"
	"broker_quotes/internal/infrastructure/database"
	"broker_quotes/internal/infrastructure/insurers"
	"broker_quotes/internal/usecase"
	"broker_quotes/internal/usecase/interfaces"
	logx "broker_quotes/pkg/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	StorageDynamoDB = "dynamodb"
	StoragePostgres = "postgres"
)

type ServerConfig struct {
	Port          int    `envconfig:"PORT" default:"8080"`
	StorageDriver string `envconfig:"STORAGE_DRIVER" default:"dynamodb"`
	DevBypassAuth bool   `envconfig:"DEV_BYPASS_AUTH" default:"false"`
}

// Options gathers every config section the server needs.
type Options struct {
	Server      ServerConfig
	Aggregation usecase.AggregationConfig
	DynamoDB    database.DynamoDBConfig
	Postgres    database.PostgresConfig
}

type repositories struct {
	quotes      interfaces.IQuoteRepository
	connections interfaces.IInsurerConnectionRepository
	rates       interfaces.IRateTableRepository
	close       func()
}

type handlerSet struct {
	quotes      *handlers.QuoteHandler
	connections *handlers.ConnectionHandler
	rateTables  *handlers.RateTableHandler
}

// Run will start the server and block until SIGINT/SIGTERM.
func Run(opts Options) {
	logger := logx.Component("http.server")
	ctx := context.Background()

	repos, err := newRepositories(ctx, opts)
	if err != nil {
		logger.Fatal().Err(err).Str("driver", opts.Server.StorageDriver).Msg("failed to initialise storage")
	}
	defer repos.close()

	router := newRouter(newHandlers(repos, opts.Aggregation), opts.Server.DevBypassAuth)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Int("port", opts.Server.Port).Str("driver", opts.Server.StorageDriver).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logger.Fatal().Err(err).Msg("failed to startup the application")
	case <-quit:
		logger.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("graceful shutdown failed")
		}
	}
}

func newRepositories(ctx context.Context, opts Options) (repositories, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Server.StorageDriver)) {
	case "", StorageDynamoDB:
		ddb := database.ConnectDynamoDB(opts.DynamoDB)
		return repositories{
			quotes:      repository.NewQuoteDynamoRepository(ddb),
			connections: repository.NewInsurerConnectionDynamoRepository(ddb),
			rates:       repository.NewRateTableDynamoRepository(ddb),
			close:       func() {},
		}, nil
	case StoragePostgres:
		db, err := database.ConnectPostgres(ctx, opts.Postgres)
		if err != nil {
			return repositories{}, err
		}
		if err := repository.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return repositories{}, err
		}
		return repositories{
			quotes:      repository.NewQuotePostgresRepository(db),
			connections: repository.NewInsurerConnectionPostgresRepository(db),
			rates:       repository.NewRateTablePostgresRepository(db),
			close:       func() { _ = db.Close() },
		}, nil
	default:
		return repositories{}, fmt.Errorf("unknown storage driver %q", opts.Server.StorageDriver)
	}
}

func newHandlers(repos repositories, agg usecase.AggregationConfig) handlerSet {
	// Per-call deadlines come from the aggregation context, not the client.
	registry := insurers.NewDefaultRegistry(repos.rates, &http.Client{})

	quoteUseCase := usecase.NewQuoteUseCase(repos.quotes, repos.connections, registry, agg)
	connectionUseCase := usecase.NewInsurerConnectionUseCase(repos.connections)
	rateTableUseCase := usecase.NewRateTableUseCase(repos.rates)

	return handlerSet{
		quotes:      handlers.NewQuoteHandler(quoteUseCase),
		connections: handlers.NewConnectionHandler(connectionUseCase),
		rateTables:  handlers.NewRateTableHandler(rateTableUseCase),
	}
}

func newRouter(h handlerSet, devBypassAuth bool) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(), middleware.Recovery())

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBrokerRoutes(v1, middleware.BrokerAuth(devBypassAuth), h)
	return router
}
