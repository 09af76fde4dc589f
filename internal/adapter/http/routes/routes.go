package routes

import (
	"context"
	"fmt"
	"log"
	"strconv"

	_ "freight_quote/docs"
	"freight_quote/internal/adapter/http/handlers"
	"freight_quote/internal/adapter/persistence/repository"
	"freight_quote/internal/config"
	"freight_quote/internal/domain/pricing"
	"freight_quote/internal/infrastructure/artifacts"
	"freight_quote/internal/infrastructure/database"
	"freight_quote/internal/infrastructure/mailer"
	"freight_quote/internal/usecase"
	"freight_quote/internal/usecase/interfaces"
	"freight_quote/pkg/logger"
	"freight_quote/pkg/metrics"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLog := logger.New(logger.Options{
		ServiceName: cfg.App.ServiceName,
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Console:     cfg.App.LogFormat == "console",
	})
	if !cfg.App.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics.Register()
	setMiddlewares(appLog)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	if err := getRoutes(context.Background(), cfg, appLog); err != nil {
		log.Fatalf("Failed to wire the application: %v", err)
	}

	appLog.Info(context.Background(), fmt.Sprintf("[app][boot] listening port=%d env=%s sink=%s", cfg.App.Port, cfg.App.Env, cfg.Export.Sink))
	if err := router.Run(":" + strconv.Itoa(cfg.App.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(ctx context.Context, cfg *config.Config, appLog *logger.Logger) error {
	table, err := pricing.Load(cfg.Export.PricingFile)
	if err != nil {
		return err
	}

	// DynamoDB backs the drafts in every mode and the archive in dynamodb mode.
	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		return err
	}

	sink, err := newArtifactSink(cfg, ddb, appLog)
	if err != nil {
		return err
	}

	var sender interfaces.IEmailSender
	smtpMailer, err := mailer.NewSMTPMailer(cfg.Mail, appLog)
	if err != nil {
		appLog.Warn(ctx, "[app][boot] mail transport not configured: "+err.Error())
	} else {
		sender = smtpMailer
	}

	generator := usecase.NewQuoteGenerator(table, usecase.NewReferenceSequence(cfg.Export.ReferenceSequence))
	exportUseCase := usecase.NewQuoteExportUseCase(
		generator,
		usecase.NewQuoteValidator(),
		sink,
		sender,
		appLog,
		cfg.Export.DefaultRecipient,
	)
	draftRepo := repository.NewDraftQuoteDynamoRepository(ddb, cfg.Tables.Drafts)
	draftUseCase := usecase.NewDraftQuoteUseCase(draftRepo, appLog)

	quoteHandler := handlers.NewQuoteHandler(exportUseCase, cfg.Export.BatchSkipValidation)
	draftHandler := handlers.NewDraftQuoteHandler(draftUseCase)

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, quoteHandler)
	addDraftRoutes(v1, draftHandler)
	return nil
}

// newArtifactSink resolves EXPORT_SINK. "none" yields a nil sink: exports are
// rendered and returned but not kept.
func newArtifactSink(cfg *config.Config, ddb *dynamodb.Client, appLog *logger.Logger) (interfaces.IArtifactSink, error) {
	switch cfg.Export.Sink {
	case config.SinkDynamoDB:
		return repository.NewQuoteArtifactDynamoRepository(ddb, cfg.Tables.Exports), nil
	case config.SinkFilesystem:
		s, err := artifacts.NewDirSink(cfg.Export.Dir, appLog)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, nil
	}
}

func setMiddlewares(appLog *logger.Logger) {
	router.Use(gin.Logger())
	router.Use(metrics.GinMiddleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		appLog.Error(c.Request.Context(), "[app][http] recovered from panic", fmt.Errorf("%v", recovered))
		c.AbortWithStatus(500)
	}))
}
