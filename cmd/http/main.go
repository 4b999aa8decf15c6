package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"telecheck-service/internal/app/config"
	"telecheck-service/internal/app/contracts"
	"telecheck-service/internal/app/delivery/http/controllers"
	"telecheck-service/internal/app/delivery/http/middlewares"
	"telecheck-service/internal/app/delivery/http/routers"
	"telecheck-service/internal/app/drivers/database"
	appLogger "telecheck-service/internal/app/drivers/logger"
	"telecheck-service/internal/app/drivers/messaging"
	"telecheck-service/internal/app/services/core/accounts"
	"telecheck-service/internal/app/services/core/sessions"
	"telecheck-service/internal/app/services/shared/audit"
	"telecheck-service/internal/app/services/shared/authenticator"
	"telecheck-service/internal/app/services/shared/ratelimiter"
	"telecheck-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := appLogger.NewLogrusLogger(internalConfig)
	zapLogger := appLogger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	bootstrap := config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	if driverConfig.Redis.Enabled {
		bootstrap.Redis = database.NewRedisClient(driverConfig)
	}
	if driverConfig.MongoDB.Enabled {
		bootstrap.MongoDB = database.NewMongoDB(driverConfig)
	}
	if driverConfig.RabbitMQ.Enabled {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig)
	}

	bootstrapingTheApp(&bootstrap, log)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		log.Printf("Listening on %s", internalConfig.App.Port)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error while closing drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap, log *logrus.Logger) {
	// Session storage
	var sessionStorage contracts.SessionStorage
	if bootstrap.Redis != nil {
		sessionStorage = storage.NewRedisSessionStorage(bootstrap.Redis)
	} else {
		log.Println("Redis disabled, using in-memory session storage")
		sessionStorage = storage.NewMemorySessionStorage()
	}

	// Authenticator
	var auth contracts.Authenticator
	switch bootstrap.InternalConfig.Auth.Provider {
	case "http":
		auth = authenticator.NewHTTPAuthenticator(
			bootstrap.InternalConfig.Auth.ServiceURL,
			time.Duration(bootstrap.InternalConfig.Auth.ServiceTimeoutInSeconds)*time.Second,
			bootstrap.Logger,
		)
	case "directory":
		if bootstrap.MongoDB == nil {
			log.Fatalf("Auth provider 'directory' requires MongoDB to be enabled")
		}
		accountRepository := accounts.NewAccountMongoRepository(
			bootstrap.MongoDB.Database(bootstrap.DriverConfig.MongoDB.DbName),
		)
		auth = authenticator.NewDirectoryAuthenticator(accountRepository, bootstrap.Logger)
	default:
		log.Println("Using fixture authenticator with sample identities")
		auth = authenticator.NewFixtureAuthenticator(bootstrap.Logger)
	}

	// Audit
	var auditPublisher contracts.AuditPublisher
	if bootstrap.RabbitMQ != nil {
		var err error
		auditPublisher, err = audit.NewQueuePublisher(bootstrap.RabbitMQ, bootstrap.Logger)
		if err != nil {
			log.Fatalf("Failed to set up audit queue: %v", err)
		}
	} else {
		auditPublisher = audit.NewNoopPublisher()
	}

	// Sessions
	sessionFactory := sessions.NewSessionFactory(auth, sessionStorage, auditPublisher, bootstrap.Logger)

	// Login throttle
	loginLimiter := ratelimiter.NewLoginLimiter(
		sessionStorage,
		bootstrap.InternalConfig.Auth.LoginMaxAttempts,
		time.Duration(bootstrap.InternalConfig.Auth.LoginWindowInMinutes)*time.Minute,
		bootstrap.Logger,
	)

	// Middlewares
	middlewares := &middlewares.Middlewares{
		Log:            bootstrap.Logger,
		SessionFactory: sessionFactory,
		InternalConfig: bootstrap.InternalConfig,
	}

	// Controllers
	authController := controllers.NewAuthController(bootstrap.Logger, sessionFactory, loginLimiter, bootstrap.InternalConfig)
	portalController := controllers.NewPortalController(bootstrap.Logger)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, authController, portalController)
}
