package config

import (
	"telecheck-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Enabled:  utils.GetEnvBool("MONGODB_ENABLED", false),
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "telecheck"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Enabled:  utils.GetEnvBool("REDIS_ENABLED", false),
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Enabled:  utils.GetEnvBool("RABBITMQ_ENABLED", false),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                       utils.GetEnvString("APP_ENV", "development"),
			Port:                      utils.GetEnvString("APP_PORT", ":8080"),
			Version:                   utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                   utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                  utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:            utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api/v1"),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeoutInSeconds:  utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxTimeRequestsPerSeconds: utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
		},
		Auth: Auth{
			Provider:                utils.GetEnvString("AUTH_PROVIDER", "fixture"),
			ServiceURL:              utils.GetEnvString("AUTH_SERVICE_URL", "http://localhost:9090/api/auth/login"),
			ServiceTimeoutInSeconds: utils.GetEnvInt("AUTH_SERVICE_TIMEOUT_IN_SECONDS", 10),
			LoginMaxAttempts:        utils.GetEnvInt("AUTH_LOGIN_MAX_ATTEMPTS", 10),
			LoginWindowInMinutes:    utils.GetEnvInt("AUTH_LOGIN_WINDOW_IN_MINUTES", 15),
			LoginRedirectPath:       utils.GetEnvString("AUTH_LOGIN_REDIRECT_PATH", "/login"),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
		},
	}
}
