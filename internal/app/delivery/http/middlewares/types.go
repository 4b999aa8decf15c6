package middlewares

import (
	"telecheck-service/internal/app/config"
	"telecheck-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	SessionFactory contracts.SessionFactory
	InternalConfig *config.InternalConfig
}
