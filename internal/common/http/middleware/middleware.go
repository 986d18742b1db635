package middleware

import (
	"github.com/abeheron1/mock-data-holder/internal/config"

	"go.uber.org/zap"
)

type AppMiddleware struct {
	conf   config.Config
	logger *zap.Logger
}

func NewMiddleware(conf config.Config, logger *zap.Logger) AppMiddleware {
	return AppMiddleware{
		conf:   conf,
		logger: logger,
	}
}
