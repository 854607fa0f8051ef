package service

import (
	"github.com/ATenderholt/rainbow-copy/internal/logging"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var logger *zap.SugaredLogger

var tracer = otel.Tracer("github.com/ATenderholt/rainbow-copy/internal/service")

func init() {
	logger = logging.NewLogger().Named("service")
}
