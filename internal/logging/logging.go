package logging

import (
	"strings"

	"go.uber.org/zap"
)

// New builds the application logger. Mode "prod" (or "production") selects the
// JSON production encoder; anything else gets the console development encoder.
func New(mode string) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
