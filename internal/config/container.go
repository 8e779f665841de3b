package config

import (
	"pdf-toolkit/internal/domain"
	"pdf-toolkit/internal/engine"
	"pdf-toolkit/internal/service"
	"pdf-toolkit/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config           domain.Config
	Logger           domain.Logger
	Engine           domain.DocumentEngine
	OperationService domain.OperationService
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel())

	pdfEngine := engine.NewPDFCPUEngine(appLogger)
	operationService := service.NewOperationService(pdfEngine, config, appLogger)

	return &Container{
		Config:           config,
		Logger:           appLogger,
		Engine:           pdfEngine,
		OperationService: operationService,
	}
}
