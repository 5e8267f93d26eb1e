package app

import (
	"context"

	"procompare/internal/core/ports"
)

// Application runs the comparison engine behind the CLI.
type Application struct {
	Engine ports.ComparisonEngine
	Logger ports.Logger
}

func NewApplication(engine ports.ComparisonEngine, logger ports.Logger) *Application {
	return &Application{
		Engine: engine,
		Logger: logger,
	}
}

func (a *Application) Run(ctx context.Context) error {
	a.Logger.Infof(ctx, "Starting process comparison...")

	if err := a.Engine.Run(ctx); err != nil {
		a.Logger.Errorf(ctx, err, "Process comparison failed")
		return err
	}

	a.Logger.Infof(ctx, "Process comparison completed successfully")
	return nil
}
