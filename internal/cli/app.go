package cli

import (
	"fmt"

	"github.com/walletive/backend/config"
	"github.com/walletive/backend/internal/application/usecase/dashboard"
	"github.com/walletive/backend/internal/application/usecase/setup"
	"github.com/walletive/backend/internal/application/usecase/survey"
	"github.com/walletive/backend/internal/infra/db"
	"github.com/walletive/backend/internal/integration/persistence"
)

// app holds the use cases the terminal commands run against a local store.
type app struct {
	database *db.Database
	submit   *survey.SubmitSurveyUseCase
	summary  *dashboard.GetSummaryUseCase
	status   *setup.GetStatusUseCase
}

func openApp(cfg *config.Config) (*app, error) {
	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	if err := database.Migrate(); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to migrate store: %w", err)
	}

	gdb := database.DB()
	setupRepo := persistence.NewSetupRepository(gdb)

	return &app{
		database: database,
		submit:   survey.NewSubmitSurveyUseCase(persistence.NewSurveyRepository(gdb), setupRepo),
		summary:  dashboard.NewGetSummaryUseCase(persistence.NewDashboardRepository(gdb), setupRepo),
		status:   setup.NewGetStatusUseCase(setupRepo),
	}, nil
}

func (a *app) Close() error {
	return a.database.Close()
}
