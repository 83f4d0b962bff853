package main

import (
	"fmt"
	"os"

	"github.com/lfmorato/event-report-dashboard-go/internal/adapter/driven/config"
	"github.com/lfmorato/event-report-dashboard-go/internal/adapter/driven/export"
	"github.com/lfmorato/event-report-dashboard-go/internal/adapter/driven/source"
	"github.com/lfmorato/event-report-dashboard-go/internal/adapter/driving/cli"
	"github.com/lfmorato/event-report-dashboard-go/internal/application/usecase"
	"github.com/lfmorato/event-report-dashboard-go/pkg/console"
	"github.com/lfmorato/event-report-dashboard-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	sourceRepo := source.NewSourceRepository()
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o caso de uso
	reportUseCase := usecase.NewReportUseCase(
		sourceRepo,
		exportRepo,
		configRepo,
		consoleImpl,
	)

	// Define o caso de uso no aplicativo CLI
	app.SetReportUseCase(reportUseCase)

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
