package cli

import (
	"context"

	"github.com/lfmorato/event-report-dashboard-go/pkg/version"

	"github.com/lfmorato/event-report-dashboard-go/internal/application/usecase"
	"github.com/lfmorato/event-report-dashboard-go/internal/shared/types"
	"github.com/spf13/cobra"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd       *cobra.Command
	reportUseCase *usecase.ReportUseCase
	version       string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "event-report",
		Short:   "Event Registration Report Dashboard CLI",
		Version: formattedVersion,
		RunE:    app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "Event Report Dashboard version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("file", "f", "", "Registration export to process (.xlsx or delimited text)")
	rootCmd.PersistentFlags().StringP("event", "e", "", "Event name used in the report title and artifact name")
	rootCmd.PersistentFlags().String("year", "", "Event year (default: current year)")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", nil, "Report types: pdf, csv, json (default: pdf)")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	configFile, _ := app.rootCmd.Flags().GetString("config-file")
	file, _ := app.rootCmd.Flags().GetString("file")
	event, _ := app.rootCmd.Flags().GetString("event")
	year, _ := app.rootCmd.Flags().GetString("year")
	dir, _ := app.rootCmd.Flags().GetString("dir")
	reportType, _ := app.rootCmd.Flags().GetStringSlice("report-type")

	args := &types.CLIArgs{
		ConfigFile: configFile,
		File:       file,
		Event:      event,
		Year:       year,
		Dir:        dir,
		ReportType: reportType,
	}

	return args, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	displayWelcomeBanner(app.version)

	go version.CheckLatestVersion(app.version)

	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	ctx := context.Background()
	return app.reportUseCase.RunReport(ctx, cliArgs)
}

// SetReportUseCase sets the report use case for the CLI app.
func (app *CLIApp) SetReportUseCase(useCase *usecase.ReportUseCase) {
	app.reportUseCase = useCase
}
