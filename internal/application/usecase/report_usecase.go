package usecase

import (
	"context"
	"errors"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/lfmorato/event-report-dashboard-go/internal/application/pipeline"
	"github.com/lfmorato/event-report-dashboard-go/internal/domain/entity"
	"github.com/lfmorato/event-report-dashboard-go/internal/domain/repository"
	"github.com/lfmorato/event-report-dashboard-go/internal/shared/types"
)

// ReportUseCase handles the main report generation flow.
type ReportUseCase struct {
	sourceRepo repository.SourceRepository
	exportRepo repository.ExportRepository
	configRepo repository.ConfigRepository
	console    types.ConsoleInterface
}

// NewReportUseCase creates a new report use case.
func NewReportUseCase(
	sourceRepo repository.SourceRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
) *ReportUseCase {
	return &ReportUseCase{
		sourceRepo: sourceRepo,
		exportRepo: exportRepo,
		configRepo: configRepo,
		console:    console,
	}
}

// resolveArgs mescla o arquivo de configuração (quando informado) com os
// argumentos da CLI. Flags explícitas vencem os valores do arquivo.
func (uc *ReportUseCase) resolveArgs(args *types.CLIArgs) error {
	if args.ConfigFile != "" {
		config, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return err
		}
		if args.File == "" {
			args.File = config.File
		}
		if args.Event == "" {
			args.Event = config.Event
		}
		if args.Year == "" {
			args.Year = config.Year
		}
		if args.Dir == "" {
			args.Dir = config.Dir
		}
		if len(args.ReportType) == 0 {
			args.ReportType = config.ReportType
		}
	}

	if args.File == "" {
		return types.ErrNoSourceFile
	}
	if args.Event == "" {
		base := filepath.Base(args.File)
		args.Event = strings.ToUpper(strings.TrimSuffix(base, filepath.Ext(base)))
	}
	if args.Year == "" {
		args.Year = strconv.Itoa(time.Now().Year())
	}
	if len(args.ReportType) == 0 {
		args.ReportType = []string{"pdf"}
	}
	return nil
}

// RunReport executa o fluxo completo: leitura do arquivo, pipeline de
// limpeza e agregação, dashboard no console e exportação dos relatórios.
func (uc *ReportUseCase) RunReport(ctx context.Context, args *types.CLIArgs) error {
	if err := uc.resolveArgs(args); err != nil {
		return err
	}

	status := uc.console.Status("Lendo arquivo de inscrições...")
	table, err := uc.sourceRepo.ReadTable(ctx, args.File)
	if err != nil {
		status.Stop()
		return err
	}

	status.Update("Processando registros...")
	summary, err := pipeline.BuildSummary(table, args.Event, args.Year, time.Now())
	status.Stop()
	if err != nil {
		var schemaErr *types.SchemaMismatchError
		if errors.As(err, &schemaErr) {
			// Mostra o começo do cabeçalho para diagnóstico, como o
			// relatório não pode ser gerado com esse layout.
			uc.console.LogError("O layout do arquivo está diferente do esperado. Verifique as colunas.")
		}
		return err
	}

	uc.displaySummary(summary)
	uc.exportReports(summary, args)
	return nil
}

// displaySummary renderiza o dashboard no console: KPIs, tendência
// semanal, distribuições e tabelas cruzadas.
func (uc *ReportUseCase) displaySummary(summary *entity.Summary) {
	uc.console.LogInfo("Relatório - %s %s (gerado em %s)", summary.Event, summary.Year, summary.GeneratedAt)

	kpiTable := uc.console.CreateTable()
	kpiTable.AddColumn("Total")
	kpiTable.AddColumn("Pagos")
	kpiTable.AddColumn("Cortesias")
	kpiTable.AddColumn("Aberto")
	kpiTable.AddRow(summary.TotalCount, summary.PaidCount, summary.CourtesyCount, summary.OpenCount)
	uc.console.Print(kpiTable.Render())

	if len(summary.Weekly) > 0 {
		points := make([]types.WeeklyPoint, 0, len(summary.Weekly))
		for i, week := range summary.Weekly {
			points = append(points, types.WeeklyPoint{
				Label:    summary.WeekLabels[i],
				Paid:     week.Paid,
				Courtesy: week.Courtesy,
				Open:     week.Open,
			})
		}
		uc.console.DisplayWeeklyTrend(points)
	}

	regionTable := uc.console.CreateTable()
	regionTable.AddColumn("Região")
	regionTable.AddColumn("Inscrições")
	regionTable.AddColumn("Participação")
	for _, region := range summary.Regions {
		regionTable.AddRow(string(region.Region), region.Count, strconv.Itoa(int(region.Share*100))+"%")
	}
	uc.console.Print(regionTable.Render())

	ageTable := uc.console.CreateTable()
	ageTable.AddColumn("Faixa Etária")
	ageTable.AddColumn("Inscrições")
	for _, age := range summary.Ages {
		ageTable.AddRow(age.Bucket, age.Count)
	}
	uc.console.Print(ageTable.Render())

	uc.displayCrossTab("Categoria", summary.ByCategory)
	uc.displayCrossTab("País", summary.ByCountry)
	uc.displayCrossTab("Estados (BR)", summary.ByState)
}

func (uc *ReportUseCase) displayCrossTab(title string, rows []entity.CrossTabRow) {
	if len(rows) == 0 {
		return
	}
	table := uc.console.CreateTable()
	table.AddColumn(title)
	table.AddColumn("Total")
	table.AddColumn("Pagos")
	table.AddColumn("Cort.")
	table.AddColumn("Aberto")
	for _, row := range rows {
		table.AddRow(row.Label, row.Total, row.Paid, row.Courtesy, row.Open)
	}
	uc.console.Print(table.Render())
}

// exportReports exporta nos formatos pedidos. Falha em um formato não
// impede os demais.
func (uc *ReportUseCase) exportReports(summary *entity.Summary, args *types.CLIArgs) {
	for _, reportType := range args.ReportType {
		switch reportType {
		case "csv":
			csvPath, err := uc.exportRepo.ExportSummaryToCSV(summary, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to CSV: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to CSV: %s", csvPath)
			}
		case "json":
			jsonPath, err := uc.exportRepo.ExportSummaryToJSON(summary, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to JSON: %s", jsonPath)
			}
		case "pdf":
			pdfPath, err := uc.exportRepo.ExportSummaryToPDF(summary, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to PDF: %s", pdfPath)
			}
		default:
			uc.console.LogWarning("Unknown report type: %s", reportType)
		}
	}
}
