package repository

import (
	"github.com/lfmorato/event-report-dashboard-go/internal/domain/entity"
)

type ExportRepository interface {
	ExportSummaryToCSV(summary *entity.Summary, outputDir string) (string, error)
	ExportSummaryToJSON(summary *entity.Summary, outputDir string) (string, error)
	ExportSummaryToPDF(summary *entity.Summary, outputDir string) (string, error)
}
