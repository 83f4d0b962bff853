package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lfmorato/event-report-dashboard-go/internal/domain/entity"
)

func sampleSummary() *entity.Summary {
	week := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	return &entity.Summary{
		Event:         "MEU EVENTO",
		Year:          "2026",
		GeneratedAt:   "20/03/2026 09:00",
		TotalCount:    2,
		PaidCount:     1,
		CourtesyCount: 1,
		Weekly: []entity.WeeklyCount{
			{WeekEnding: week, Paid: 1, Courtesy: 1},
		},
		WeekLabels: []string{"8 Mar 2026"},
		Regions: []entity.RegionShare{
			{Region: entity.RegionSoutheast, Count: 2, Share: 1.0},
		},
		Ages: []entity.AgeCount{
			{Bucket: entity.AgeBucket36to45, Count: 2},
		},
		ByCategory: []entity.CrossTabRow{
			{Label: "Médico", Paid: 1, Courtesy: 1, Total: 2},
		},
		ByCountry: []entity.CrossTabRow{
			{Label: "BRASIL", Paid: 1, Courtesy: 1, Total: 2},
		},
		ByState: []entity.CrossTabRow{
			{Label: "RJ", Courtesy: 1, Total: 1},
			{Label: "SP", Paid: 1, Total: 1},
		},
	}
}

func TestExportSummaryToJSON(t *testing.T) {
	dir := t.TempDir()
	repo := NewExportRepository()

	path, err := repo.ExportSummaryToJSON(sampleSummary(), dir)
	if err != nil {
		t.Fatalf("ExportSummaryToJSON: %v", err)
	}
	if filepath.Base(path) != "Relatorio_MEU_EVENTO_2026.json" {
		t.Errorf("filename = %s", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	var decoded entity.Summary
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decoding export: %v", err)
	}
	if decoded.Event != "MEU EVENTO" || decoded.TotalCount != 2 {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestExportSummaryToCSV(t *testing.T) {
	dir := t.TempDir()
	repo := NewExportRepository()

	path, err := repo.ExportSummaryToCSV(sampleSummary(), dir)
	if err != nil {
		t.Fatalf("ExportSummaryToCSV: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	content := string(data)
	for _, fragment := range []string{"MEU EVENTO", "Médico", "2026-03-08", "Southeast", "100%"} {
		if !strings.Contains(content, fragment) {
			t.Errorf("CSV export missing %q", fragment)
		}
	}
}

func TestExportSummaryToPDF(t *testing.T) {
	dir := t.TempDir()
	repo := NewExportRepository()

	path, err := repo.ExportSummaryToPDF(sampleSummary(), dir)
	if err != nil {
		t.Fatalf("ExportSummaryToPDF: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat export: %v", err)
	}
	if info.Size() == 0 {
		t.Error("PDF export is empty")
	}
	if filepath.Base(path) != "Relatorio_MEU_EVENTO_2026.pdf" {
		t.Errorf("filename = %s", filepath.Base(path))
	}
}

func TestGenerateReportFilenameCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "relatorios", "2026")
	path, err := generateReportFilename(sampleSummary(), dir, "csv")
	if err != nil {
		t.Fatalf("generateReportFilename: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("output dir was not created: %v", err)
	}
	if filepath.Base(path) != "Relatorio_MEU_EVENTO_2026.csv" {
		t.Errorf("filename = %s", filepath.Base(path))
	}
}
