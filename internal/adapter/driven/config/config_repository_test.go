package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestLoadConfigFile(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			"toml",
			"config.toml",
			"file = \"inscricoes.xlsx\"\nevent = \"CONGRESSO\"\nyear = \"2026\"\nreport_type = [\"pdf\", \"csv\"]\n",
		},
		{
			"yaml",
			"config.yaml",
			"file: inscricoes.xlsx\nevent: CONGRESSO\nyear: \"2026\"\nreport_type:\n  - pdf\n  - csv\n",
		},
		{
			"json",
			"config.json",
			`{"file": "inscricoes.xlsx", "event": "CONGRESSO", "year": "2026", "report_type": ["pdf", "csv"]}`,
		},
	}

	repo := NewConfigRepository()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.file, tt.content)
			config, err := repo.LoadConfigFile(path)
			if err != nil {
				t.Fatalf("LoadConfigFile: %v", err)
			}
			if config.File != "inscricoes.xlsx" || config.Event != "CONGRESSO" || config.Year != "2026" {
				t.Errorf("config = %+v", config)
			}
			if len(config.ReportType) != 2 || config.ReportType[0] != "pdf" {
				t.Errorf("ReportType = %v", config.ReportType)
			}
		})
	}
}

func TestLoadConfigFileUnsupportedFormat(t *testing.T) {
	path := writeConfig(t, "config.ini", "file=inscricoes.xlsx")
	repo := NewConfigRepository()
	if _, err := repo.LoadConfigFile(path); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestLoadConfigFileMissing(t *testing.T) {
	repo := NewConfigRepository()
	if _, err := repo.LoadConfigFile("/nonexistent/config.toml"); err == nil {
		t.Error("expected error for missing file")
	}
}
