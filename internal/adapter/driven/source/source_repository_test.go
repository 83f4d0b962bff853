package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/lfmorato/event-report-dashboard-go/internal/shared/types"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestReadTableCommaCSV(t *testing.T) {
	path := writeTempFile(t, "export.csv",
		"Nome,Categoria,Pagamento,Data,Situação\nAna,Médico,Boleto,05/03/2026,Pago\n")

	repo := NewSourceRepository()
	table, err := repo.ReadTable(context.Background(), path)
	if err != nil {
		t.Fatalf("ReadTable: %v", err)
	}
	if len(table.Header) != 5 || table.Header[0] != "Nome" {
		t.Errorf("header = %v", table.Header)
	}
	if len(table.Rows) != 1 || table.Rows[0][0] != "Ana" {
		t.Errorf("rows = %v", table.Rows)
	}
}

func TestReadTableSemicolonFallback(t *testing.T) {
	path := writeTempFile(t, "export.csv",
		"Nome;Categoria;Pagamento;Data;Situação\nBeto;Enfermeiro;Cortesia;;Pendente\n")

	repo := NewSourceRepository()
	table, err := repo.ReadTable(context.Background(), path)
	if err != nil {
		t.Fatalf("ReadTable: %v", err)
	}
	if len(table.Header) != 5 || table.Header[1] != "Categoria" {
		t.Errorf("header = %v", table.Header)
	}
}

func TestReadTableSniffsPipe(t *testing.T) {
	path := writeTempFile(t, "export.txt",
		"Nome|Categoria|Pagamento\nCarla|Estudante|Boleto\n")

	repo := NewSourceRepository()
	table, err := repo.ReadTable(context.Background(), path)
	if err != nil {
		t.Fatalf("ReadTable: %v", err)
	}
	if len(table.Header) != 3 || table.Header[2] != "Pagamento" {
		t.Errorf("header = %v", table.Header)
	}
}

func TestReadTableSpreadsheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.xlsx")
	file := excelize.NewFile()
	sheet := file.GetSheetName(0)
	file.SetSheetRow(sheet, "A1", &[]interface{}{"Nome", "Categoria"})
	file.SetSheetRow(sheet, "A2", &[]interface{}{"Ana", "Médico"})
	if err := file.SaveAs(path); err != nil {
		t.Fatalf("saving fixture: %v", err)
	}
	file.Close()

	repo := NewSourceRepository()
	table, err := repo.ReadTable(context.Background(), path)
	if err != nil {
		t.Fatalf("ReadTable: %v", err)
	}
	if len(table.Rows) != 1 || table.Rows[0][0] != "Ana" {
		t.Errorf("rows = %v", table.Rows)
	}
}

func TestReadTableSpreadsheetHeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vazio.xlsx")
	file := excelize.NewFile()
	sheet := file.GetSheetName(0)
	file.SetSheetRow(sheet, "A1", &[]interface{}{"Nome", "Categoria"})
	if err := file.SaveAs(path); err != nil {
		t.Fatalf("saving fixture: %v", err)
	}
	file.Close()

	repo := NewSourceRepository()
	_, err := repo.ReadTable(context.Background(), path)
	if !errors.Is(err, types.ErrEmptyTable) {
		t.Errorf("expected ErrEmptyTable, got %v", err)
	}
}

func TestReadTableMissingFile(t *testing.T) {
	repo := NewSourceRepository()
	if _, err := repo.ReadTable(context.Background(), "/nonexistent/export.csv"); err == nil {
		t.Error("expected error for missing file")
	}
}
