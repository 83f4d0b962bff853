package source

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/lfmorato/event-report-dashboard-go/internal/domain/entity"
	"github.com/lfmorato/event-report-dashboard-go/internal/domain/repository"
	"github.com/lfmorato/event-report-dashboard-go/internal/shared/types"
)

// SourceRepositoryImpl lê o arquivo exportado (planilha ou texto
// delimitado) e o entrega como tabela bruta. O robô de download que
// produz o arquivo é um colaborador externo.
type SourceRepositoryImpl struct{}

// NewSourceRepository cria uma nova implementação do SourceRepository.
func NewSourceRepository() repository.SourceRepository {
	return &SourceRepositoryImpl{}
}

func (r *SourceRepositoryImpl) ReadTable(ctx context.Context, path string) (*entity.RawTable, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return readSpreadsheet(path)
	default:
		return readDelimited(path)
	}
}

func readSpreadsheet(path string) (*entity.RawTable, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("error opening spreadsheet %s: %w", path, err)
	}
	defer file.Close()

	sheet := file.GetSheetName(0)
	rows, err := file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("error reading sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, types.ErrEmptyTable
	}
	return &entity.RawTable{Header: rows[0], Rows: rows[1:]}, nil
}

// readDelimited tenta vírgula, depois ponto-e-vírgula quando o cabeçalho
// sai estreito demais, e por fim o delimitador mais frequente da primeira
// linha. O sistema de inscrições alterna entre os dois primeiros conforme
// a versão do export.
func readDelimited(path string) (*entity.RawTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", path, err)
	}

	for _, delimiter := range []rune{',', ';'} {
		if table := parseDelimited(data, delimiter); table != nil && len(table.Header) >= 5 {
			return table, nil
		}
	}
	if table := parseDelimited(data, sniffDelimiter(data)); table != nil {
		return table, nil
	}
	return nil, fmt.Errorf("could not detect a delimiter in %s", path)
}

func parseDelimited(data []byte, delimiter rune) *entity.RawTable {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil || len(rows) < 2 {
		return nil
	}
	return &entity.RawTable{Header: rows[0], Rows: rows[1:]}
}

// sniffDelimiter escolhe o candidato mais frequente na primeira linha.
func sniffDelimiter(data []byte) rune {
	firstLine := data
	if idx := bytes.IndexByte(data, '\n'); idx >= 0 {
		firstLine = data[:idx]
	}
	best, bestCount := ',', 0
	for _, candidate := range []rune{',', ';', '\t', '|'} {
		count := bytes.Count(firstLine, []byte(string(candidate)))
		if count > bestCount {
			best, bestCount = candidate, count
		}
	}
	return best
}
