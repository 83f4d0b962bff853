package types

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoSourceFile = errors.New("no source file given. Use --file or set 'file' in the config file")
	ErrEmptyTable   = errors.New("the source table has no data rows")
)

// SchemaMismatchError indica que a tabela de origem não tem o layout de
// colunas esperado. É fatal para a execução: nenhum relatório é gerado.
type SchemaMismatchError struct {
	ColumnCount   int
	HeaderPreview []string
}

func (e *SchemaMismatchError) Error() string {
	preview := e.HeaderPreview
	if len(preview) > 12 {
		preview = preview[:12]
	}
	return fmt.Sprintf(
		"source table layout does not match the expected export (got %d columns, need the 9 registration fields or at least 54 positional columns). Header starts with: %s",
		e.ColumnCount, strings.Join(preview, " | "),
	)
}
