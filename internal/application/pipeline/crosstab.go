package pipeline

import (
	"sort"

	"github.com/lfmorato/event-report-dashboard-go/internal/domain/entity"
)

// brazilToken é o país normalizado que pré-filtra a tabela de estados.
const brazilToken = "BRASIL"

// CrossTab agrupa os registros por (campo, status) e monta a tabela com
// coluna Total, ordenada por Total decrescente (empates por rótulo).
// As três colunas de status sempre existem, zeradas quando ausentes.
func CrossTab(records []entity.Registration, key func(entity.Registration) string) []entity.CrossTabRow {
	byLabel := make(map[string]*entity.CrossTabRow)
	for _, r := range records {
		label := key(r)
		row, ok := byLabel[label]
		if !ok {
			row = &entity.CrossTabRow{Label: label}
			byLabel[label] = row
		}
		switch r.Status {
		case entity.StatusPaid:
			row.Paid++
		case entity.StatusCourtesy:
			row.Courtesy++
		case entity.StatusOpen:
			row.Open++
		}
		row.Total++
	}

	rows := make([]entity.CrossTabRow, 0, len(byLabel))
	for _, row := range byLabel {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Total != rows[j].Total {
			return rows[i].Total > rows[j].Total
		}
		return rows[i].Label < rows[j].Label
	})
	return rows
}

// CrossTabByCategory agrupa por categoria de inscrição.
func CrossTabByCategory(records []entity.Registration) []entity.CrossTabRow {
	return CrossTab(records, func(r entity.Registration) string { return r.Category })
}

// CrossTabByCountry agrupa por país normalizado.
func CrossTabByCountry(records []entity.Registration) []entity.CrossTabRow {
	return CrossTab(records, func(r entity.Registration) string { return r.Country })
}

// CrossTabByState agrupa por estado, apenas para registros do Brasil.
func CrossTabByState(records []entity.Registration) []entity.CrossTabRow {
	brazilian := make([]entity.Registration, 0, len(records))
	for _, r := range records {
		if r.Country == brazilToken {
			brazilian = append(brazilian, r)
		}
	}
	return CrossTab(brazilian, func(r entity.Registration) string { return r.State })
}
