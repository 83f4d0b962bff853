package pipeline

import (
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/lfmorato/event-report-dashboard-go/internal/domain/entity"
	"github.com/lfmorato/event-report-dashboard-go/internal/shared/types"
)

// minPositionalColumns é o tamanho mínimo da tabela para o fallback
// posicional, herdado do formato de exportação do sistema de inscrições.
const minPositionalColumns = 54

// semanticField liga um campo semântico aos nomes de cabeçalho conhecidos
// e à posição fixa (zero-based) no layout exportado.
type semanticField struct {
	name     string
	headers  []string
	position int
}

var semanticFields = []semanticField{
	{"Name", []string{"NOME"}, 1},
	{"Category", []string{"CATEGORIA"}, 2},
	{"PaymentText", []string{"FORMA DE PAGAMENTO"}, 4},
	{"PaymentDate", []string{"DATA DE PAGAMENTO"}, 5},
	{"Situation", []string{"SITUACAO"}, 9},
	{"RegistrationDate", []string{"DATA DE INSCRICAO"}, 13},
	{"BirthDate", []string{"DATA DE NASCIMENTO", "NASCIMENTO"}, 21},
	{"State", []string{"ESTADO", "UF"}, 52},
	{"Country", []string{"PAIS"}, 53},
}

// MapColumns extrai os nove campos semânticos da tabela bruta.
// Estratégia priorizada: primeiro resolve por nome de cabeçalho
// (igualdade normalizada, depois casamento fuzzy); se qualquer campo não
// resolver, cai inteiro no mapeamento posicional documentado. Falha com
// SchemaMismatchError quando nenhuma das estratégias resolve.
func MapColumns(table *entity.RawTable) ([]entity.RawRegistration, error) {
	indexes, ok := resolveByHeader(table.Header)
	if !ok {
		if len(table.Header) < minPositionalColumns {
			return nil, &types.SchemaMismatchError{
				ColumnCount:   len(table.Header),
				HeaderPreview: table.Header,
			}
		}
		indexes = make([]int, len(semanticFields))
		for i, f := range semanticFields {
			indexes[i] = f.position
		}
	}

	raws := make([]entity.RawRegistration, 0, len(table.Rows))
	for _, row := range table.Rows {
		raws = append(raws, entity.RawRegistration{
			Name:             table.Cell(row, indexes[0]),
			Category:         table.Cell(row, indexes[1]),
			PaymentText:      table.Cell(row, indexes[2]),
			PaymentDate:      table.Cell(row, indexes[3]),
			Situation:        table.Cell(row, indexes[4]),
			RegistrationDate: table.Cell(row, indexes[5]),
			BirthDate:        table.Cell(row, indexes[6]),
			State:            table.Cell(row, indexes[7]),
			Country:          table.Cell(row, indexes[8]),
		})
	}
	return raws, nil
}

// resolveByHeader tenta localizar cada campo pelo nome da coluna. Só é
// considerado resolvido quando TODOS os nove campos casam com colunas
// distintas; resoluções parciais caem no fallback posicional.
func resolveByHeader(header []string) ([]int, bool) {
	normalized := make([]string, len(header))
	for i, h := range header {
		normalized[i] = Normalize(h)
	}

	indexes := make([]int, len(semanticFields))
	used := make(map[int]bool, len(semanticFields))

	for fi, field := range semanticFields {
		idx := -1
		for _, candidate := range field.headers {
			for hi, h := range normalized {
				if used[hi] || h == "" {
					continue
				}
				if h == candidate {
					idx = hi
					break
				}
			}
			if idx >= 0 {
				break
			}
		}
		// Cabeçalhos abreviados ("Data Nascimento", "Situaçao") casam por
		// subsequência contra o nome canônico.
		if idx < 0 {
			for hi, h := range normalized {
				if used[hi] || len(h) < 2 {
					continue
				}
				for _, candidate := range field.headers {
					if fuzzy.MatchNormalizedFold(h, candidate) {
						idx = hi
						break
					}
				}
				if idx >= 0 {
					break
				}
			}
		}
		if idx < 0 {
			return nil, false
		}
		indexes[fi] = idx
		used[idx] = true
	}
	return indexes, true
}
