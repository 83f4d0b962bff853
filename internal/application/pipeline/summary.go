package pipeline

import (
	"time"

	"github.com/lfmorato/event-report-dashboard-go/internal/domain/entity"
)

// brasiliaOffset é o deslocamento fixo usado no carimbo de geração
// (regra de "hora de Brasília" sem banco de fusos).
const brasiliaOffset = -3 * time.Hour

const generatedAtLayout = "02/01/2006 15:04"

// BuildSummary executa o pipeline completo sobre a tabela bruta:
// mapeamento de colunas, derivação dos registros e as agregações que
// compõem o relatório. Só um descasamento estrutural da tabela é fatal.
func BuildSummary(table *entity.RawTable, event, year string, now time.Time) (*entity.Summary, error) {
	raws, err := MapColumns(table)
	if err != nil {
		return nil, err
	}
	records := BuildRecords(raws, now)
	return Assemble(records, event, year, now), nil
}

// Assemble combina KPIs, série semanal, distribuições e tabelas cruzadas
// em um Summary imutável, carimbado com o horário de geração.
func Assemble(records []entity.Registration, event, year string, now time.Time) *entity.Summary {
	summary := &entity.Summary{
		Event:       event,
		Year:        year,
		GeneratedAt: now.UTC().Add(brasiliaOffset).Format(generatedAtLayout),
		TotalCount:  len(records),
	}

	for _, r := range records {
		switch r.Status {
		case entity.StatusPaid:
			summary.PaidCount++
		case entity.StatusCourtesy:
			summary.CourtesyCount++
		case entity.StatusOpen:
			summary.OpenCount++
		}
	}

	summary.Weekly = WeeklySeries(records)
	summary.WeekLabels = WeekLabels(summary.Weekly)
	summary.Regions = RegionDistribution(records)
	summary.Ages = ageDistribution(records)
	summary.ByCategory = CrossTabByCategory(records)
	summary.ByCountry = CrossTabByCountry(records)
	summary.ByState = CrossTabByState(records)
	return summary
}

// ageDistribution conta os registros por faixa etária, na ordem fixa das
// faixas; faixas sem ocorrência ficam fora da distribuição.
func ageDistribution(records []entity.Registration) []entity.AgeCount {
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.AgeBucket]++
	}
	ages := make([]entity.AgeCount, 0, len(counts))
	for _, bucket := range entity.AgeBucketOrder {
		if counts[bucket] > 0 {
			ages = append(ages, entity.AgeCount{Bucket: bucket, Count: counts[bucket]})
		}
	}
	return ages
}
