package pipeline

import (
	"sort"
	"strconv"
	"time"

	"github.com/lfmorato/event-report-dashboard-go/internal/domain/entity"
)

// weekEnding trunca a data para o dia e devolve o domingo que encerra a
// semana (semântica week-ending; um domingo encerra a própria semana).
func weekEnding(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (7 - int(day.Weekday())) % 7
	return day.AddDate(0, 0, offset)
}

// WeeklySeries agrupa os registros por semana × status. Registros sem
// data efetiva ficam fora da série (mas continuam nos KPIs e tabelas).
// As três colunas de status estão sempre presentes, zeradas quando o
// status não ocorre, e as semanas saem em ordem cronológica crescente.
func WeeklySeries(records []entity.Registration) []entity.WeeklyCount {
	byWeek := make(map[time.Time]*entity.WeeklyCount)
	for _, r := range records {
		if r.EffectiveDate == nil {
			continue
		}
		week := weekEnding(*r.EffectiveDate)
		count, ok := byWeek[week]
		if !ok {
			count = &entity.WeeklyCount{WeekEnding: week}
			byWeek[week] = count
		}
		switch r.Status {
		case entity.StatusPaid:
			count.Paid++
		case entity.StatusCourtesy:
			count.Courtesy++
		case entity.StatusOpen:
			count.Open++
		}
	}

	series := make([]entity.WeeklyCount, 0, len(byWeek))
	for _, count := range byWeek {
		series = append(series, *count)
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].WeekEnding.Before(series[j].WeekEnding)
	})
	return series
}

// WeekLabels gera os rótulos dos ticks semanais: dia do mês, mais a
// abreviação do mês quando ele muda em relação ao tick anterior, mais o
// ano quando ele muda. O primeiro tick carrega mês e ano.
func WeekLabels(series []entity.WeeklyCount) []string {
	labels := make([]string, 0, len(series))
	prevMonth := time.Month(0)
	prevYear := 0
	for _, week := range series {
		label := strconv.Itoa(week.WeekEnding.Day())
		if week.WeekEnding.Month() != prevMonth {
			label += " " + week.WeekEnding.Format("Jan")
		}
		if week.WeekEnding.Year() != prevYear {
			label += " " + strconv.Itoa(week.WeekEnding.Year())
		}
		labels = append(labels, label)
		prevMonth = week.WeekEnding.Month()
		prevYear = week.WeekEnding.Year()
	}
	return labels
}
