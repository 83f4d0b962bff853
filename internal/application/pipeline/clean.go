package pipeline

import (
	"strings"
	"time"

	"github.com/lfmorato/event-report-dashboard-go/internal/domain/entity"
)

// BuildRecords deriva os Cleaned Records a partir das linhas mapeadas.
// Linhas sem nome são descartadas (regra documentada, não é erro);
// falhas de parse de data degradam para sentinela e nunca abortam a
// execução. `now` é o relógio de referência do cálculo de idade.
func BuildRecords(raws []entity.RawRegistration, now time.Time) []entity.Registration {
	records := make([]entity.Registration, 0, len(raws))
	for _, raw := range raws {
		name := strings.TrimSpace(raw.Name)
		if name == "" {
			continue
		}

		category := strings.TrimSpace(raw.Category)
		category = strings.ReplaceAll(category, "Equipe Multidisciplinar", "Eq. Multi")

		age := AgeYears(raw.BirthDate, now)
		status := ClassifyStatus(raw.PaymentText, raw.Situation)
		state := Normalize(raw.State)

		registrationDate := ParseDate(raw.RegistrationDate)
		paymentDate := ParseDate(raw.PaymentDate)

		record := entity.Registration{
			Name:             name,
			Category:         category,
			PaymentText:      raw.PaymentText,
			SituationText:    raw.Situation,
			RegistrationDate: registrationDate,
			PaymentDate:      paymentDate,
			BirthRaw:         raw.BirthDate,
			AgeYears:         age,
			AgeBucket:        AgeBucket(age),
			StateRaw:         raw.State,
			State:            state,
			Country:          Normalize(raw.Country),
			Status:           status,
			Region:           RegionFor(state),
		}
		record.EffectiveDate = effectiveDate(record)
		records = append(records, record)
	}
	return records
}

// effectiveDate escolhe a data que posiciona o registro na série semanal:
// data de pagamento quando o status é Paid e ela existe, senão a data de
// inscrição. Pode ser nil; nesse caso o registro fica fora apenas da
// série temporal.
func effectiveDate(r entity.Registration) *time.Time {
	if r.Status == entity.StatusPaid && r.PaymentDate != nil {
		return r.PaymentDate
	}
	return r.RegistrationDate
}
