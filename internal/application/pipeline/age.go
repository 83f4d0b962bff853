package pipeline

import (
	"strings"
	"time"

	"github.com/lfmorato/event-report-dashboard-go/internal/domain/entity"
)

// dateLayout é o formato dia-primeiro usado pelo sistema de inscrições.
const dateLayout = "02/01/2006"

// isoLayout cobre células já convertidas por planilhas para ISO.
const isoLayout = "2006-01-02"

// AgeUnknown é a idade sentinela para datas de nascimento ilegíveis.
const AgeUnknown = -1

// ParseDate interpreta uma célula de data (inscrição, pagamento ou
// nascimento). Só os 10 primeiros caracteres contam, o que descarta a
// parte de hora de exportações "DD/MM/YYYY HH:MM". Devolve nil quando a
// célula não parseia; o chamador degrada para o valor sentinela.
func ParseDate(raw string) *time.Time {
	s := strings.TrimSpace(raw)
	if len(s) > 10 {
		s = s[:10]
	}
	if s == "" {
		return nil
	}
	for _, layout := range []string{dateLayout, isoLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// AgeYears calcula a idade em anos inteiros como floor(dias/365), o
// mesmo cálculo dos relatórios históricos (não calendar-aware).
// Devolve AgeUnknown quando a data de nascimento não parseia.
func AgeYears(birthRaw string, now time.Time) int {
	birth := ParseDate(birthRaw)
	if birth == nil {
		return AgeUnknown
	}
	days := int(now.Sub(*birth).Hours() / 24)
	if days < 0 {
		return AgeUnknown
	}
	return days / 365
}

// AgeBucket mapeia uma idade para uma das seis faixas ordenadas.
// Limites inclusivos no topo; exaustivo sobre todos os inteiros >= -1.
func AgeBucket(age int) string {
	switch {
	case age < 0:
		return entity.AgeBucketUnknown
	case age < 25:
		return entity.AgeBucketUnder25
	case age <= 35:
		return entity.AgeBucket25to35
	case age <= 45:
		return entity.AgeBucket36to45
	case age <= 55:
		return entity.AgeBucket46to55
	default:
		return entity.AgeBucketOver55
	}
}
