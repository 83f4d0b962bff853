package pipeline

import (
	"strings"

	"github.com/lfmorato/event-report-dashboard-go/internal/domain/entity"
)

// statusRule é uma regra de classificação sobre os textos brutos de
// pagamento e situação. As regras são avaliadas em ordem; a primeira que
// casar vence.
type statusRule struct {
	Status  entity.Status
	Matches func(paymentText, situationText string) bool
}

// A ordem é autoritativa: "cortesia" na forma de pagamento vence mesmo
// quando a situação também diz "pago".
var statusRules = []statusRule{
	{
		Status: entity.StatusCourtesy,
		Matches: func(paymentText, _ string) bool {
			return strings.Contains(strings.ToLower(paymentText), "cortesia")
		},
	},
	{
		Status: entity.StatusPaid,
		Matches: func(_, situationText string) bool {
			return strings.Contains(strings.ToLower(situationText), "pago")
		},
	},
}

// ClassifyStatus deriva o status de cobrança de uma inscrição.
// Função total: sempre devolve um dos três status.
func ClassifyStatus(paymentText, situationText string) entity.Status {
	for _, rule := range statusRules {
		if rule.Matches(paymentText, situationText) {
			return rule.Status
		}
	}
	return entity.StatusOpen
}
