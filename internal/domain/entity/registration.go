package entity

import "time"

// Status é o estado de cobrança derivado de uma inscrição.
type Status string

const (
	StatusPaid     Status = "Paid"
	StatusCourtesy Status = "Courtesy"
	StatusOpen     Status = "Open"
)

// AllStatuses lista os status na ordem fixa usada em tabelas e gráficos.
// Toda agregação normaliza sua saída contra esta lista (colunas zeradas
// quando o status não ocorre nos dados).
var AllStatuses = []Status{StatusPaid, StatusCourtesy, StatusOpen}

// Region é uma macrorregião brasileira, ou "Other" para tokens desconhecidos.
type Region string

const (
	RegionSoutheast   Region = "Southeast"
	RegionSouth       Region = "South"
	RegionNortheast   Region = "Northeast"
	RegionCentralWest Region = "Central-West"
	RegionNorth       Region = "North"
	RegionOther       Region = "Other"
)

// Faixas etárias ordenadas. AgeBucketUnknown cobre datas de nascimento
// que não puderam ser interpretadas (idade sentinela -1).
const (
	AgeBucketUnder25 = "< 25 Anos"
	AgeBucket25to35  = "25 - 35 Anos"
	AgeBucket36to45  = "36 - 45 Anos"
	AgeBucket46to55  = "46 - 55 Anos"
	AgeBucketOver55  = "> 55 Anos"
	AgeBucketUnknown = "N/I"
)

// AgeBucketOrder define a ordem de exibição das faixas etárias.
var AgeBucketOrder = []string{
	AgeBucketUnder25,
	AgeBucket25to35,
	AgeBucket36to45,
	AgeBucket46to55,
	AgeBucketOver55,
	AgeBucketUnknown,
}

// RawTable is the untyped table handed over by the acquisition adapter.
// Rows may be ragged; missing trailing cells read as empty strings.
type RawTable struct {
	Header []string
	Rows   [][]string
}

// Cell returns the cell at (row, col) or "" when the row is shorter.
func (t *RawTable) Cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}

// RawRegistration holds the nine semantic fields of one row, still as the
// source delivered them.
type RawRegistration struct {
	Name             string
	Category         string
	PaymentText      string
	PaymentDate      string
	Situation        string
	RegistrationDate string
	BirthDate        string
	State            string
	Country          string
}

// Registration is one registrant after field mapping and attribute
// derivation. Never mutated after the pipeline builds it.
type Registration struct {
	Name             string     `json:"name"`
	Category         string     `json:"category"`
	PaymentText      string     `json:"payment_text"`
	SituationText    string     `json:"situation_text"`
	RegistrationDate *time.Time `json:"registration_date,omitempty"`
	PaymentDate      *time.Time `json:"payment_date,omitempty"`
	BirthRaw         string     `json:"birth_raw"`
	AgeYears         int        `json:"age_years"`
	AgeBucket        string     `json:"age_bucket"`
	StateRaw         string     `json:"state_raw"`
	State            string     `json:"state"`
	Country          string     `json:"country"`
	Status           Status     `json:"status"`
	Region           Region     `json:"region"`
	EffectiveDate    *time.Time `json:"effective_date,omitempty"`
}
