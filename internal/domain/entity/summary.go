package entity

import "time"

// WeeklyCount é uma semana da série temporal, chaveada pelo fim da semana
// (domingo) e com uma contagem por status, sempre com as três colunas.
type WeeklyCount struct {
	WeekEnding time.Time `json:"week_ending"`
	Paid       int       `json:"paid"`
	Courtesy   int       `json:"courtesy"`
	Open       int       `json:"open"`
}

// CrossTabRow é uma linha de tabela cruzada campo × status.
// Invariante: Total == Paid + Courtesy + Open.
type CrossTabRow struct {
	Label    string `json:"label"`
	Paid     int    `json:"paid"`
	Courtesy int    `json:"courtesy"`
	Open     int    `json:"open"`
	Total    int    `json:"total"`
}

// RegionShare é uma fatia da distribuição por região, após o colapso de
// cauda longa (regiões com menos de 10% somadas em "Other").
type RegionShare struct {
	Region Region  `json:"region"`
	Count  int     `json:"count"`
	Share  float64 `json:"share"`
}

// AgeCount é uma barra da distribuição etária, na ordem de AgeBucketOrder.
type AgeCount struct {
	Bucket string `json:"bucket"`
	Count  int    `json:"count"`
}

// Summary is the report-ready structure handed to the presentation side.
// Immutable once assembled; owned by the pipeline run that produced it.
type Summary struct {
	Event       string `json:"event"`
	Year        string `json:"year"`
	GeneratedAt string `json:"generated_at"`

	TotalCount    int `json:"total"`
	PaidCount     int `json:"paid"`
	CourtesyCount int `json:"courtesy"`
	OpenCount     int `json:"open"`

	Weekly     []WeeklyCount `json:"weekly"`
	WeekLabels []string      `json:"week_labels"`

	Regions []RegionShare `json:"regions"`
	Ages    []AgeCount    `json:"ages"`

	ByCategory []CrossTabRow `json:"by_category"`
	ByCountry  []CrossTabRow `json:"by_country"`
	ByState    []CrossTabRow `json:"by_state"`
}
