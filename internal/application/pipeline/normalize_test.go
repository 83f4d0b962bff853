package pipeline

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  string
	}{
		{"accented state name", "São Paulo", "SAO PAULO"},
		{"lowercase code", "sp", "SP"},
		{"surrounding whitespace", "  Ceará  ", "CEARA"},
		{"country with accent", "Panamá", "PANAMA"},
		{"already normalized", "BRASIL", "BRASIL"},
		{"empty string", "", ""},
		{"non-string value", 42, ""},
		{"nil value", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
