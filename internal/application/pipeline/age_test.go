package pipeline

import (
	"testing"
	"time"

	"github.com/lfmorato/event-report-dashboard-go/internal/domain/entity"
)

func TestAgeBucketBoundaries(t *testing.T) {
	tests := []struct {
		age  int
		want string
	}{
		{-1, entity.AgeBucketUnknown},
		{0, entity.AgeBucketUnder25},
		{24, entity.AgeBucketUnder25},
		{25, entity.AgeBucket25to35},
		{35, entity.AgeBucket25to35},
		{36, entity.AgeBucket36to45},
		{45, entity.AgeBucket36to45},
		{46, entity.AgeBucket46to55},
		{55, entity.AgeBucket46to55},
		{56, entity.AgeBucketOver55},
		{90, entity.AgeBucketOver55},
	}

	for _, tt := range tests {
		if got := AgeBucket(tt.age); got != tt.want {
			t.Errorf("AgeBucket(%d) = %q, want %q", tt.age, got, tt.want)
		}
	}
}

func TestAgeYears(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		birth string
		want  int
	}{
		{"365 days is one year", "15/03/2025", 1},
		{"under a year", "01/01/2026", 0},
		{"with time suffix", "15/03/2025 10:30", 1},
		{"iso format", "2025-03-15", 1},
		{"unparseable", "não informado", AgeUnknown},
		{"empty", "", AgeUnknown},
		{"future birth date", "01/01/2030", AgeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AgeYears(tt.birth, now); got != tt.want {
				t.Errorf("AgeYears(%q) = %d, want %d", tt.birth, got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	if got := ParseDate("05/03/2026"); got == nil || !got.Equal(time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("ParseDate(05/03/2026) = %v, want 2026-03-05", got)
	}
	if got := ParseDate("garbage"); got != nil {
		t.Errorf("ParseDate(garbage) = %v, want nil", got)
	}
}
