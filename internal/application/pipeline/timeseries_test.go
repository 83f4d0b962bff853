package pipeline

import (
	"testing"
	"time"

	"github.com/lfmorato/event-report-dashboard-go/internal/domain/entity"
)

func date(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestWeekEnding(t *testing.T) {
	tests := []struct {
		input time.Time
		want  time.Time
	}{
		// 08/03/2026 é domingo
		{*date(2026, time.March, 5), *date(2026, time.March, 8)},
		{*date(2026, time.March, 2), *date(2026, time.March, 8)},
		{*date(2026, time.March, 8), *date(2026, time.March, 8)},
		{*date(2026, time.March, 9), *date(2026, time.March, 15)},
	}

	for _, tt := range tests {
		if got := weekEnding(tt.input); !got.Equal(tt.want) {
			t.Errorf("weekEnding(%s) = %s, want %s",
				tt.input.Format("02/01"), got.Format("02/01"), tt.want.Format("02/01"))
		}
	}
}

func TestWeeklySeries(t *testing.T) {
	records := []entity.Registration{
		{Status: entity.StatusPaid, EffectiveDate: date(2026, time.March, 2)},
		{Status: entity.StatusCourtesy, EffectiveDate: date(2026, time.March, 5)},
		{Status: entity.StatusOpen, EffectiveDate: date(2026, time.March, 9)},
		{Status: entity.StatusPaid, EffectiveDate: date(2026, time.March, 15)},
		{Status: entity.StatusPaid, EffectiveDate: nil},
	}

	got := WeeklySeries(records)
	want := []entity.WeeklyCount{
		{WeekEnding: *date(2026, time.March, 8), Paid: 1, Courtesy: 1, Open: 0},
		{WeekEnding: *date(2026, time.March, 15), Paid: 1, Courtesy: 0, Open: 1},
	}

	if len(got) != len(want) {
		t.Fatalf("WeeklySeries returned %d weeks, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if !got[i].WeekEnding.Equal(want[i].WeekEnding) ||
			got[i].Paid != want[i].Paid ||
			got[i].Courtesy != want[i].Courtesy ||
			got[i].Open != want[i].Open {
			t.Errorf("week[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestWeekLabels(t *testing.T) {
	series := []entity.WeeklyCount{
		{WeekEnding: *date(2026, time.March, 8)},
		{WeekEnding: *date(2026, time.March, 15)},
		{WeekEnding: *date(2026, time.April, 5)},
		{WeekEnding: *date(2027, time.January, 3)},
	}

	got := WeekLabels(series)
	want := []string{"8 Mar 2026", "15", "5 Apr", "3 Jan 2027"}
	if len(got) != len(want) {
		t.Fatalf("WeekLabels returned %d labels, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("label[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
