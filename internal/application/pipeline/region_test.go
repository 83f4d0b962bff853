package pipeline

import (
	"testing"

	"github.com/lfmorato/event-report-dashboard-go/internal/domain/entity"
)

func TestRegionFor(t *testing.T) {
	tests := []struct {
		state string
		want  entity.Region
	}{
		{"SP", entity.RegionSoutheast},
		{"SAO PAULO", entity.RegionSoutheast},
		{"RJ", entity.RegionSoutheast},
		{"RS", entity.RegionSouth},
		{"CEARA", entity.RegionNortheast},
		{"DF", entity.RegionCentralWest},
		{"TOCANTINS", entity.RegionNorth},
		{"XX", entity.RegionOther},
		{"CALIFORNIA", entity.RegionOther},
		{"", entity.RegionOther},
		{"S", entity.RegionOther},
	}

	for _, tt := range tests {
		if got := RegionFor(tt.state); got != tt.want {
			t.Errorf("RegionFor(%q) = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func regionRecords(region entity.Region, n int) []entity.Registration {
	records := make([]entity.Registration, n)
	for i := range records {
		records[i] = entity.Registration{Region: region}
	}
	return records
}

func TestRegionDistributionLongTailCollapse(t *testing.T) {
	var records []entity.Registration
	records = append(records, regionRecords(entity.RegionSoutheast, 80)...)
	records = append(records, regionRecords(entity.RegionSouth, 15)...)
	records = append(records, regionRecords(entity.RegionNorth, 5)...)

	got := RegionDistribution(records)
	want := []entity.RegionShare{
		{Region: entity.RegionSoutheast, Count: 80, Share: 0.80},
		{Region: entity.RegionSouth, Count: 15, Share: 0.15},
		{Region: entity.RegionOther, Count: 5, Share: 0.05},
	}

	if len(got) != len(want) {
		t.Fatalf("RegionDistribution returned %d shares, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("share[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestRegionDistributionMergesIntoExistingOther(t *testing.T) {
	var records []entity.Registration
	records = append(records, regionRecords(entity.RegionSoutheast, 70)...)
	records = append(records, regionRecords(entity.RegionOther, 25)...)
	records = append(records, regionRecords(entity.RegionNorth, 5)...)

	got := RegionDistribution(records)
	if len(got) != 2 {
		t.Fatalf("expected 2 shares, got %d: %+v", len(got), got)
	}
	if got[1].Region != entity.RegionOther || got[1].Count != 30 {
		t.Errorf("Other share = %+v, want Count 30", got[1])
	}
}

func TestRegionDistributionEmpty(t *testing.T) {
	if got := RegionDistribution(nil); got != nil {
		t.Errorf("RegionDistribution(nil) = %+v, want nil", got)
	}
}
