package pipeline

import (
	"sort"

	"github.com/lfmorato/event-report-dashboard-go/internal/domain/entity"
)

// regionByState cobre as 27 unidades federativas, por sigla e por nome
// completo normalizado. A busca é por igualdade exata sobre o token já
// normalizado.
var regionByState = map[string]entity.Region{
	// Norte
	"AC": entity.RegionNorth, "ACRE": entity.RegionNorth,
	"AP": entity.RegionNorth, "AMAPA": entity.RegionNorth,
	"AM": entity.RegionNorth, "AMAZONAS": entity.RegionNorth,
	"PA": entity.RegionNorth, "PARA": entity.RegionNorth,
	"RO": entity.RegionNorth, "RONDONIA": entity.RegionNorth,
	"RR": entity.RegionNorth, "RORAIMA": entity.RegionNorth,
	"TO": entity.RegionNorth, "TOCANTINS": entity.RegionNorth,
	// Nordeste
	"AL": entity.RegionNortheast, "ALAGOAS": entity.RegionNortheast,
	"BA": entity.RegionNortheast, "BAHIA": entity.RegionNortheast,
	"CE": entity.RegionNortheast, "CEARA": entity.RegionNortheast,
	"MA": entity.RegionNortheast, "MARANHAO": entity.RegionNortheast,
	"PB": entity.RegionNortheast, "PARAIBA": entity.RegionNortheast,
	"PE": entity.RegionNortheast, "PERNAMBUCO": entity.RegionNortheast,
	"PI": entity.RegionNortheast, "PIAUI": entity.RegionNortheast,
	"RN": entity.RegionNortheast, "RIO GRANDE DO NORTE": entity.RegionNortheast,
	"SE": entity.RegionNortheast, "SERGIPE": entity.RegionNortheast,
	// Centro-Oeste
	"DF": entity.RegionCentralWest, "DISTRITO FEDERAL": entity.RegionCentralWest,
	"GO": entity.RegionCentralWest, "GOIAS": entity.RegionCentralWest,
	"MT": entity.RegionCentralWest, "MATO GROSSO": entity.RegionCentralWest,
	"MS": entity.RegionCentralWest, "MATO GROSSO DO SUL": entity.RegionCentralWest,
	// Sudeste
	"ES": entity.RegionSoutheast, "ESPIRITO SANTO": entity.RegionSoutheast,
	"MG": entity.RegionSoutheast, "MINAS GERAIS": entity.RegionSoutheast,
	"RJ": entity.RegionSoutheast, "RIO DE JANEIRO": entity.RegionSoutheast,
	"SP": entity.RegionSoutheast, "SAO PAULO": entity.RegionSoutheast,
	// Sul
	"PR": entity.RegionSouth, "PARANA": entity.RegionSouth,
	"RS": entity.RegionSouth, "RIO GRANDE DO SUL": entity.RegionSouth,
	"SC": entity.RegionSouth, "SANTA CATARINA": entity.RegionSouth,
}

// RegionFor mapeia um token de estado já normalizado para a macrorregião.
// Tokens desconhecidos, vazios ou de um único caractere caem em "Other".
func RegionFor(normalizedState string) entity.Region {
	if len(normalizedState) <= 1 {
		return entity.RegionOther
	}
	if region, ok := regionByState[normalizedState]; ok {
		return region
	}
	return entity.RegionOther
}

// minRegionShare é o corte do colapso de cauda longa da distribuição.
const minRegionShare = 0.10

// RegionDistribution conta os registros por região e aplica o colapso de
// cauda longa: regiões com ao menos 10% do total ficam individuais, o
// resto é somado em "Other". Só o gráfico de distribuição usa o colapso;
// a região de cada registro permanece a atribuída.
func RegionDistribution(records []entity.Registration) []entity.RegionShare {
	if len(records) == 0 {
		return nil
	}
	counts := make(map[entity.Region]int)
	for _, r := range records {
		counts[r.Region]++
	}

	total := float64(len(records))
	kept := make([]entity.RegionShare, 0, len(counts))
	folded := 0
	for region, count := range counts {
		share := float64(count) / total
		if share >= minRegionShare {
			kept = append(kept, entity.RegionShare{Region: region, Count: count, Share: share})
		} else {
			folded += count
		}
	}
	sort.Slice(kept, func(i, j int) bool {
		if kept[i].Count != kept[j].Count {
			return kept[i].Count > kept[j].Count
		}
		return kept[i].Region < kept[j].Region
	})

	if folded > 0 {
		merged := false
		for i := range kept {
			if kept[i].Region == entity.RegionOther {
				kept[i].Count += folded
				kept[i].Share = float64(kept[i].Count) / total
				merged = true
				break
			}
		}
		if !merged {
			kept = append(kept, entity.RegionShare{
				Region: entity.RegionOther,
				Count:  folded,
				Share:  float64(folded) / total,
			})
		}
	}
	return kept
}
