package simulating

import "github.com/vfg2006/marketing-insights-api/internal/domain"

var (
	FunnelLayers     = []string{"Awareness", "Consideration", "Conversion"}
	AudienceSegments = []string{"Prospecting", "Retargeting", "Lookalike", "Loyalty"}
)

// funnelSpendShare reduz a faixa de investimento nas camadas mais baixas do funil
var funnelSpendShare = map[string]float64{
	"Awareness":     1.0,
	"Consideration": 0.7,
	"Conversion":    0.5,
}

// DefaultProfiles retorna os perfis de canal usados pelo gerador
func DefaultProfiles() []domain.ChannelProfile {
	return []domain.ChannelProfile{
		{
			Publisher:  "Google Search",
			Channel:    "Search",
			Saturation: domain.SaturationParams{BaseROAS: 5.5, SaturationPoint: 500000, DecayFactor: 0.8},
			Spend:      domain.Range{Min: 50000, Max: 900000},
			CPM:        domain.Range{Min: 18, Max: 32},
			CTR:        domain.Range{Min: 0.03, Max: 0.07},
			CVR:        domain.Range{Min: 0.04, Max: 0.09},
			Formats:    []string{"Search Text", "Shopping"},
		},
		{
			Publisher:  "Meta",
			Channel:    "Social",
			Saturation: domain.SaturationParams{BaseROAS: 4.2, SaturationPoint: 400000, DecayFactor: 1.1},
			Spend:      domain.Range{Min: 40000, Max: 800000},
			CPM:        domain.Range{Min: 8, Max: 15},
			CTR:        domain.Range{Min: 0.008, Max: 0.02},
			CVR:        domain.Range{Min: 0.02, Max: 0.05},
			Formats:    []string{"Static", "Carousel", "Video"},
		},
		{
			Publisher:  "YouTube",
			Channel:    "Video",
			Saturation: domain.SaturationParams{BaseROAS: 3.1, SaturationPoint: 350000, DecayFactor: 1.3},
			Spend:      domain.Range{Min: 30000, Max: 600000},
			CPM:        domain.Range{Min: 10, Max: 22},
			CTR:        domain.Range{Min: 0.004, Max: 0.012},
			CVR:        domain.Range{Min: 0.01, Max: 0.03},
			Formats:    []string{"Video", "Bumper"},
		},
		{
			Publisher:  "TikTok",
			Channel:    "Social",
			Saturation: domain.SaturationParams{BaseROAS: 3.6, SaturationPoint: 250000, DecayFactor: 1.5},
			Spend:      domain.Range{Min: 20000, Max: 450000},
			CPM:        domain.Range{Min: 6, Max: 12},
			CTR:        domain.Range{Min: 0.007, Max: 0.018},
			CVR:        domain.Range{Min: 0.015, Max: 0.04},
			Formats:    []string{"Video", "Spark Ads"},
		},
		{
			Publisher:  "LinkedIn",
			Channel:    "Social",
			Saturation: domain.SaturationParams{BaseROAS: 2.8, SaturationPoint: 200000, DecayFactor: 0.9},
			Spend:      domain.Range{Min: 15000, Max: 300000},
			CPM:        domain.Range{Min: 30, Max: 60},
			CTR:        domain.Range{Min: 0.004, Max: 0.01},
			CVR:        domain.Range{Min: 0.03, Max: 0.08},
			Formats:    []string{"Static", "Document"},
		},
		{
			Publisher:  "Programmatic Display",
			Channel:    "Display",
			Saturation: domain.SaturationParams{BaseROAS: 2.4, SaturationPoint: 300000, DecayFactor: 1.2},
			Spend:      domain.Range{Min: 25000, Max: 500000},
			CPM:        domain.Range{Min: 3, Max: 8},
			CTR:        domain.Range{Min: 0.001, Max: 0.004},
			CVR:        domain.Range{Min: 0.01, Max: 0.03},
			Formats:    []string{"Native", "Rich Media"},
		},
		{
			Publisher:  "Connected TV",
			Channel:    "CTV",
			Saturation: domain.SaturationParams{BaseROAS: 2.0, SaturationPoint: 450000, DecayFactor: 1.6},
			Spend:      domain.Range{Min: 60000, Max: 1000000},
			CPM:        domain.Range{Min: 25, Max: 45},
			CTR:        domain.Range{Min: 0.001, Max: 0.003},
			CVR:        domain.Range{Min: 0.01, Max: 0.02},
			Formats:    []string{"Video"},
		},
	}
}
