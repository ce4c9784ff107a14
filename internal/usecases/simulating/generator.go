package simulating

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/vfg2006/marketing-insights-api/internal/domain"
	"github.com/vfg2006/marketing-insights-api/pkg/utils"
)

// pcgStream é o segundo componente da semente do PCG; fixo para que a mesma
// semente sempre produza o mesmo dataset
const pcgStream = 0x9e3779b97f4a7c15

// Generator produz o dataset sintético de performance
type Generator struct {
	profiles   []domain.ChannelProfile
	startMonth time.Time
	months     int
	now        func() time.Time
}

func NewGenerator(profiles []domain.ChannelProfile, startMonth time.Time, months int) *Generator {
	if len(profiles) == 0 {
		profiles = DefaultProfiles()
	}
	if months < 1 {
		months = 1
	}

	return &Generator{
		profiles:   profiles,
		startMonth: time.Date(startMonth.Year(), startMonth.Month(), 1, 0, 0, 0, 0, time.UTC),
		months:     months,
		now:        time.Now,
	}
}

// Generate cria um dataset novo; a mesma semente gera sempre os mesmos registros
func (g *Generator) Generate(seed uint64) *domain.Dataset {
	rng := rand.New(rand.NewPCG(seed, pcgStream))

	months := make([]string, 0, g.months)
	for i := 0; i < g.months; i++ {
		months = append(months, g.startMonth.AddDate(0, i, 0).Format(utils.MonthLayout))
	}

	records := make([]*domain.PerformanceRecord, 0, len(months)*len(g.profiles)*len(FunnelLayers)*2)
	for _, month := range months {
		for _, profile := range g.profiles {
			for _, layer := range FunnelLayers {
				for _, format := range profile.Formats {
					records = append(records, g.newRecord(rng, month, profile, layer, format))
				}
			}
		}
	}

	return &domain.Dataset{
		Seed:        seed,
		GeneratedAt: g.now(),
		Months:      months,
		Profiles:    g.profiles,
		Records:     records,
	}
}

func (g *Generator) newRecord(
	rng *rand.Rand,
	month string,
	profile domain.ChannelProfile,
	layer string,
	format string,
) *domain.PerformanceRecord {
	share := funnelSpendShare[layer]
	if share == 0 {
		share = 1
	}

	spend := utils.RoundWithTwoDecimalPlace(uniform(rng, profile.Spend) * share)
	roas := SimulatedROAS(rng, spend, profile.Saturation)
	revenue := spend * roas

	impressions := int64(spend / uniform(rng, profile.CPM) * 1000)
	clicks := int64(math.Round(float64(impressions) * uniform(rng, profile.CTR)))
	conversions := int64(math.Round(float64(clicks) * uniform(rng, profile.CVR)))

	record := &domain.PerformanceRecord{
		Month:           month,
		Publisher:       profile.Publisher,
		Channel:         profile.Channel,
		FunnelLayer:     layer,
		Format:          format,
		AudienceSegment: AudienceSegments[rng.IntN(len(AudienceSegments))],
		Spend:           spend,
		Impressions:     impressions,
		Clicks:          clicks,
		Conversions:     conversions,
		Revenue:         revenue,
		ROAS:            roas,
		ROI:             (revenue - spend) / spend,
	}

	if conversions > 0 {
		record.CPA = spend / float64(conversions)
	}
	if impressions > 0 {
		record.CTR = float64(clicks) / float64(impressions)
	}
	if clicks > 0 {
		record.CVR = float64(conversions) / float64(clicks)
	}

	return record
}

func uniform(rng *rand.Rand, r domain.Range) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}
