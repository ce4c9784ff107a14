package charting

import (
	"fmt"

	"github.com/vfg2006/marketing-insights-api/internal/domain"
	"github.com/vfg2006/marketing-insights-api/internal/usecases/simulating"
	"github.com/vfg2006/marketing-insights-api/pkg/utils"
)

const (
	saturationCurveSteps  = 30
	saturationSpendFactor = 1.5
)

// Builder monta a especificação de gráfico de uma intenção
type Builder func(dataset *domain.Dataset) *domain.ChartSpec

var builders = map[domain.Intent]Builder{
	domain.IntentOverview:   buildOverview,
	domain.IntentSaturation: buildSaturation,
	domain.IntentPublisher:  buildPublisher,
	domain.IntentChannel:    buildChannel,
	domain.IntentFunnel:     buildFunnel,
	domain.IntentFormat:     buildFormat,
	domain.IntentAudience:   buildAudience,
	domain.IntentTrend:      buildTrend,
	domain.IntentEfficiency: buildEfficiency,
}

// Build monta o gráfico da intenção sobre o dataset
func Build(intent domain.Intent, dataset *domain.Dataset) (*domain.ChartSpec, error) {
	builder, exists := builders[intent]
	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrUnknownIntent, intent)
	}

	return builder(dataset), nil
}

func buildOverview(dataset *domain.Dataset) *domain.ChartSpec {
	total := simulating.Total(dataset.Records)

	return &domain.ChartSpec{
		Intent: domain.IntentOverview,
		Kind:   domain.ChartKindKPI,
		Title:  "Performance overview",
		Series: []domain.ChartSeries{
			{
				Name: "KPIs",
				Points: []domain.ChartPoint{
					{Label: "Spend", X: 0, Y: utils.RoundWithTwoDecimalPlace(total.Spend)},
					{Label: "Revenue", X: 1, Y: utils.RoundWithTwoDecimalPlace(total.Revenue)},
					{Label: "ROAS", X: 2, Y: utils.RoundWithTwoDecimalPlace(total.ROAS)},
					{Label: "ROI", X: 3, Y: utils.RoundWithTwoDecimalPlace(total.ROI)},
					{Label: "CPA", X: 4, Y: utils.RoundWithTwoDecimalPlace(total.CPA)},
				},
			},
		},
	}
}

func buildSaturation(dataset *domain.Dataset) *domain.ChartSpec {
	spec := &domain.ChartSpec{
		Intent: domain.IntentSaturation,
		Kind:   domain.ChartKindLine,
		Title:  "Diminishing returns by publisher",
		XLabel: "Spend ($)",
		YLabel: "ROAS",
	}

	for _, profile := range dataset.Profiles {
		curve := simulating.Curve(profile.Saturation, profile.Spend.Max*saturationSpendFactor, saturationCurveSteps)

		points := make([]domain.ChartPoint, 0, len(curve))
		for _, point := range curve {
			points = append(points, domain.ChartPoint{X: point.Spend, Y: point.ROAS})
		}
		spec.Series = append(spec.Series, domain.ChartSeries{Name: profile.Publisher, Points: points})

		if saturation, found := simulating.DetectSaturationPoint(curve); found {
			spec.Notes = append(spec.Notes, fmt.Sprintf("%s: ROAS decays fastest around $%.0f (ROAS %.2f)", profile.Publisher, saturation.Spend, saturation.ROAS))
		} else {
			spec.Notes = append(spec.Notes, fmt.Sprintf("%s: returns diminish from the first dollar (convex curve)", profile.Publisher))
		}
	}

	return spec
}

func buildPublisher(dataset *domain.Dataset) *domain.ChartSpec {
	summaries := simulating.Summarize(dataset.Records, domain.DimensionPublisher)

	return &domain.ChartSpec{
		Intent: domain.IntentPublisher,
		Kind:   domain.ChartKindGroupedBar,
		Title:  "Spend vs revenue by publisher",
		XLabel: "Publisher",
		YLabel: "USD",
		Series: []domain.ChartSeries{
			summarySeries("Spend", summaries, func(s *domain.MetricsSummary) float64 { return s.Spend }),
			summarySeries("Revenue", summaries, func(s *domain.MetricsSummary) float64 { return s.Revenue }),
		},
	}
}

func buildChannel(dataset *domain.Dataset) *domain.ChartSpec {
	summaries := simulating.Summarize(dataset.Records, domain.DimensionChannel)
	simulating.SortByROAS(summaries)

	return &domain.ChartSpec{
		Intent: domain.IntentChannel,
		Kind:   domain.ChartKindBar,
		Title:  "ROAS by channel",
		XLabel: "Channel",
		YLabel: "ROAS",
		Series: []domain.ChartSeries{
			summarySeries("ROAS", summaries, func(s *domain.MetricsSummary) float64 { return s.ROAS }),
		},
	}
}

func buildFunnel(dataset *domain.Dataset) *domain.ChartSpec {
	summaries := simulating.Summarize(dataset.Records, domain.DimensionFunnel)

	return &domain.ChartSpec{
		Intent: domain.IntentFunnel,
		Kind:   domain.ChartKindGroupedBar,
		Title:  "Spend vs revenue by funnel layer",
		XLabel: "Funnel layer",
		YLabel: "USD",
		Series: []domain.ChartSeries{
			summarySeries("Spend", summaries, func(s *domain.MetricsSummary) float64 { return s.Spend }),
			summarySeries("Revenue", summaries, func(s *domain.MetricsSummary) float64 { return s.Revenue }),
		},
	}
}

func buildFormat(dataset *domain.Dataset) *domain.ChartSpec {
	summaries := simulating.Summarize(dataset.Records, domain.DimensionFormat)
	simulating.SortByROAS(summaries)

	return &domain.ChartSpec{
		Intent: domain.IntentFormat,
		Kind:   domain.ChartKindBar,
		Title:  "ROAS by format",
		XLabel: "Format",
		YLabel: "ROAS",
		Series: []domain.ChartSeries{
			summarySeries("ROAS", summaries, func(s *domain.MetricsSummary) float64 { return s.ROAS }),
		},
	}
}

func buildAudience(dataset *domain.Dataset) *domain.ChartSpec {
	summaries := simulating.Summarize(dataset.Records, domain.DimensionAudience)

	return &domain.ChartSpec{
		Intent: domain.IntentAudience,
		Kind:   domain.ChartKindBar,
		Title:  "ROI by audience segment",
		XLabel: "Audience segment",
		YLabel: "ROI",
		Series: []domain.ChartSeries{
			summarySeries("ROI", summaries, func(s *domain.MetricsSummary) float64 { return s.ROI }),
		},
	}
}

func buildTrend(dataset *domain.Dataset) *domain.ChartSpec {
	summaries := simulating.Summarize(dataset.Records, domain.DimensionMonth)

	return &domain.ChartSpec{
		Intent: domain.IntentTrend,
		Kind:   domain.ChartKindLine,
		Title:  "Monthly spend and revenue",
		XLabel: "Month",
		YLabel: "USD",
		Series: []domain.ChartSeries{
			summarySeries("Spend", summaries, func(s *domain.MetricsSummary) float64 { return s.Spend }),
			summarySeries("Revenue", summaries, func(s *domain.MetricsSummary) float64 { return s.Revenue }),
		},
	}
}

func buildEfficiency(dataset *domain.Dataset) *domain.ChartSpec {
	summaries := simulating.Summarize(dataset.Records, domain.DimensionPublisher)

	spec := &domain.ChartSpec{
		Intent: domain.IntentEfficiency,
		Kind:   domain.ChartKindGroupedBar,
		Title:  "CTR and CVR by publisher",
		XLabel: "Publisher",
		YLabel: "%",
		Series: []domain.ChartSeries{
			summarySeries("CTR (%)", summaries, func(s *domain.MetricsSummary) float64 { return s.CTR * 100 }),
			summarySeries("CVR (%)", summaries, func(s *domain.MetricsSummary) float64 { return s.CVR * 100 }),
		},
	}

	for _, summary := range summaries {
		spec.Notes = append(spec.Notes, fmt.Sprintf("%s CPA: $%.2f", summary.Key, summary.CPA))
	}

	return spec
}

func summarySeries(name string, summaries []*domain.MetricsSummary, value func(*domain.MetricsSummary) float64) domain.ChartSeries {
	points := make([]domain.ChartPoint, 0, len(summaries))
	for i, summary := range summaries {
		points = append(points, domain.ChartPoint{
			Label: summary.Key,
			X:     float64(i),
			Y:     utils.RoundWithTwoDecimalPlace(value(summary)),
		})
	}

	return domain.ChartSeries{Name: name, Points: points}
}
