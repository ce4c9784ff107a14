package simulating

import (
	"sort"

	"github.com/vfg2006/marketing-insights-api/internal/domain"
)

// Summarize agrega os registros pela dimensão informada, na ordem da primeira
// ocorrência de cada chave (meses saem em ordem cronológica)
func Summarize(records []*domain.PerformanceRecord, dimension domain.Dimension) []*domain.MetricsSummary {
	index := make(map[string]*domain.MetricsSummary)
	ordered := make([]*domain.MetricsSummary, 0)

	for _, record := range records {
		key := dimension.Value(record)
		summary, exists := index[key]
		if !exists {
			summary = &domain.MetricsSummary{Key: key}
			index[key] = summary
			ordered = append(ordered, summary)
		}
		accumulate(summary, record)
	}

	for _, summary := range ordered {
		summary.Recalculate()
	}

	return ordered
}

// Total agrega todos os registros em um único resumo
func Total(records []*domain.PerformanceRecord) *domain.MetricsSummary {
	summary := &domain.MetricsSummary{Key: "total"}
	for _, record := range records {
		accumulate(summary, record)
	}
	summary.Recalculate()

	return summary
}

// SortByROAS ordena os resumos do maior para o menor ROAS
func SortByROAS(summaries []*domain.MetricsSummary) {
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].ROAS > summaries[j].ROAS
	})
}

func accumulate(summary *domain.MetricsSummary, record *domain.PerformanceRecord) {
	summary.Records++
	summary.Spend += record.Spend
	summary.Revenue += record.Revenue
	summary.Impressions += record.Impressions
	summary.Clicks += record.Clicks
	summary.Conversions += record.Conversions
}
