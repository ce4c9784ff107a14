package domain

// Glossary descreve as dimensões e métricas expostas ao assistente e ao dashboard
type Glossary struct {
	Dimensions        []string          `json:"dimensions"`
	CoreMetrics       []string          `json:"core_metrics"`
	AdditionalMetrics []string          `json:"additional_metrics"`
	Definitions       map[string]string `json:"definitions"`
	Notes             []string          `json:"notes"`
}

// DefaultGlossary retorna o dicionário de dimensões e métricas do dataset
func DefaultGlossary() Glossary {
	return Glossary{
		Dimensions: []string{
			"Month",
			"Publisher",
			"Channel",
			"Funnel Layer",
			"Format",
			"Audience Segment",
		},
		CoreMetrics: []string{
			"Revenue ($)",
			"Media Spend ($)",
			"ROAS",
			"ROI",
		},
		AdditionalMetrics: []string{
			"Impressions",
			"Clicks",
			"Conversions",
			"CPA ($)",
			"CTR (%)",
			"Conversion Rate (%)",
		},
		Definitions: map[string]string{
			"ROAS":             "Return on Ad Spend = Revenue / Spend.",
			"ROI":              "Return on Investment = (Revenue - Spend) / Spend.",
			"CPA":              "Cost per Acquisition = Spend / Conversions.",
			"CTR":              "Click-through rate = Clicks / Impressions.",
			"CVR":              "Conversion rate = Conversions / Clicks.",
			"Saturation point": "Spend level beyond which marginal ROAS gains sharply diminish, modeled via a power-law decay.",
			"Creative Messaging": "The specific advertising message, theme, or concept shown to an audience. " +
				"Examples include value-driven offers, urgency messaging, lifestyle positioning, or brand storytelling. " +
				"In analytics, creatives are evaluated by performance metrics such as ROAS, CTR, or conversion rate " +
				"to determine which messages resonate most effectively.",
		},
		Notes: []string{
			"ROAS = Revenue / Media Spend",
			"Data is synthetic and regenerated from a fixed seed on every refresh",
			"Saturation curves follow base_roas / (1 + (spend / saturation_point) ^ decay_factor)",
			"Creatives are tracked through the Format dimension; the dataset has no per-message breakdown",
		},
	}
}
