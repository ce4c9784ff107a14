package domain

// Intent é a intenção de análise extraída da pergunta do usuário
type Intent string

const (
	IntentOverview   Intent = "overview"
	IntentSaturation Intent = "saturation"
	IntentPublisher  Intent = "publisher"
	IntentChannel    Intent = "channel"
	IntentFunnel     Intent = "funnel"
	IntentFormat     Intent = "format"
	IntentAudience   Intent = "audience"
	IntentTrend      Intent = "trend"
	IntentEfficiency Intent = "efficiency"
)

// ChartKind define o tipo de gráfico a ser desenhado
type ChartKind string

const (
	ChartKindLine       ChartKind = "line"
	ChartKindBar        ChartKind = "bar"
	ChartKindGroupedBar ChartKind = "grouped_bar"
	ChartKindKPI        ChartKind = "kpi"
)

// ChartPoint é um ponto de uma série. Label é usado em eixos categóricos.
type ChartPoint struct {
	Label string  `json:"label,omitempty"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

type ChartSeries struct {
	Name   string       `json:"name"`
	Points []ChartPoint `json:"points"`
}

// ChartSpec é a especificação de um gráfico, independente de renderização
type ChartSpec struct {
	Intent Intent        `json:"intent"`
	Kind   ChartKind     `json:"kind"`
	Title  string        `json:"title"`
	XLabel string        `json:"x_label"`
	YLabel string        `json:"y_label"`
	Series []ChartSeries `json:"series"`
	Notes  []string      `json:"notes,omitempty"`
}
