package charting

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/marketing-insights-api/internal/domain"
	"github.com/vfg2006/marketing-insights-api/internal/usecases/simulating"
)

func testDataset() *domain.Dataset {
	generator := simulating.NewGenerator(simulating.DefaultProfiles(), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 6)
	return generator.Generate(42)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		question string
		expected domain.Intent
	}{
		{question: "Where do we hit diminishing returns?", expected: domain.IntentSaturation},
		{question: "What is the saturation point for Meta?", expected: domain.IntentSaturation},
		{question: "Show me the monthly revenue trend", expected: domain.IntentTrend},
		{question: "Which publisher has the best CPA?", expected: domain.IntentEfficiency},
		{question: "Compare publisher performance", expected: domain.IntentPublisher},
		{question: "How is TikTok doing?", expected: domain.IntentPublisher},
		{question: "Break down ROAS by channel", expected: domain.IntentChannel},
		{question: "How does the funnel convert?", expected: domain.IntentFunnel},
		{question: "Which creative format works best?", expected: domain.IntentFormat},
		{question: "Is retargeting worth it?", expected: domain.IntentAudience},
		{question: "Give me a summary", expected: domain.IntentOverview},
		{question: "Are we saturating YouTube?", expected: domain.IntentSaturation},
		{question: "How efficient is paid search?", expected: domain.IntentEfficiency},
		{question: "Which segments respond best?", expected: domain.IntentAudience},
		{question: "Any seasonality in revenue?", expected: domain.IntentTrend},
		{question: "Give me information about Google spend", expected: domain.IntentPublisher},
		{question: "Which publisher has the widest spectrum of results?", expected: domain.IntentPublisher},
		{question: "Summarize the metadata of this dataset", expected: domain.IntentOverview},
		{question: "Is the carousel formats test done?", expected: domain.IntentFormat},
		{question: "", expected: domain.IntentOverview},
	}

	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.question))
		})
	}
}

func TestClassify_FirstMatchWins(t *testing.T) {
	// "saturation" vem antes de "publisher" na tabela de regras
	assert.Equal(t, domain.IntentSaturation, Classify("Publisher saturation curves"))
}

func TestParseIntent(t *testing.T) {
	intent, err := ParseIntent(" Saturation ")
	require.NoError(t, err)
	assert.Equal(t, domain.IntentSaturation, intent)

	_, err = ParseIntent("pie")
	assert.ErrorIs(t, err, ErrUnknownIntent)
}

func TestEveryIntentHasBuilder(t *testing.T) {
	assert.Len(t, builders, len(AllIntents()))

	dataset := testDataset()
	for _, intent := range AllIntents() {
		spec, err := Build(intent, dataset)

		require.NoError(t, err, intent)
		assert.Equal(t, intent, spec.Intent)
		assert.NotEmpty(t, spec.Title)
		assert.NotEmpty(t, spec.Series)
	}
}

func TestBuild_UnknownIntent(t *testing.T) {
	_, err := Build(domain.Intent("pie"), testDataset())
	assert.ErrorIs(t, err, ErrUnknownIntent)
}

func TestBuildSaturation(t *testing.T) {
	dataset := testDataset()

	spec, err := Build(domain.IntentSaturation, dataset)
	require.NoError(t, err)

	assert.Equal(t, domain.ChartKindLine, spec.Kind)
	assert.Len(t, spec.Series, len(dataset.Profiles))
	assert.Len(t, spec.Notes, len(dataset.Profiles))

	for i, series := range spec.Series {
		assert.Equal(t, dataset.Profiles[i].Saturation.BaseROAS, series.Points[0].Y)
		for j := 1; j < len(series.Points); j++ {
			assert.LessOrEqual(t, series.Points[j].Y, series.Points[j-1].Y)
		}
	}
}

func TestBuildTrend_MonthsInOrder(t *testing.T) {
	dataset := testDataset()

	spec, err := Build(domain.IntentTrend, dataset)
	require.NoError(t, err)

	require.Len(t, spec.Series[0].Points, len(dataset.Months))
	for i, month := range dataset.Months {
		assert.Equal(t, month, spec.Series[0].Points[i].Label)
	}
}

func TestRenderer_RenderPNG(t *testing.T) {
	dataset := testDataset()
	renderer := NewRenderer()

	for _, intent := range []domain.Intent{domain.IntentSaturation, domain.IntentPublisher, domain.IntentTrend, domain.IntentOverview} {
		spec, err := Build(intent, dataset)
		require.NoError(t, err)

		image, err := renderer.RenderPNG(spec)
		require.NoError(t, err, intent)
		assert.True(t, bytes.HasPrefix(image, []byte("\x89PNG")), intent)
	}
}

func TestRenderer_EmptyChart(t *testing.T) {
	_, err := NewRenderer().RenderPNG(&domain.ChartSpec{Title: "vazio"})
	assert.ErrorIs(t, err, ErrEmptyChart)
}
