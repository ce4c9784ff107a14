package simulating

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/marketing-insights-api/internal/domain"
)

func TestExpectedROAS(t *testing.T) {
	params := domain.SaturationParams{BaseROAS: 5.5, SaturationPoint: 500000, DecayFactor: 0.8}

	tests := []struct {
		name     string
		spend    float64
		expected float64
	}{
		{name: "Sem investimento retorna o ROAS base", spend: 0, expected: 5.5},
		{name: "No ponto de saturação o ROAS cai pela metade", spend: 500000, expected: 2.75},
		{name: "Investimento negativo é tratado como zero", spend: -10, expected: 5.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ExpectedROAS(tt.spend, params), 1e-12)
		})
	}
}

func TestExpectedROAS_ZeroSpendIsExactlyBase(t *testing.T) {
	for _, profile := range DefaultProfiles() {
		assert.Equal(t, profile.Saturation.BaseROAS, ExpectedROAS(0, profile.Saturation), profile.Publisher)
	}
}

func TestExpectedROAS_NonIncreasing(t *testing.T) {
	decays := []float64{0.1, 0.5, 0.8, 1, 1.5, 3}

	for _, decay := range decays {
		params := domain.SaturationParams{BaseROAS: 4, SaturationPoint: 250000, DecayFactor: decay}

		previous := ExpectedROAS(0, params)
		for spend := 1000.0; spend <= 5000000; spend += 1000 {
			current := ExpectedROAS(spend, params)
			if !assert.LessOrEqual(t, current, previous, "decay=%v spend=%v", decay, spend) {
				return
			}
			previous = current
		}
	}
}

func TestSimulatedROAS_Floor(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	params := []domain.SaturationParams{
		{BaseROAS: 0.1, SaturationPoint: 1, DecayFactor: 5},
		{BaseROAS: 5.5, SaturationPoint: 500000, DecayFactor: 0.8},
		{BaseROAS: 1, SaturationPoint: 10, DecayFactor: 2},
	}
	spends := []float64{0, 1, 10, 1e4, 1e6, 1e9}

	for _, p := range params {
		for _, spend := range spends {
			for i := 0; i < 50; i++ {
				assert.GreaterOrEqual(t, SimulatedROAS(rng, spend, p), MinROAS)
			}
		}
	}
}

func TestSimulatedROAS_PerturbationBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 42))
	params := domain.SaturationParams{BaseROAS: 5.5, SaturationPoint: 500000, DecayFactor: 0.8}

	for i := 0; i < 1000; i++ {
		roas := SimulatedROAS(rng, 500000, params)
		assert.GreaterOrEqual(t, roas, 2.75*0.85-1e-9)
		assert.LessOrEqual(t, roas, 2.75*1.15+1e-9)
	}
}

func TestCurve(t *testing.T) {
	params := domain.SaturationParams{BaseROAS: 5.5, SaturationPoint: 500000, DecayFactor: 0.8}

	points := Curve(params, 1000000, 10)

	assert.Len(t, points, 11)
	assert.Equal(t, 0.0, points[0].Spend)
	assert.Equal(t, 5.5, points[0].ROAS)
	assert.InDelta(t, 1000000, points[10].Spend, 1e-6)
	assert.InDelta(t, 2.75, points[5].ROAS, 1e-12)

	for i := 1; i < len(points); i++ {
		assert.InDelta(t, points[i].Spend*points[i].ROAS, points[i].Revenue, 1e-6)
		assert.Less(t, points[i].MarginalROAS, points[i-1].MarginalROAS+1e-9)
	}
}

func TestCurve_InvalidSteps(t *testing.T) {
	params := domain.SaturationParams{BaseROAS: 3, SaturationPoint: 100, DecayFactor: 1}

	points := Curve(params, 0, 0)

	assert.Len(t, points, 1)
	assert.Equal(t, 3.0, points[0].ROAS)
	assert.False(t, math.IsNaN(points[0].MarginalROAS))
}
