package simulating

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/marketing-insights-api/internal/domain"
)

func TestDetectSaturationPoint(t *testing.T) {
	tests := []struct {
		name      string
		points    []CurvePoint
		wantFound bool
	}{
		{
			name: "Curva linear não tem concavidade",
			points: []CurvePoint{
				{Spend: 0, ROAS: 10},
				{Spend: 100, ROAS: 9},
				{Spend: 200, ROAS: 8},
				{Spend: 300, ROAS: 7},
				{Spend: 400, ROAS: 6},
			},
			wantFound: false,
		},
		{
			name: "Curva côncava decrescente",
			points: []CurvePoint{
				{Spend: 0, ROAS: 10},
				{Spend: 100, ROAS: 9.9},
				{Spend: 200, ROAS: 9.5},
				{Spend: 300, ROAS: 8},
				{Spend: 400, ROAS: 5},
			},
			wantFound: true,
		},
		{
			name:      "Menos de três pontos",
			points:    []CurvePoint{{Spend: 0, ROAS: 3}, {Spend: 10, ROAS: 2}},
			wantFound: false,
		},
		{
			name: "Spend fora de ordem",
			points: []CurvePoint{
				{Spend: 0, ROAS: 3},
				{Spend: 20, ROAS: 2},
				{Spend: 10, ROAS: 1},
			},
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			point, found := DetectSaturationPoint(tt.points)

			assert.Equal(t, tt.wantFound, found)
			if found {
				assert.GreaterOrEqual(t, point.Spend, tt.points[0].Spend)
				assert.LessOrEqual(t, point.Spend, tt.points[len(tt.points)-1].Spend)
				assert.Less(t, point.SecondDerivative, 0.0)
			}
		})
	}
}

func TestDetectSaturationPoint_NonFiniteValues(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)

	tests := []struct {
		name   string
		points []CurvePoint
	}{
		{
			name: "ROAS NaN em toda a curva",
			points: []CurvePoint{
				{Spend: 0, ROAS: nan},
				{Spend: 100, ROAS: nan},
				{Spend: 200, ROAS: nan},
				{Spend: 300, ROAS: nan},
			},
		},
		{
			name: "Spend NaN",
			points: []CurvePoint{
				{Spend: nan, ROAS: 5},
				{Spend: nan, ROAS: 4},
				{Spend: nan, ROAS: 2},
			},
		},
		{
			name: "Spend infinito",
			points: []CurvePoint{
				{Spend: 0, ROAS: 5},
				{Spend: 100, ROAS: 4.9},
				{Spend: inf, ROAS: 1},
				{Spend: inf, ROAS: 0.5},
			},
		},
		{
			name: "Um ROAS NaN no meio de uma curva côncava",
			points: []CurvePoint{
				{Spend: 0, ROAS: 10},
				{Spend: 100, ROAS: 9.9},
				{Spend: 200, ROAS: 9.5},
				{Spend: 300, ROAS: nan},
				{Spend: 400, ROAS: 5},
				{Spend: 500, ROAS: 4.9},
				{Spend: 600, ROAS: 4},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			point, found := DetectSaturationPoint(tt.points)
			if !found {
				return
			}

			assert.True(t, isFinite(point.Spend))
			assert.True(t, isFinite(point.ROAS))
			assert.True(t, isFinite(point.FirstDerivative))
			assert.True(t, isFinite(point.SecondDerivative))
		})
	}

	_, found := DetectSaturationPoint(tests[0].points)
	assert.False(t, found)
}

func TestDetectSaturationPoint_StrictlyDecreasingCurvesStayInDomain(t *testing.T) {
	for _, decay := range []float64{0.5, 0.8, 1, 1.5, 2, 4} {
		params := domain.SaturationParams{BaseROAS: 5.5, SaturationPoint: 500000, DecayFactor: decay}
		points := Curve(params, 2000000, 40)

		point, found := DetectSaturationPoint(points)
		if !found {
			continue
		}

		assert.GreaterOrEqual(t, point.Spend, points[0].Spend, "decay=%v", decay)
		assert.LessOrEqual(t, point.Spend, points[len(points)-1].Spend, "decay=%v", decay)
	}
}

func TestDetectSaturationPoint_SteepDecayFindsKnee(t *testing.T) {
	params := domain.SaturationParams{BaseROAS: 4, SaturationPoint: 300000, DecayFactor: 3}
	points := Curve(params, 1200000, 48)

	point, found := DetectSaturationPoint(points)

	assert.True(t, found)
	// Para decaimento > 1 a curva é côncava antes do ponto de saturação
	assert.Greater(t, point.Spend, 0.0)
	assert.Less(t, point.Spend, params.SaturationPoint)
}

func TestBucketBySpend(t *testing.T) {
	records := []*domain.PerformanceRecord{
		{Spend: 100, ROAS: 4},
		{Spend: 120, ROAS: 6},
		{Spend: 500, ROAS: 3},
		{Spend: 1000, ROAS: 1},
	}

	points := BucketBySpend(records, 3)

	assert.Len(t, points, 3)
	assert.InDelta(t, 110, points[0].Spend, 1e-9)
	assert.InDelta(t, 5, points[0].ROAS, 1e-9)
	assert.InDelta(t, 1000, points[2].Spend, 1e-9)

	for i := 1; i < len(points); i++ {
		assert.Greater(t, points[i].Spend, points[i-1].Spend)
	}
}

func TestBucketBySpend_Empty(t *testing.T) {
	assert.Nil(t, BucketBySpend(nil, 5))
	assert.Nil(t, BucketBySpend([]*domain.PerformanceRecord{{Spend: 1}}, 0))
}
