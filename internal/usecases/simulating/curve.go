// Package simulating gera o dataset sintético de performance e modela as
// curvas de saturação de investimento por canal.
package simulating

import (
	"math"
	"math/rand/v2"

	"github.com/vfg2006/marketing-insights-api/internal/domain"
)

const (
	// MinROAS é o piso aplicado depois da perturbação aleatória
	MinROAS = 0.5

	perturbationMin = 0.85
	perturbationMax = 1.15
)

// ExpectedROAS calcula o ROAS da curva sem ruído:
// base_roas / (1 + (spend / saturation_point) ^ decay_factor)
func ExpectedROAS(spend float64, params domain.SaturationParams) float64 {
	if spend <= 0 {
		return params.BaseROAS
	}

	return params.BaseROAS / (1 + math.Pow(spend/params.SaturationPoint, params.DecayFactor))
}

// SimulatedROAS aplica um multiplicador uniforme em [0.85, 1.15] sobre a curva
// e garante o piso de MinROAS
func SimulatedROAS(rng *rand.Rand, spend float64, params domain.SaturationParams) float64 {
	multiplier := perturbationMin + rng.Float64()*(perturbationMax-perturbationMin)

	return math.Max(ExpectedROAS(spend, params)*multiplier, MinROAS)
}

// CurvePoint é um ponto amostrado da curva de saturação
type CurvePoint struct {
	Spend        float64 `json:"spend"`
	ROAS         float64 `json:"roas"`
	Revenue      float64 `json:"revenue"`
	MarginalROAS float64 `json:"marginal_roas"`
}

// Curve amostra steps+1 pontos igualmente espaçados entre 0 e maxSpend.
// MarginalROAS é a receita incremental por unidade investida no último passo.
func Curve(params domain.SaturationParams, maxSpend float64, steps int) []CurvePoint {
	if steps < 1 || maxSpend <= 0 {
		return []CurvePoint{{Spend: 0, ROAS: params.BaseROAS, MarginalROAS: params.BaseROAS}}
	}

	points := make([]CurvePoint, 0, steps+1)
	step := maxSpend / float64(steps)

	for i := 0; i <= steps; i++ {
		spend := step * float64(i)
		roas := ExpectedROAS(spend, params)

		point := CurvePoint{
			Spend:   spend,
			ROAS:    roas,
			Revenue: spend * roas,
		}

		if i == 0 {
			point.MarginalROAS = params.BaseROAS
		} else {
			previous := points[i-1]
			point.MarginalROAS = (point.Revenue - previous.Revenue) / (point.Spend - previous.Spend)
		}

		points = append(points, point)
	}

	return points
}
