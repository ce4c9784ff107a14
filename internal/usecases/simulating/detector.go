package simulating

import (
	"math"
	"sort"

	"github.com/vfg2006/marketing-insights-api/internal/domain"
)

// relativeTolerance evita que ruído de ponto flutuante em curvas lineares
// seja lido como concavidade
const relativeTolerance = 1e-9

// SaturationPoint é o resultado do detector
type SaturationPoint struct {
	Spend            float64 `json:"spend"`
	ROAS             float64 `json:"roas"`
	FirstDerivative  float64 `json:"first_derivative"`
	SecondDerivative float64 `json:"second_derivative"`
}

// DetectSaturationPoint procura, por diferenças finitas, o ponto de maior
// concavidade (segunda derivada mais negativa) onde a primeira derivada está
// diminuindo. Os pontos devem estar ordenados por spend.
//
// É uma heurística: em curvas com ruído pode apontar pontos espúrios,
// principalmente nas bordas da série.
func DetectSaturationPoint(points []CurvePoint) (SaturationPoint, bool) {
	if len(points) < 3 {
		return SaturationPoint{}, false
	}

	firstDerivatives := make([]float64, len(points)-1)
	scale := 0.0
	for i := 0; i < len(points)-1; i++ {
		dx := points[i+1].Spend - points[i].Spend
		if dx <= 0 {
			return SaturationPoint{}, false
		}
		firstDerivatives[i] = (points[i+1].ROAS - points[i].ROAS) / dx
		if isFinite(firstDerivatives[i]) {
			scale = math.Max(scale, math.Abs(firstDerivatives[i]))
		}
	}

	found := false
	best := SaturationPoint{}

	for i := 0; i < len(firstDerivatives)-1; i++ {
		// distância entre os pontos médios dos dois segmentos
		dx := (points[i+2].Spend - points[i].Spend) / 2
		secondDerivative := (firstDerivatives[i+1] - firstDerivatives[i]) / dx

		// NaN não satisfaz nenhuma comparação; segmentos não finitos ficam de fora
		if !isFinite(firstDerivatives[i]) || !isFinite(firstDerivatives[i+1]) || !isFinite(secondDerivative) {
			continue
		}
		if firstDerivatives[i+1]-firstDerivatives[i] >= -relativeTolerance*scale {
			continue
		}

		if !found || secondDerivative < best.SecondDerivative {
			found = true
			best = SaturationPoint{
				Spend:            points[i+1].Spend,
				ROAS:             points[i+1].ROAS,
				FirstDerivative:  firstDerivatives[i+1],
				SecondDerivative: secondDerivative,
			}
		}
	}

	return best, found
}

func isFinite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}

// BucketBySpend agrupa registros em faixas iguais de investimento e retorna a
// média de spend e de ROAS de cada faixa não vazia, ordenada por spend
func BucketBySpend(records []*domain.PerformanceRecord, buckets int) []CurvePoint {
	if len(records) == 0 || buckets < 1 {
		return nil
	}

	minSpend, maxSpend := math.Inf(1), math.Inf(-1)
	for _, record := range records {
		minSpend = math.Min(minSpend, record.Spend)
		maxSpend = math.Max(maxSpend, record.Spend)
	}

	width := (maxSpend - minSpend) / float64(buckets)

	type accumulator struct {
		spend, roas float64
		count       int
	}
	accumulators := make([]accumulator, buckets)

	for _, record := range records {
		index := 0
		if width > 0 {
			index = int((record.Spend - minSpend) / width)
		}
		if index >= buckets {
			index = buckets - 1
		}
		accumulators[index].spend += record.Spend
		accumulators[index].roas += record.ROAS
		accumulators[index].count++
	}

	points := make([]CurvePoint, 0, buckets)
	for _, acc := range accumulators {
		if acc.count == 0 {
			continue
		}
		spend := acc.spend / float64(acc.count)
		roas := acc.roas / float64(acc.count)
		points = append(points, CurvePoint{Spend: spend, ROAS: roas, Revenue: spend * roas})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Spend < points[j].Spend
	})

	return points
}
