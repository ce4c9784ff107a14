package simulating

import (
	"errors"
	"fmt"

	"github.com/vfg2006/marketing-insights-api/internal/domain"
)

var (
	ErrUnknownPublisher = errors.New("publisher não encontrado no dataset")
	ErrUnknownSource    = errors.New("origem da curva desconhecida")
	ErrInvalidCurve     = errors.New("parâmetros de amostragem inválidos")
)

// Source indica de onde vem a curva analisada
type Source string

const (
	SourceModel   Source = "model"
	SourceDataset Source = "dataset"
	SourceCustom  Source = "custom"
)

const (
	DefaultCurveSteps = 50
	MaxCurveSteps     = 1000

	// sem max_spend explícito a curva vai até 3x o ponto de saturação
	defaultSpendMultiple = 3
	datasetBuckets       = 20
)

// CurveAnalysis é uma curva amostrada com o ponto de saturação detectado, quando houver
type CurveAnalysis struct {
	Publisher       string                   `json:"publisher,omitempty"`
	Source          Source                   `json:"source"`
	Params          *domain.SaturationParams `json:"params,omitempty"`
	Points          []CurvePoint             `json:"points"`
	SaturationPoint *SaturationPoint         `json:"saturation_point"`
}

// PublisherCurve amostra a curva modelada do publisher.
// maxSpend <= 0 e steps <= 0 usam os valores padrão.
func PublisherCurve(dataset *domain.Dataset, publisher string, maxSpend float64, steps int) (*CurveAnalysis, error) {
	profile, ok := dataset.Profile(publisher)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPublisher, publisher)
	}

	analysis, err := sampleCurve(profile.Saturation, maxSpend, steps)
	if err != nil {
		return nil, err
	}
	analysis.Publisher = profile.Publisher
	analysis.Source = SourceModel

	return analysis, nil
}

// CustomCurve amostra uma curva com parâmetros informados pelo usuário
func CustomCurve(params domain.SaturationParams, maxSpend float64, steps int) (*CurveAnalysis, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	analysis, err := sampleCurve(params, maxSpend, steps)
	if err != nil {
		return nil, err
	}
	analysis.Source = SourceCustom

	return analysis, nil
}

// DetectForPublisher procura o ponto de saturação na curva modelada ou nos
// registros observados do dataset, agrupados por faixa de investimento
func DetectForPublisher(dataset *domain.Dataset, publisher string, source Source) (*CurveAnalysis, error) {
	switch source {
	case SourceModel, "":
		return PublisherCurve(dataset, publisher, 0, 0)
	case SourceDataset:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, source)
	}

	profile, ok := dataset.Profile(publisher)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPublisher, publisher)
	}

	points := BucketBySpend(dataset.RecordsByPublisher(profile.Publisher), datasetBuckets)
	analysis := &CurveAnalysis{
		Publisher: profile.Publisher,
		Source:    SourceDataset,
		Points:    points,
	}
	if point, found := DetectSaturationPoint(points); found {
		analysis.SaturationPoint = &point
	}

	return analysis, nil
}

func sampleCurve(params domain.SaturationParams, maxSpend float64, steps int) (*CurveAnalysis, error) {
	if !isFinite(maxSpend) {
		return nil, fmt.Errorf("%w: max_spend deve ser um número finito", ErrInvalidCurve)
	}
	if maxSpend < 0 {
		return nil, fmt.Errorf("%w: max_spend não pode ser negativo", ErrInvalidCurve)
	}
	if steps > MaxCurveSteps {
		return nil, fmt.Errorf("%w: steps deve ser no máximo %d", ErrInvalidCurve, MaxCurveSteps)
	}
	if maxSpend == 0 {
		maxSpend = params.SaturationPoint * defaultSpendMultiple
	}
	if steps <= 0 {
		steps = DefaultCurveSteps
	}
	if !isFinite(maxSpend * params.BaseROAS) {
		return nil, fmt.Errorf("%w: max_spend grande demais para a curva", ErrInvalidCurve)
	}

	points := Curve(params, maxSpend, steps)
	analysis := &CurveAnalysis{
		Params: &params,
		Points: points,
	}
	if point, found := DetectSaturationPoint(points); found {
		analysis.SaturationPoint = &point
	}

	return analysis, nil
}
