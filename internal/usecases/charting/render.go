package charting

import (
	"bytes"
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/vfg2006/marketing-insights-api/internal/domain"
)

var ErrEmptyChart = errors.New("gráfico sem dados para desenhar")

const barWidth = vg.Length(14)

// Renderer desenha especificações de gráfico em PNG
type Renderer struct {
	Width  vg.Length
	Height vg.Length
}

func NewRenderer() *Renderer {
	return &Renderer{
		Width:  8 * vg.Inch,
		Height: 4.5 * vg.Inch,
	}
}

// RenderPNG devolve os bytes PNG do gráfico
func (r *Renderer) RenderPNG(spec *domain.ChartSpec) ([]byte, error) {
	if spec == nil || len(spec.Series) == 0 {
		return nil, ErrEmptyChart
	}

	p := plot.New()
	p.Title.Text = spec.Title
	p.X.Label.Text = spec.XLabel
	p.Y.Label.Text = spec.YLabel
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	var err error
	switch spec.Kind {
	case domain.ChartKindLine:
		err = addLines(p, spec)
	default:
		err = addBars(p, spec)
	}
	if err != nil {
		return nil, err
	}

	writer, err := p.WriterTo(r.Width, r.Height, "png")
	if err != nil {
		return nil, fmt.Errorf("erro ao criar writer do gráfico: %w", err)
	}

	var buf bytes.Buffer
	if _, err := writer.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("erro ao gravar PNG do gráfico: %w", err)
	}

	return buf.Bytes(), nil
}

func addLines(p *plot.Plot, spec *domain.ChartSpec) error {
	categorical := hasLabels(spec.Series[0])

	for i, series := range spec.Series {
		if len(series.Points) == 0 {
			continue
		}

		points := make(plotter.XYs, len(series.Points))
		for j, point := range series.Points {
			points[j].X = point.X
			points[j].Y = point.Y
		}

		line, err := plotter.NewLine(points)
		if err != nil {
			return fmt.Errorf("erro ao criar linha %s: %w", series.Name, err)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1.5)

		p.Add(line)
		p.Legend.Add(series.Name, line)
	}

	if categorical {
		p.NominalX(labels(spec.Series[0])...)
	}

	return nil
}

func addBars(p *plot.Plot, spec *domain.ChartSpec) error {
	count := len(spec.Series)

	for i, series := range spec.Series {
		if len(series.Points) == 0 {
			continue
		}

		values := make(plotter.Values, len(series.Points))
		for j, point := range series.Points {
			values[j] = point.Y
		}

		bars, err := plotter.NewBarChart(values, barWidth)
		if err != nil {
			return fmt.Errorf("erro ao criar barras %s: %w", series.Name, err)
		}
		bars.Color = plotutil.Color(i)
		bars.LineStyle.Width = 0
		// centraliza o grupo de barras em cada categoria
		bars.Offset = barWidth * vg.Length(2*i-count+1) / 2

		p.Add(bars)
		p.Legend.Add(series.Name, bars)
	}

	p.NominalX(labels(spec.Series[0])...)

	return nil
}

func hasLabels(series domain.ChartSeries) bool {
	for _, point := range series.Points {
		if point.Label != "" {
			return true
		}
	}
	return false
}

func labels(series domain.ChartSeries) []string {
	out := make([]string, len(series.Points))
	for i, point := range series.Points {
		out[i] = point.Label
	}
	return out
}
