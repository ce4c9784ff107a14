package domain

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidSaturationParams = errors.New("parâmetros de saturação inválidos")

// SaturationParams descreve a curva de retorno decrescente de um canal
type SaturationParams struct {
	BaseROAS        float64 `json:"base_roas"`
	SaturationPoint float64 `json:"saturation_point"`
	DecayFactor     float64 `json:"decay_factor"`
}

// Validate é usado apenas para parâmetros vindos de fora (API)
func (p SaturationParams) Validate() error {
	if !positiveFinite(p.BaseROAS) {
		return fmt.Errorf("%w: base_roas deve ser finito e maior que zero", ErrInvalidSaturationParams)
	}
	if !positiveFinite(p.SaturationPoint) {
		return fmt.Errorf("%w: saturation_point deve ser finito e maior que zero", ErrInvalidSaturationParams)
	}
	if !positiveFinite(p.DecayFactor) {
		return fmt.Errorf("%w: decay_factor deve ser finito e maior que zero", ErrInvalidSaturationParams)
	}
	return nil
}

func positiveFinite(value float64) bool {
	return value > 0 && !math.IsInf(value, 1)
}

// Range é um intervalo fechado [Min, Max]
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ChannelProfile reúne os parâmetros de simulação de um publisher
type ChannelProfile struct {
	Publisher  string           `json:"publisher"`
	Channel    string           `json:"channel"`
	Saturation SaturationParams `json:"saturation"`
	Spend      Range            `json:"spend"`
	CPM        Range            `json:"cpm"`
	CTR        Range            `json:"ctr"`
	CVR        Range            `json:"cvr"`
	Formats    []string         `json:"formats"`
}
