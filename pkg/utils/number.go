package utils

import (
	"math"
	"strconv"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// ParseFloatOrDefault converte o texto ou devolve o valor padrão se vazio
func ParseFloatOrDefault(value string, fallback float64) (float64, error) {
	if value == "" {
		return fallback, nil
	}

	return strconv.ParseFloat(value, 64)
}

// ParseIntOrDefault converte o texto ou devolve o valor padrão se vazio
func ParseIntOrDefault(value string, fallback int) (int, error) {
	if value == "" {
		return fallback, nil
	}

	return strconv.Atoi(value)
}
