package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 2.75, RoundWithTwoDecimalPlace(2.7499999))
	assert.Equal(t, 1.23, RoundWithTwoDecimalPlace(1.234))
}

func TestParseMonth(t *testing.T) {
	month, err := ParseMonth("2024-03")
	require.NoError(t, err)
	assert.Equal(t, time.March, month.Month())

	_, err = ParseMonth("03-2024")
	assert.Error(t, err)
}

func TestParseDefaults(t *testing.T) {
	f, err := ParseFloatOrDefault("", 10)
	require.NoError(t, err)
	assert.Equal(t, 10.0, f)

	i, err := ParseIntOrDefault("7", 1)
	require.NoError(t, err)
	assert.Equal(t, 7, i)

	_, err = ParseIntOrDefault("x", 1)
	assert.Error(t, err)
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, idLength)
}
