package stats_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/indicavende/indicavende-api/internal/domain/stats"
)

func TestDescribe_SerieConhecida(t *testing.T) {
	// Série clássica: média 5, mediana 4.5, moda 4, sd amostral √(32/7).
	s := stats.Describe([]float64{2, 4, 4, 4, 5, 5, 7, 9})

	assert.Equal(t, 8, s.N)
	assert.InDelta(t, 5.0, s.Mean, 1e-9)
	assert.InDelta(t, 4.5, s.Median, 1e-9)
	assert.InDelta(t, 4.0, s.Mode, 1e-9)
	assert.InDelta(t, math.Sqrt(32.0/7.0), s.StdDev, 1e-9)
	assert.InDelta(t, 2.0, s.Min, 1e-9)
	assert.InDelta(t, 9.0, s.Max, 1e-9)
	require.NotNil(t, s.ConfidenceInterval)
	assert.Less(t, s.ConfidenceInterval.Lower, s.Mean)
	assert.Greater(t, s.ConfidenceInterval.Upper, s.Mean)
}

func TestDescribe_IntervaloDeConfianca_N2(t *testing.T) {
	// n=2: média 2, erro padrão 1, t crítico (95%, 1 g.l.) = 12.7062.
	s := stats.Describe([]float64{1, 3})

	require.NotNil(t, s.ConfidenceInterval)
	assert.InDelta(t, 2-12.7062, s.ConfidenceInterval.Lower, 1e-3)
	assert.InDelta(t, 2+12.7062, s.ConfidenceInterval.Upper, 1e-3)
}

// Série de tamanho 1: o IC deve ser "não aplicável" (nulo), nunca um número
// calculado; momentos indefinidos saem como 0, não NaN.
func TestDescribe_SerieUnitaria_SemIC(t *testing.T) {
	s := stats.Describe([]float64{7})

	assert.Nil(t, s.ConfidenceInterval)
	assert.Equal(t, 1, s.N)
	assert.InDelta(t, 7.0, s.Mean, 1e-9)
	assert.InDelta(t, 7.0, s.Median, 1e-9)
	assert.Zero(t, s.StdDev)
	assert.Zero(t, s.Skewness)
	assert.Zero(t, s.Kurtosis)
}

func TestDescribe_SerieVazia(t *testing.T) {
	s := stats.Describe(nil)
	assert.Equal(t, stats.Summary{}, s)
}

func TestDescribe_MedianaInterpolada(t *testing.T) {
	s := stats.Describe([]float64{1, 2, 3, 10})
	assert.InDelta(t, 2.5, s.Median, 1e-9)
}

// Empate de moda: devolve o menor valor modal.
func TestDescribe_ModaComEmpate(t *testing.T) {
	s := stats.Describe([]float64{3, 3, 1, 1, 2})
	assert.InDelta(t, 1.0, s.Mode, 1e-9)
}

func TestDescribe_AssimetriaSerieSimetrica(t *testing.T) {
	s := stats.Describe([]float64{1, 2, 3, 4, 5})
	assert.InDelta(t, 0.0, s.Skewness, 1e-9)
	assert.False(t, math.IsNaN(s.Kurtosis), "curtose não pode ser NaN")
}
