// Package stats calcula estatísticas descritivas sobre séries numéricas
// (ex.: leads por dia). Funções puras, sem estado; os kernels numéricos
// vêm do gonum.
package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

const confidenceLevel = 0.95

// Interval é um intervalo de confiança para a média.
type Interval struct {
	Lower float64
	Upper float64
}

// Summary reúne as estatísticas descritivas de uma série.
//
// Momentos indefinidos para séries curtas são reportados como 0 em vez de
// NaN (NaN não sobrevive à serialização JSON): desvio padrão amostral exige
// n ≥ 2, assimetria n ≥ 3, curtose n ≥ 4. O intervalo de confiança usa a
// distribuição t de Student com n-1 graus de liberdade e é nulo quando
// n < 2 (graus de liberdade ≤ 0 → não aplicável).
type Summary struct {
	N                  int
	Mean               float64
	Median             float64
	Mode               float64
	StdDev             float64 // amostral (divide por n-1)
	Min                float64
	Max                float64
	Skewness           float64
	Kurtosis           float64 // excesso de curtose
	ConfidenceInterval *Interval
}

// Describe calcula o Summary da série. Série vazia → Summary zerado.
func Describe(series []float64) Summary {
	n := len(series)
	if n == 0 {
		return Summary{}
	}

	s := Summary{
		N:      n,
		Mean:   stat.Mean(series, nil),
		Median: median(series),
		Mode:   mode(series),
		Min:    floats.Min(series),
		Max:    floats.Max(series),
	}
	if n >= 2 {
		s.StdDev = stat.StdDev(series, nil)
	}
	if n >= 3 {
		s.Skewness = stat.Skew(series, nil)
	}
	if n >= 4 {
		s.Kurtosis = stat.ExKurtosis(series, nil)
	}
	if n >= 2 {
		tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1)}
		tCrit := tDist.Quantile((1 + confidenceLevel) / 2)
		margin := tCrit * s.StdDev / math.Sqrt(float64(n))
		s.ConfidenceInterval = &Interval{Lower: s.Mean - margin, Upper: s.Mean + margin}
	}
	return s
}

// median devolve a mediana com interpolação: para n par, a média dos dois
// valores centrais (gonum stat.Quantile não interpola, por isso é manual).
func median(series []float64) float64 {
	sorted := append([]float64(nil), series...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// mode devolve o valor mais frequente; em empate, o menor dos valores modais
// (regra determinística: "primeiro valor modal" da série ordenada).
func mode(series []float64) float64 {
	counts := make(map[float64]int, len(series))
	for _, v := range series {
		counts[v]++
	}
	best, bestCount := 0.0, 0
	for v, c := range counts {
		if c > bestCount || (c == bestCount && v < best) {
			best, bestCount = v, c
		}
	}
	return best
}
