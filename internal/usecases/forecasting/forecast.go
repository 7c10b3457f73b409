package forecasting

import (
	"math"

	"github.com/samber/lo"

	"github.com/vfg2006/expert-metrics-api/internal/domain"
)

const (
	// Window é o número máximo de dias recentes usados na regressão
	Window = 30
	// DefaultHorizon é a projeção exibida no card "próximos 7 dias"
	DefaultHorizon = 7
)

// Forecast projeta os depósitos dos próximos horizon dias por regressão linear (mínimos quadrados)
// sobre os últimos Window pontos da série diária. A série deve estar em ordem crescente de data.
// Com menos de 2 pontos não há projeção.
func Forecast(series []domain.DailyMetrics, horizon int) []domain.ForecastPoint {
	if len(series) < 2 || horizon <= 0 {
		return []domain.ForecastPoint{}
	}

	window := series
	if len(window) > Window {
		window = window[len(window)-Window:]
	}

	n := float64(len(window))
	var sumX, sumY, sumXY, sumXX float64
	for i, day := range window {
		x := float64(i)
		y := day.Deposits
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	// série constante projeta exatamente o próprio valor; sem variação em x a reta é horizontal na média
	slope, intercept := 0.0, sumY/n
	if constant(window) {
		intercept = window[0].Deposits
	} else if denominator := n*sumXX - sumX*sumX; denominator != 0 {
		slope = (n*sumXY - sumX*sumY) / denominator
		intercept = (sumY - slope*sumX) / n
	}

	last := window[len(window)-1].Date
	points := make([]domain.ForecastPoint, 0, horizon)
	for i := 1; i <= horizon; i++ {
		value := slope*(n-1+float64(i)) + intercept
		points = append(points, domain.ForecastPoint{
			Date:           last.AddDays(i),
			ProjectedValue: math.Max(0, value),
			IsForecast:     true,
		})
	}

	return points
}

func constant(window []domain.DailyMetrics) bool {
	first := window[0].Deposits
	return lo.EveryBy(window, func(day domain.DailyMetrics) bool {
		return day.Deposits == first
	})
}

// Total soma os valores projetados
func Total(points []domain.ForecastPoint) float64 {
	return lo.SumBy(points, func(p domain.ForecastPoint) float64 {
		return p.ProjectedValue
	})
}
