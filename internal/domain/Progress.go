package domain

import "fmt"

// Granularity é o agrupamento do gráfico de progresso do expert
type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
)

var monthAbbreviations = [...]string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}

// BucketStart retorna o primeiro dia do grupo que contém d: o próprio dia, o domingo da semana ou o dia 1 do mês
func (g Granularity) BucketStart(d Date) Date {
	switch g {
	case GranularityWeekly:
		return d.AddDays(-int(d.Weekday()))
	case GranularityMonthly:
		return Date{Year: d.Year, Month: d.Month, Day: 1}
	default:
		return d
	}
}

// BucketLabel formata o início do grupo: DD/MM para dia e semana, Mmm/AA para mês
func (g Granularity) BucketLabel(start Date) string {
	if g == GranularityMonthly {
		return fmt.Sprintf("%s/%02d", monthAbbreviations[start.Month-1], start.Year%100)
	}
	return fmt.Sprintf("%02d/%02d", start.Day, int(start.Month))
}

// ProgressPoint é um grupo do gráfico de progresso: soma do retorno (valor total ou depósitos) no período
type ProgressPoint struct {
	Label   string  `json:"label"`
	Start   Date    `json:"start"`
	Value   float64 `json:"value"`
	Records int     `json:"records"`
}
