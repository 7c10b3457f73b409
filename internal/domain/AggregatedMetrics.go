package domain

// AggregatedMetrics é a soma de um conjunto de MetricRecord mais as métricas derivadas
type AggregatedMetrics struct {
	Cost       float64 `json:"cost"`
	Deposits   float64 `json:"deposits"`
	Revenue    float64 `json:"revenue"`
	TotalValue float64 `json:"total_value"`

	Leads       int `json:"leads"`
	LeadsIn     int `json:"leads_in"`
	LeadsOut    int `json:"leads_out"`
	Conversions int `json:"conversions"`
	Impressions int `json:"impressions"`
	Clicks      int `json:"clicks"`

	ROAS                 float64 `json:"roas"`
	CTR                  float64 `json:"ctr"`
	CPC                  float64 `json:"cpc"`
	CPL                  float64 `json:"cpl"`
	CPA                  float64 `json:"cpa"`
	ConversionLeadToSale float64 `json:"conversion_lead_to_sale"` // Lead -> FTD (%)
	AvgTicket            float64 `json:"avg_ticket"`              // Depósitos / FTDs
}

// DailyMetrics é o agregado de um único dia
type DailyMetrics struct {
	Date Date `json:"date"`
	AggregatedMetrics
}

// MetricKey identifica um campo de AggregatedMetrics (usado no melhor dia)
type MetricKey string

const (
	MetricCost        MetricKey = "cost"
	MetricDeposits    MetricKey = "deposits"
	MetricRevenue     MetricKey = "revenue"
	MetricTotalValue  MetricKey = "total_value"
	MetricLeads       MetricKey = "leads"
	MetricConversions MetricKey = "conversions"
	MetricROAS        MetricKey = "roas"
	MetricCPL         MetricKey = "cpl"
	MetricCPA         MetricKey = "cpa"
	MetricAvgTicket   MetricKey = "avg_ticket"
)

// Value retorna o valor do campo identificado pela chave; chaves desconhecidas valem 0
func (a AggregatedMetrics) Value(key MetricKey) float64 {
	switch key {
	case MetricCost:
		return a.Cost
	case MetricDeposits:
		return a.Deposits
	case MetricRevenue:
		return a.Revenue
	case MetricTotalValue:
		return a.TotalValue
	case MetricLeads:
		return float64(a.Leads)
	case MetricConversions:
		return float64(a.Conversions)
	case MetricROAS:
		return a.ROAS
	case MetricCPL:
		return a.CPL
	case MetricCPA:
		return a.CPA
	case MetricAvgTicket:
		return a.AvgTicket
	default:
		return 0
	}
}

// ChartPoint é um ponto da série do gráfico (dias sem dados valem 0)
type ChartPoint struct {
	Date  Date    `json:"date"`
	Value float64 `json:"value"`
}
