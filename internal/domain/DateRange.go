package domain

import (
	"strings"
	"time"
)

// DateRange representa um intervalo fechado [Start, End]; End vai até 23:59:59.999 do último dia
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (r DateRange) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// Contains verifica se a meia-noite do dia (no fuso do intervalo) está dentro do intervalo
func (r DateRange) Contains(d Date) bool {
	t := d.In(r.Start.Location())
	return !t.Before(r.Start) && !t.After(r.End)
}

// RangePreset são os períodos nomeados do filtro do dashboard
type RangePreset string

const (
	RangeToday      RangePreset = "today"
	RangeYesterday  RangePreset = "yesterday"
	RangeThisWeek   RangePreset = "this_week"
	RangeLastWeek   RangePreset = "last_week"
	RangeThisMonth  RangePreset = "this_month"
	RangeLastMonth  RangePreset = "last_month"
	RangeThisYear   RangePreset = "this_year"
	RangeLastYear   RangePreset = "last_year"
	RangeLast30Days RangePreset = "last_30_days"
	RangeAllTime    RangePreset = "all_time"
	RangeCustom     RangePreset = "custom"
)

var rangePresetAliases = map[string]RangePreset{
	"30d": RangeLast30Days,
	"all": RangeAllTime,
}

// ParseRangePreset converte o valor recebido na query; aceita os apelidos antigos "30d" e "all"
func ParseRangePreset(s string) (RangePreset, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if alias, ok := rangePresetAliases[s]; ok {
		return alias, true
	}

	switch preset := RangePreset(s); preset {
	case RangeToday, RangeYesterday, RangeThisWeek, RangeLastWeek, RangeThisMonth,
		RangeLastMonth, RangeThisYear, RangeLastYear, RangeLast30Days, RangeAllTime, RangeCustom:
		return preset, true
	}

	return "", false
}

// RangeRequest descreve o período pedido: um preset ou limites explícitos (custom).
// Granularity só afeta o gráfico de progresso do dashboard do cliente.
type RangeRequest struct {
	Preset      RangePreset
	From        Date
	To          Date
	Granularity Granularity
}

// Label retorna o rótulo do período exibido no dashboard
func (p RangePreset) Label() string {
	switch p {
	case RangeToday:
		return "Hoje"
	case RangeYesterday:
		return "Ontem"
	case RangeThisWeek:
		return "Esta Semana"
	case RangeLastWeek:
		return "Semana Passada"
	case RangeThisMonth:
		return "Este Mês"
	case RangeLastMonth:
		return "Mês Passado"
	case RangeThisYear:
		return "Este Ano"
	case RangeLastYear:
		return "Ano Passado"
	case RangeLast30Days:
		return "Últimos 30 Dias"
	case RangeAllTime:
		return "Todo o Período"
	case RangeCustom:
		return "Período Personalizado"
	default:
		return string(p)
	}
}
