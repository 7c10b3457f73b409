package period

import (
	"time"

	"github.com/vfg2006/expert-metrics-api/internal/domain"
)

// allTimeFloor é o início fixo do período "todo o período"
var allTimeFloor = domain.Date{Year: 1970, Month: time.January, Day: 1}

// Resolve converte o período pedido em um intervalo concreto, relativo a now (no fuso de now).
// Presets desconhecidos são tratados como todo o período.
func Resolve(req domain.RangeRequest, now time.Time) domain.DateRange {
	loc := now.Location()
	today := domain.DateOf(now)

	switch req.Preset {
	case domain.RangeToday:
		return days(today, today, loc)

	case domain.RangeYesterday:
		yesterday := today.AddDays(-1)
		return days(yesterday, yesterday, loc)

	case domain.RangeThisWeek:
		// semana começa no domingo
		start := today.AddDays(-int(now.Weekday()))
		return days(start, today, loc)

	case domain.RangeLastWeek:
		start := today.AddDays(-int(now.Weekday()) - 7)
		return days(start, start.AddDays(6), loc)

	case domain.RangeThisMonth:
		start := domain.Date{Year: today.Year, Month: today.Month, Day: 1}
		return days(start, today, loc)

	case domain.RangeLastMonth:
		firstOfMonth := domain.Date{Year: today.Year, Month: today.Month, Day: 1}
		end := firstOfMonth.AddDays(-1)
		start := domain.Date{Year: end.Year, Month: end.Month, Day: 1}
		return days(start, end, loc)

	case domain.RangeThisYear:
		return days(domain.Date{Year: today.Year, Month: time.January, Day: 1}, today, loc)

	case domain.RangeLastYear:
		return days(
			domain.Date{Year: today.Year - 1, Month: time.January, Day: 1},
			domain.Date{Year: today.Year - 1, Month: time.December, Day: 31},
			loc,
		)

	case domain.RangeLast30Days:
		return days(today.AddDays(-30), today, loc)

	case domain.RangeCustom:
		return Custom(req.From, req.To, today, loc)

	default:
		return days(allTimeFloor, today, loc)
	}
}

// Custom monta o intervalo de limites explícitos; limite ausente vira hoje e limites invertidos são trocados
func Custom(from, to, today domain.Date, loc *time.Location) domain.DateRange {
	if from.IsZero() {
		from = today
	}
	if to.IsZero() {
		to = today
	}
	if to.Before(from) {
		from, to = to, from
	}
	return days(from, to, loc)
}

// PreviousPeriod devolve a janela de mesma duração imediatamente anterior ao intervalo:
// termina 1ms antes do início e não se sobrepõe a ele
func PreviousPeriod(r domain.DateRange) domain.DateRange {
	duration := r.Duration()
	end := r.Start.Add(-time.Millisecond)

	return domain.DateRange{
		Start: end.Add(-duration),
		End:   end,
	}
}

// days monta [meia-noite de first, 23:59:59.999 de last]. O fim é 1ms antes da meia-noite seguinte,
// o que vale também nos dias de 23h ou 25h do horário de verão.
func days(first, last domain.Date, loc *time.Location) domain.DateRange {
	return domain.DateRange{
		Start: first.In(loc),
		End:   last.AddDays(1).In(loc).Add(-time.Millisecond),
	}
}
