package utils

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// maxSheetSerial é o serial de 31/12/9999, maior data aceita pelas planilhas
const maxSheetSerial = 2958465

var (
	// sheetsEpoch é a data base dos seriais do Excel/Sheets (30/12/1899)
	sheetsEpoch   = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)
	brDatePattern = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)

	// Formatos aceitos para datas que não vêm como serial nem como DD/MM/YYYY
	genericDateLayouts = []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05.000",
		"2006-01-02T15:04:05",
		time.DateTime,
		time.DateOnly,
		"2006/01/02",
		time.RFC1123Z,
		time.RFC1123,
		"Mon Jan 2 2006",
		"Jan 2, 2006",
		"January 2, 2006",
		"2 Jan 2006",
	}
)

// ParseDate converte o parâmetro de data (YYYY-MM-DD) das requisições
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ParseSheetDate converte a célula de data da planilha para a meia-noite do dia no fuso informado.
// Aceita serial numérico (dias desde 30/12/1899), texto DD/MM/YYYY ou outros formatos de data/hora.
// Retorna false quando a célula está vazia ou não representa uma data válida.
func ParseSheetDate(value any, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.UTC
	}

	switch v := value.(type) {
	case nil:
		return time.Time{}, false
	case float64:
		return serialToDate(v, loc)
	case float32:
		return serialToDate(float64(v), loc)
	case int:
		return serialToDate(float64(v), loc)
	case int64:
		return serialToDate(float64(v), loc)
	case string:
		return parseDateString(v, loc)
	default:
		return parseDateString(fmt.Sprint(v), loc)
	}
}

// serialToDate usa apenas a parte inteira do serial: a parte fracionária é a hora do dia,
// e fixar o meio-dia evita que o fuso jogue a data para o dia anterior
func serialToDate(serial float64, loc *time.Location) (time.Time, bool) {
	if serial == 0 || math.IsNaN(serial) || math.IsInf(serial, 0) || math.Abs(serial) > maxSheetSerial {
		return time.Time{}, false
	}

	midday := sheetsEpoch.AddDate(0, 0, int(math.Floor(serial))).Add(12 * time.Hour)
	return time.Date(midday.Year(), midday.Month(), midday.Day(), 0, 0, 0, 0, loc), true
}

func parseDateString(raw string, loc *time.Location) (time.Time, bool) {
	str := strings.TrimSpace(raw)
	if str == "" {
		return time.Time{}, false
	}

	if m := brDatePattern.FindStringSubmatch(str); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])

		t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
		if t.Year() != year || int(t.Month()) != month || t.Day() != day {
			return time.Time{}, false
		}
		return t, true
	}

	for _, layout := range genericDateLayouts {
		parsed, err := time.Parse(layout, str)
		if err != nil {
			continue
		}

		// Datas sem hora são lidas como meia-noite UTC; no Brasil (GMT-3) isso cai no dia anterior.
		// Soma-se o offset do fuso mais 12h de margem antes de truncar para o dia.
		_, offset := parsed.In(loc).Zone()
		corrected := parsed.Add(time.Duration(-offset)*time.Second + 12*time.Hour).In(loc)

		return time.Date(corrected.Year(), corrected.Month(), corrected.Day(), 0, 0, 0, 0, loc), true
	}

	return time.Time{}, false
}
