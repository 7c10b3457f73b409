package domain

import (
	"fmt"
	"time"
)

// brDateLayout é o formato de exibição usado pela planilha (DD/MM/YYYY)
const brDateLayout = "02/01/2006"

// Date representa um dia do calendário, sem componente de hora
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate cria uma data validando se ela existe no calendário (ex: 31/02 é rejeitado)
func NewDate(year int, month time.Month, day int) (Date, bool) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, false
	}

	return Date{Year: year, Month: month, Day: day}, true
}

// DateOf extrai o dia do calendário de um instante, no fuso do próprio instante
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseISODate converte uma string no formato YYYY-MM-DD
func ParseISODate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, err
	}

	return DateOf(t), nil
}

func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// In retorna a meia-noite do dia no fuso informado
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// AddDays soma (ou subtrai) dias corridos
func (d Date) AddDays(days int) Date {
	return DateOf(d.In(time.UTC).AddDate(0, 0, days))
}

func (d Date) Weekday() time.Weekday {
	return d.In(time.UTC).Weekday()
}

// Compare retorna -1, 0 ou 1
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return compareInt(d.Year, other.Year)
	case d.Month != other.Month:
		return compareInt(int(d.Month), int(other.Month))
	default:
		return compareInt(d.Day, other.Day)
	}
}

func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

func (d Date) After(other Date) bool {
	return d.Compare(other) > 0
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// BR formata a data no padrão brasileiro usado pelo dashboard
func (d Date) BR() string {
	return d.In(time.UTC).Format(brDateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("data inválida: %s", string(data))
	}

	parsed, err := ParseISODate(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

func compareInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}
