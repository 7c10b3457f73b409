package utils

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// leadingNumber reproduz a leitura "prefixo numérico" das planilhas: "12abc" vale 12
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	rounded, _ := decimal.NewFromFloat(f).Round(2).Float64()
	return rounded
}

// ParseNumber converte um valor da planilha (número ou texto em formato BR/US) para float64.
// Nunca falha: vazio, "-" ou texto inválido valem 0.
//
// Heurística de separadores:
//   - ponto e vírgula (1.200,50): ponto é milhar, vírgula é decimal
//   - só vírgula (1200,50): vírgula é decimal
//   - só ponto com exatamente 3 dígitos depois (1.200): ponto é milhar
//
// "12.500" vira 12500 mesmo que a intenção fosse 12,5; o formato original não é recuperável.
func ParseNumber(value any) float64 {
	switch v := value.(type) {
	case nil:
		return 0
	case float64:
		return finiteOrZero(v)
	case float32:
		return finiteOrZero(float64(v))
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case uint32:
		return float64(v)
	case uint64:
		return float64(v)
	case json.Number:
		return parseNumberString(v.String())
	case bool:
		return 0
	case string:
		return parseNumberString(v)
	default:
		return parseNumberString(fmt.Sprint(v))
	}
}

// ParseInt é ParseNumber arredondado para o inteiro mais próximo (contagens)
func ParseInt(value any) int {
	return int(math.Round(ParseNumber(value)))
}

func parseNumberString(raw string) float64 {
	str := strings.TrimSpace(raw)
	if str == "" || str == "-" {
		return 0
	}

	// Remove R$, % e espaços (inclusive o espaço não separável do Sheets)
	clean := strings.Map(func(r rune) rune {
		if r == 'R' || r == '$' || r == '%' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, str)

	hasDot := strings.Contains(clean, ".")
	hasComma := strings.Contains(clean, ",")

	switch {
	case hasDot && hasComma:
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.Replace(clean, ",", ".", 1)
	case hasComma:
		clean = strings.Replace(clean, ",", ".", 1)
	case hasDot:
		if parts := strings.Split(clean, "."); len(parts[1]) == 3 {
			clean = strings.ReplaceAll(clean, ".", "")
		}
	}

	match := strings.TrimSuffix(leadingNumber.FindString(clean), ".")
	if match == "" {
		return 0
	}

	d, err := decimal.NewFromString(match)
	if err != nil {
		return 0
	}

	f, _ := d.Float64()
	return finiteOrZero(f)
}

func finiteOrZero(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
