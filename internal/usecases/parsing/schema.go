package parsing

import (
	"fmt"
	"strings"

	"github.com/vfg2006/expert-metrics-api/internal/domain"
	"github.com/vfg2006/expert-metrics-api/pkg/utils"
)

// optionalColumn associa trechos do cabeçalho (já sem acento e em caixa alta) a um campo opcional
type optionalColumn struct {
	patterns []string
	assign   func(schema *domain.ColumnSchema, index int)
}

var optionalColumns = []optionalColumn{
	{
		patterns: []string{"VALOR TOTAL"},
		assign:   func(s *domain.ColumnSchema, i int) { s.TotalValue = i },
	},
	{
		patterns: []string{"CLASSIFICACAO"},
		assign:   func(s *domain.ColumnSchema, i int) { s.Classification = i },
	},
	{
		patterns: []string{"TENDENCIA"},
		assign:   func(s *domain.ColumnSchema, i int) { s.Trend = i },
	},
}

// DiscoverSchema lê o cabeçalho e resolve as colunas opcionais sobre o mapeamento base.
// A primeira coluna que contém o trecho procurado vence; sem correspondência a coluna fica ausente.
func DiscoverSchema(header domain.RawRow, base domain.ColumnSchema) domain.ColumnSchema {
	schema := base
	schema.TotalValue = domain.ColumnAbsent
	schema.Classification = domain.ColumnAbsent
	schema.Trend = domain.ColumnAbsent

	folded := make([]string, len(header))
	for i, cell := range header {
		folded[i] = utils.FoldHeader(cellText(cell))
	}

	for _, column := range optionalColumns {
		if index := findColumn(folded, column.patterns); index != domain.ColumnAbsent {
			column.assign(&schema, index)
		}
	}

	return schema
}

// SchemaFromSheet descobre o schema usando a linha de cabeçalho configurada em base
func SchemaFromSheet(sheet domain.RawSheet, base domain.ColumnSchema) domain.ColumnSchema {
	if base.HeaderRow < 0 || base.HeaderRow >= len(sheet) {
		return DiscoverSchema(nil, base)
	}
	return DiscoverSchema(sheet[base.HeaderRow], base)
}

func findColumn(folded []string, patterns []string) int {
	for i, header := range folded {
		if header == "" {
			continue
		}
		for _, pattern := range patterns {
			if strings.Contains(header, pattern) {
				return i
			}
		}
	}
	return domain.ColumnAbsent
}

func cellText(cell any) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
