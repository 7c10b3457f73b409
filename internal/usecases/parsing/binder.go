package parsing

import (
	"strings"
	"time"

	"github.com/vfg2006/expert-metrics-api/internal/domain"
	"github.com/vfg2006/expert-metrics-api/pkg/utils"
)

// BindResult é o resultado da leitura de uma aba
type BindResult struct {
	Records []domain.MetricRecord
	// Skipped conta as linhas descartadas: vazias, sem data ou com data inválida
	Skipped int
}

// BindSheet converte todas as linhas de dados da aba (a partir de schema.FirstDataRow)
// em registros tipados, na ordem da planilha
func BindSheet(sheet domain.RawSheet, schema domain.ColumnSchema, loc *time.Location) BindResult {
	result := BindResult{Records: []domain.MetricRecord{}}

	start := schema.FirstDataRow
	if start < 0 {
		start = 0
	}

	for i := start; i < len(sheet); i++ {
		record, ok := BindRow(sheet[i], schema, loc)
		if !ok {
			result.Skipped++
			continue
		}
		result.Records = append(result.Records, record)
	}

	return result
}

// BindRow converte uma linha crua em MetricRecord.
// Retorna false quando a linha está vazia, não tem data ou a data não é válida.
func BindRow(row domain.RawRow, schema domain.ColumnSchema, loc *time.Location) (domain.MetricRecord, bool) {
	if len(row) == 0 {
		return domain.MetricRecord{}, false
	}

	rawDate := cell(row, schema.Date)
	if isBlank(rawDate) {
		return domain.MetricRecord{}, false
	}

	parsedDate, ok := utils.ParseSheetDate(rawDate, loc)
	if !ok {
		return domain.MetricRecord{}, false
	}

	record := domain.MetricRecord{
		Date: domain.DateOf(parsedDate),

		Cost:       utils.ParseNumber(cell(row, schema.Cost)),
		Deposits:   utils.ParseNumber(cell(row, schema.Deposits)),
		Revenue:    utils.ParseNumber(cell(row, schema.Revenue)),
		TotalValue: utils.ParseNumber(cell(row, schema.TotalValue)),

		Leads:       utils.ParseInt(cell(row, schema.Leads)),
		LeadsIn:     utils.ParseInt(cell(row, schema.LeadsIn)),
		LeadsOut:    utils.ParseInt(cell(row, schema.LeadsOut)),
		Conversions: utils.ParseInt(cell(row, schema.Conversions)),
		Impressions: utils.ParseInt(cell(row, schema.Impressions)),
		Clicks:      utils.ParseInt(cell(row, schema.Clicks)),

		GroupScore:      utils.ParseNumber(cell(row, schema.GroupScore)),
		LiveWatched:     isAffirmative(cell(row, schema.LiveWatched)),
		LivePeak:        utils.ParseInt(cell(row, schema.LivePeak)),
		LiveFinal:       utils.ParseInt(cell(row, schema.LiveFinal)),
		LiveScoreTotal:  utils.ParseNumber(cell(row, schema.LiveScoreTotal)),
		EfficiencyIndex: utils.ParseNumber(cell(row, schema.EfficiencyIndex)),

		Summary8020: text(cell(row, schema.Summary8020)),
		Detail:      text(cell(row, schema.Detail)),

		Classification: label(cell(row, schema.Classification)),
		TrendLabel:     label(cell(row, schema.Trend)),
	}

	if record.Cost != 0 {
		record.ROAS = record.Revenue / record.Cost
	}

	return record, true
}

// cell retorna nil para coluna ausente ou fora do tamanho da linha
func cell(row domain.RawRow, index int) any {
	if index < 0 || index >= len(row) {
		return nil
	}
	return row[index]
}

func isBlank(value any) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

func isAffirmative(value any) bool {
	if value == nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(cellText(value)), domain.LiveWatchedToken)
}

func text(value any) string {
	return strings.TrimSpace(cellText(value))
}

func label(value any) string {
	return strings.ToUpper(text(value))
}
