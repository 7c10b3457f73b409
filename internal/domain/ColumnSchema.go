package domain

// ColumnAbsent indica que a coluna não existe na fonte
const ColumnAbsent = -1

const (
	// DefaultHeaderRow é a linha do cabeçalho (linha 4 da planilha, base 0)
	DefaultHeaderRow = 3
	// DefaultFirstDataRow é a primeira linha de dados (linha 5 da planilha, base 0)
	DefaultFirstDataRow = 4
)

// ColumnSchema mapeia cada campo semântico para o índice da coluna (base 0: A=0, B=1...)
type ColumnSchema struct {
	Date        int
	Cost        int
	Deposits    int
	Conversions int
	Leads       int
	LeadsIn     int
	LeadsOut    int

	GroupScore      int
	LiveWatched     int
	LivePeak        int
	LiveFinal       int
	LiveScoreTotal  int
	EfficiencyIndex int

	Summary8020 int
	Detail      int
	Revenue     int

	Impressions int
	Clicks      int

	// Colunas opcionais descobertas pelo cabeçalho
	TotalValue     int
	Classification int
	Trend          int

	HeaderRow    int
	FirstDataRow int
}

// DefaultColumnSchema retorna o mapeamento fixo das colunas obrigatórias da planilha.
// As colunas opcionais começam ausentes até a leitura do cabeçalho.
func DefaultColumnSchema() ColumnSchema {
	return ColumnSchema{
		Date:        0,
		Cost:        1,
		Deposits:    2,
		Conversions: 3,
		Leads:       4,
		LeadsIn:     5,
		LeadsOut:    6,

		GroupScore:      7,
		LiveWatched:     8,
		LivePeak:        9,
		LiveFinal:       10,
		LiveScoreTotal:  16,
		EfficiencyIndex: 20,

		Summary8020: 21,
		Detail:      22,
		Revenue:     23,

		Impressions: ColumnAbsent,
		Clicks:      ColumnAbsent,

		TotalValue:     ColumnAbsent,
		Classification: ColumnAbsent,
		Trend:          ColumnAbsent,

		HeaderRow:    DefaultHeaderRow,
		FirstDataRow: DefaultFirstDataRow,
	}
}
