package domain

import "time"

// Classification é o status operacional de um expert calculado pelo ROAS dos últimos 7 dias
type Classification string

const (
	ClassificationScale    Classification = "SCALE"
	ClassificationMaintain Classification = "MAINTAIN"
	ClassificationAtRisk   Classification = "AT_RISK"
	ClassificationNoData   Classification = "NO_DATA"
)

// Label retorna o rótulo usado na planilha e no badge
func (c Classification) Label() string {
	switch c {
	case ClassificationScale:
		return "ESCALAR"
	case ClassificationMaintain:
		return "MANTER"
	case ClassificationAtRisk:
		return "RISCO"
	default:
		return "SEM DADOS"
	}
}

func (c Classification) Description() string {
	switch c {
	case ClassificationScale:
		return "ROAS ≥ 1.5 nos últimos 7 dias. Cenário seguro e lucrativo para aumentar o investimento."
	case ClassificationMaintain:
		return "ROAS entre 1.0 e 1.49. O expert se paga, mas não há margem segura para escalar agressivamente."
	case ClassificationAtRisk:
		return "ROAS < 1.0 nos últimos 7 dias. A operação está dando prejuízo."
	default:
		return "Não há dados suficientes de investimento e retorno nos últimos 7 dias."
	}
}

// Trend é a tendência do retorno comparando os últimos 7 dias com os 7 anteriores
type Trend string

const (
	TrendRising  Trend = "RISING"
	TrendFalling Trend = "FALLING"
	TrendStable  Trend = "STABLE"
)

func (t Trend) Label() string {
	switch t {
	case TrendRising:
		return "SUBINDO"
	case TrendFalling:
		return "DESCENDO"
	default:
		return "ESTÁVEL"
	}
}

func (t Trend) Description() string {
	switch t {
	case TrendRising:
		return "Faturamento cresceu > 10% em relação aos 7 dias anteriores."
	case TrendFalling:
		return "Faturamento caiu > 10% em relação aos 7 dias anteriores."
	default:
		return "Faturamento variou menos de 10% em relação ao período anterior."
	}
}

// ExpertStatus é o status calculado de um expert em um instante de referência
type ExpertStatus struct {
	Classification Classification `json:"classification"`
	Trend          Trend          `json:"trend"`
	AsOf           time.Time      `json:"as_of"`

	ROAS7       float64 `json:"roas_7d"`
	Cost7       float64 `json:"cost_7d"`
	Return7     float64 `json:"return_7d"`
	PrevReturn7 float64 `json:"prev_return_7d"`
	Growth      float64 `json:"growth"`
}

// NotAvailable é o valor exibido quando a planilha não traz status
const NotAvailable = "N/A"

// SourceStatus é o status informado pela própria planilha (colunas CLASSIFICAÇÃO/TENDÊNCIA)
type SourceStatus struct {
	Classification string `json:"classificacao"`
	Trend          string `json:"tendencia"`
}

// Growth representa a evolução semanal e mensal do retorno (%)
type Growth struct {
	Weekly  float64 `json:"weekly"`
	Monthly float64 `json:"monthly"`
}
