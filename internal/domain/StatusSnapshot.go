package domain

import "time"

// StatusSnapshot é o status diário de um expert persistido pelo agendador
type StatusSnapshot struct {
	ID             int64          `json:"id"`
	RunID          string         `json:"run_id"`
	ClientSlug     string         `json:"client_slug"`
	ClientName     string         `json:"client_name"`
	Date           Date           `json:"date"`
	Classification Classification `json:"classification"`
	Trend          Trend          `json:"trend"`
	ROAS7          float64        `json:"roas_7d"`
	Return7        float64        `json:"return_7d"`
	Cost7          float64        `json:"cost_7d"`
	CreatedAt      time.Time      `json:"created_at"`
}
