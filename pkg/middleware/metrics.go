package middleware

import (
	"net/http"
	"time"

	"github.com/vfg2006/expert-metrics-api/pkg/telemetry"
)

// Instrument registra a contagem e a duração das requisições de uma rota.
// O path é o padrão da rota (ex: /v1/clients/:slug/dashboard), não a URL recebida.
func Instrument(metrics *telemetry.Metrics, path string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if metrics == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sr := newStatusRecorder(w)
			started := time.Now()

			next.ServeHTTP(sr, r)

			metrics.ObserveHTTPRequest(path, r.Method, sr.statusCode, time.Since(started))
		})
	}
}
