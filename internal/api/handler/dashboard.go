package handler

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/expert-metrics-api/internal/usecases/insighting"
	"github.com/vfg2006/expert-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/expert-metrics-api/pkg/log"
)

// Clock fornece o instante de referência das análises
type Clock func() time.Time

func ListClients(service insighting.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		clients, err := service.ListClients(r.Context())
		if err != nil {
			logger.WithError(err).Error("clients: erro ao listar clientes")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, clients)
	})
}

// RefreshClients descarta a lista de clientes em cache; a próxima leitura consulta a planilha
func RefreshClients(service insighting.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		service.RefreshClients()
		log.ForContext(r.Context()).Info("clients: cache da lista de clientes descartado")

		writeJSON(w, r, http.StatusOK, map[string]string{"message": "Lista de clientes será recarregada"})
	})
}

func GetClientDashboard(service insighting.Dashboarder, now Clock) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		slug := httprouter.ParamsFromContext(r.Context()).ByName("slug")

		req, err := parseRangeRequest(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"client": slug,
				"query":  r.URL.RawQuery,
				"error":  err.Error(),
			}).Warn("dashboard: parâmetros de período inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetros de período inválidos", validationDetails(err))
			return
		}

		dashboard, err := service.ClientDashboard(r.Context(), slug, req, now())
		if err != nil {
			logger.WithFields(log.Fields{
				"client": slug,
				"preset": req.Preset,
				"error":  err.Error(),
			}).Error("dashboard: erro ao montar dashboard do cliente")
			writeServiceError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"client": slug,
			"preset": req.Preset,
		}).Info("dashboard: dashboard do cliente montado")

		writeJSON(w, r, http.StatusOK, dashboard)
	})
}

func GetOverview(service insighting.Dashboarder, now Clock) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		req, err := parseRangeRequest(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"query": r.URL.RawQuery,
				"error": err.Error(),
			}).Warn("overview: parâmetros de período inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetros de período inválidos", validationDetails(err))
			return
		}

		overview, err := service.Overview(r.Context(), req, now())
		if err != nil {
			logger.WithFields(log.Fields{
				"preset": req.Preset,
				"error":  err.Error(),
			}).Error("overview: erro ao montar visão geral")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, overview)
	})
}

// GetClientsStatus retorna o status de cada expert indexado pelo slug
func GetClientsStatus(service insighting.Dashboarder, now Clock) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		statuses, err := service.ClientsStatus(r.Context(), now())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("status: erro ao calcular status dos clientes")
			writeServiceError(w, err)
			return
		}

		bySlug := make(map[string]any, len(statuses))
		for _, entry := range statuses {
			bySlug[entry.Client.Slug] = entry
		}

		writeJSON(w, r, http.StatusOK, bySlug)
	})
}

func GetStatusHistory(service insighting.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		slug := httprouter.ParamsFromContext(r.Context()).ByName("slug")

		limit, err := parseHistoryLimit(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetro limit inválido", validationDetails(err))
			return
		}

		history, err := service.StatusHistory(r.Context(), slug, limit)
		if err != nil {
			logger.WithFields(log.Fields{
				"client": slug,
				"error":  err.Error(),
			}).Error("status: erro ao buscar histórico de status")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, history)
	})
}
