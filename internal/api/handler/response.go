package handler

import (
	"context"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/vfg2006/expert-metrics-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/expert-metrics-api/internal/usecases/insighting"
	"github.com/vfg2006/expert-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/expert-metrics-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("handler: erro ao serializar resposta")
	}
}

// writeServiceError converte o erro dos serviços no código de erro da API
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, sheets.ErrClientNotFound):
		apiErrors.WriteError(w, apiErrors.ErrClientNotFound, "Cliente não encontrado", nil)
	case errors.Is(err, insighting.ErrSnapshotStore):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar o histórico de status", nil)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		apiErrors.WriteError(w, apiErrors.ErrCommunication, "Tempo esgotado ao consultar a planilha", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar a planilha", err.Error())
	}
}
