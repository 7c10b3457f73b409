package handler

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/vfg2006/expert-metrics-api/internal/domain"
	"github.com/vfg2006/expert-metrics-api/pkg/utils"
)

var validate = validator.New()

var errInvalidRange = errors.New("range inválido")

// rangeQuery são os parâmetros de período aceitos pelo dashboard e pela visão geral
type rangeQuery struct {
	Range       string `validate:"omitempty,max=20"`
	StartDate   string `validate:"omitempty,datetime=2006-01-02"`
	EndDate     string `validate:"omitempty,datetime=2006-01-02"`
	Granularity string `validate:"omitempty,oneof=daily weekly monthly"`
}

type historyQuery struct {
	Limit int `validate:"min=0,max=365"`
}

// paramError descreve o parâmetro rejeitado na resposta de erro
type paramError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

func validationDetails(err error) []paramError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	details := make([]paramError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		details = append(details, paramError{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()})
	}
	return details
}

// parseRangeRequest lê range, start_date, end_date e granularity. Sem range e com alguma data, o período é personalizado.
func parseRangeRequest(r *http.Request) (domain.RangeRequest, error) {
	q := r.URL.Query()
	query := rangeQuery{
		Range:       q.Get("range"),
		StartDate:   q.Get("start_date"),
		EndDate:     q.Get("end_date"),
		Granularity: q.Get("granularity"),
	}

	if err := validate.Struct(query); err != nil {
		return domain.RangeRequest{}, err
	}

	req := domain.RangeRequest{Preset: domain.RangeAllTime, Granularity: domain.Granularity(query.Granularity)}
	switch {
	case query.Range != "":
		preset, ok := domain.ParseRangePreset(query.Range)
		if !ok {
			return domain.RangeRequest{}, errInvalidRange
		}
		req.Preset = preset
	case query.StartDate != "" || query.EndDate != "":
		req.Preset = domain.RangeCustom
	}

	if req.Preset == domain.RangeCustom {
		from, err := utils.ParseDate(query.StartDate)
		if err != nil {
			return domain.RangeRequest{}, err
		}
		to, err := utils.ParseDate(query.EndDate)
		if err != nil {
			return domain.RangeRequest{}, err
		}

		if query.StartDate != "" {
			req.From = domain.DateOf(*from)
		}
		if query.EndDate != "" {
			req.To = domain.DateOf(*to)
		}
	}

	return req, nil
}

// parseHistoryLimit lê o limite de dias do histórico; ausente vale 0 (limite padrão do repositório)
func parseHistoryLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Wrap(err, "limit inválido")
	}

	if err := validate.Struct(historyQuery{Limit: limit}); err != nil {
		return 0, err
	}

	return limit, nil
}
