package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/theirongolddev/pdash/internal/metrics"
	"github.com/theirongolddev/pdash/internal/model"
	"github.com/theirongolddev/pdash/internal/report"

	"github.com/rs/zerolog"
)

const maxBodyBytes = 1 << 20

var errMalformed = errors.New("malformed request")

type errorResponse struct {
	Error  string               `json:"error"`
	Fields []metrics.FieldError `json:"fields,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

// handleReport serves the report view as JSON. GET reads the inputs from the
// query string, POST from a JSON body; absent fields take the defaults.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	in, err := s.requestInputs(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	v, err := report.Generate(in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, v)
}

func (s *Server) handleReportPDF(w http.ResponseWriter, r *http.Request) {
	in, err := s.requestInputs(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	v, err := report.Generate(in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := report.WritePDF(&buf, v); err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", report.MIMEType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	if _, err := buf.WriteTo(w); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to write pdf")
	}
}

func (s *Server) requestInputs(w http.ResponseWriter, r *http.Request) (model.ProjectInputs, error) {
	if r.Method == http.MethodPost {
		in := s.cfg.Defaults
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&in); err != nil {
			return model.ProjectInputs{}, fmt.Errorf("%w: %v", errMalformed, err)
		}
		return in, nil
	}
	return metrics.ParseInputs(queryValues(r.URL.Query()), s.cfg.Defaults)
}

// queryValues picks the known input fields out of a query string.
func queryValues(q url.Values) map[string]string {
	values := make(map[string]string)
	for _, f := range inputFields {
		if q.Has(f) {
			values[f] = q.Get(f)
		}
	}
	return values
}

var inputFields = []string{
	metrics.FieldName,
	metrics.FieldBudget,
	metrics.FieldSpent,
	metrics.FieldPlanned,
	metrics.FieldActual,
	metrics.FieldProgress,
	metrics.FieldRisks,
}

// encodeInputs is the inverse of queryValues.
func encodeInputs(in model.ProjectInputs) url.Values {
	q := url.Values{}
	q.Set(metrics.FieldName, in.Name)
	q.Set(metrics.FieldBudget, strconv.FormatFloat(in.Budget, 'f', -1, 64))
	q.Set(metrics.FieldSpent, strconv.FormatFloat(in.Spent, 'f', -1, 64))
	q.Set(metrics.FieldPlanned, strconv.Itoa(in.PlannedMonths))
	q.Set(metrics.FieldActual, strconv.Itoa(in.ActualMonths))
	q.Set(metrics.FieldProgress, strconv.Itoa(in.ProgressPercent))
	q.Set(metrics.FieldRisks, in.RisksRaw)
	return q
}

// errorStatus maps a report error to its HTTP status.
func errorStatus(err error) int {
	var ve *metrics.ValidationError
	switch {
	case errors.As(err, &ve), errors.Is(err, errMalformed):
		return http.StatusBadRequest
	case errors.Is(err, metrics.ErrZeroBudget):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errorStatus(err)
	resp := errorResponse{Error: err.Error()}

	var ve *metrics.ValidationError
	if errors.As(err, &ve) {
		resp.Fields = ve.Fields
	}

	logger := zerolog.Ctx(r.Context())
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Msg("report failed")
		resp.Error = http.StatusText(status)
	} else {
		logger.Debug().Err(err).Int("status", status).Msg("rejected inputs")
	}

	writeJSON(w, r, status, resp)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Msg("failed to encode response")
	}
}
