package server

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/pdash/internal/metrics"
	"github.com/theirongolddev/pdash/internal/model"
	"github.com/theirongolddev/pdash/internal/report"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := zerolog.New(zerolog.NewTestWriter(t))
	s := New(logger, Config{Defaults: model.DefaultInputs()})
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, ts *httptest.Server, path string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	resp, body := get(t, ts, "/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok\n", string(body))
}

func TestReportDefaults(t *testing.T) {
	ts := newTestServer(t)
	resp, body := get(t, ts, "/v1/report")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var v report.View
	require.NoError(t, json.Unmarshal(body, &v))
	assert.Equal(t, "Project Report: 132kV Grid Station Expansion", v.Title)
	assert.Equal(t, 600000.0, v.Report.BudgetVariance)
	assert.Equal(t, 0.75, v.Report.SchedulePerformanceIndex)
	assert.Equal(t, 1.25, v.Report.CostPerformanceIndex)
	require.Len(t, v.Risks, 2)
	assert.Equal(t, model.SeverityHigh, v.Risks[1].Severity)
}

func TestReportQueryOverrides(t *testing.T) {
	ts := newTestServer(t)
	q := url.Values{}
	q.Set("budget", "500000")
	q.Set("spent", "700000")
	q.Set("progress_percent", "60")
	q.Set("risks", "Weather")

	resp, body := get(t, ts, "/v1/report?"+q.Encode())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var v report.View
	require.NoError(t, json.Unmarshal(body, &v))
	assert.Equal(t, -200000.0, v.Report.BudgetVariance)
	assert.Equal(t, "$-200,000", v.Summary[0].Value)
	assert.Equal(t, 0.43, v.Report.CostPerformanceIndex)
	assert.Equal(t, []model.RiskEntry{{Description: "Weather", Severity: model.SeverityLow}}, v.Risks)
}

func TestReportPost(t *testing.T) {
	ts := newTestServer(t)
	body := `{"name":"Substation","budget":100,"spent":0,"planned_months":10,"actual_months":0,"progress_percent":0,"risks":" , ,"}`

	resp, err := http.Post(ts.URL+"/v1/report", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var v report.View
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	assert.Equal(t, 1.0, v.Report.SchedulePerformanceIndex)
	assert.Equal(t, 1.0, v.Report.CostPerformanceIndex)
	assert.Empty(t, v.Risks)
}

func TestReportErrors(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantFields []string
	}{
		{
			name:       "validation",
			path:       "/v1/report?budget=-1&progress_percent=150",
			wantStatus: http.StatusBadRequest,
			wantFields: []string{metrics.FieldBudget, metrics.FieldProgress},
		},
		{
			name:       "not a number",
			path:       "/v1/report?spent=abc",
			wantStatus: http.StatusBadRequest,
			wantFields: []string{metrics.FieldSpent},
		},
		{
			name:       "zero budget",
			path:       "/v1/report?budget=0&spent=10",
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := get(t, ts, tt.path)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var er errorResponse
			require.NoError(t, json.Unmarshal(body, &er))
			assert.NotEmpty(t, er.Error)

			var got []string
			for _, f := range er.Fields {
				got = append(got, f.Field)
			}
			assert.Equal(t, tt.wantFields, got)
		})
	}
}

func TestReportPostMalformed(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Post(ts.URL+"/v1/report", "application/json", strings.NewReader(`{"budget":"lots"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestReportPDF(t *testing.T) {
	ts := newTestServer(t)
	resp, body := get(t, ts, "/v1/report.pdf")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="project_report.pdf"`, resp.Header.Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(string(body), "%PDF-"))
}

func TestIndexPage(t *testing.T) {
	ts := newTestServer(t)
	resp, body := get(t, ts, "/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	page := string(body)
	for _, want := range []string{
		"Project Report: 132kV Grid Station Expansion",
		"$600,000",
		"Budget Overview",
		"Schedule Progress",
		"Delay in material delivery",
		"/v1/report.pdf?",
	} {
		assert.Contains(t, page, want)
	}
}

func TestIndexPageFieldErrors(t *testing.T) {
	ts := newTestServer(t)
	resp, body := get(t, ts, "/?planned_months=0")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), `class="field-error"`)
	assert.NotContains(t, string(body), "/v1/report.pdf?")
}

func TestServeShutsDownOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := New(zerolog.New(zerolog.NewTestWriter(t)), Config{Defaults: model.DefaultInputs()})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
