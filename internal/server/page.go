package server

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/theirongolddev/pdash/internal/cli"
	"github.com/theirongolddev/pdash/internal/metrics"
	"github.com/theirongolddev/pdash/internal/model"
	"github.com/theirongolddev/pdash/internal/report"

	"github.com/rs/zerolog"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTmpl = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// barColors maps chart color roles to CSS colors.
var barColors = map[string]string{
	"green":  "#66800b",
	"red":    "#af3029",
	"blue":   "#205ea6",
	"orange": "#bc5215",
}

type pageBar struct {
	Label  string
	Value  string
	Height float64 // percent of the chart height
	Color  string
}

type pageChart struct {
	Title  string
	YLabel string
	Bars   []pageBar
}

type pageData struct {
	Form        map[string]string
	FieldErrors map[string]string
	Error       string
	View        *report.View
	Charts      []pageChart
	PDFLink     string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	data := pageData{
		Form:        encodeForm(s.cfg.Defaults),
		FieldErrors: map[string]string{},
	}
	for f, v := range queryValues(q) {
		data.Form[f] = v
	}

	status := http.StatusOK
	v, err := s.pageView(queryValues(q))
	if err != nil {
		status = errorStatus(err)
		data.Error = err.Error()
		var ve *metrics.ValidationError
		if errors.As(err, &ve) {
			data.Error = "Some inputs need attention."
			for _, fe := range ve.Fields {
				data.FieldErrors[fe.Field] = fe.Message
			}
		}
	} else {
		data.View = &v
		data.Charts = []pageChart{chartData(v.BudgetChart, cli.FormatCurrency), chartData(v.ScheduleChart, cli.FormatPercent)}
		data.PDFLink = "/v1/report.pdf?" + encodeInputs(v.Report.Inputs).Encode()
	}

	var buf bytes.Buffer
	if err := indexTmpl.Execute(&buf, data); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to render page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (s *Server) pageView(values map[string]string) (report.View, error) {
	in, err := metrics.ParseInputs(values, s.cfg.Defaults)
	if err != nil {
		return report.View{}, err
	}
	return report.Generate(in)
}

func encodeForm(in model.ProjectInputs) map[string]string {
	q := encodeInputs(in)
	form := make(map[string]string, len(q))
	for k := range q {
		form[k] = q.Get(k)
	}
	return form
}

func chartData(series report.ChartSeries, format func(float64) string) pageChart {
	peak := series.Max()
	c := pageChart{Title: series.Title, YLabel: series.YLabel}
	for _, p := range series.Points {
		h := 0.0
		if peak > 0 {
			h = p.Value / peak * 100
		}
		c.Bars = append(c.Bars, pageBar{
			Label:  p.Label,
			Value:  format(p.Value),
			Height: h,
			Color:  barColors[p.Color],
		})
	}
	return c
}
