package charts

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const (
	pageWidth  = "800px"
	pageHeight = "500px"
)

type renderer interface {
	Render(w io.Writer) error
}

func toHTML(r renderer) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return buf.Bytes(), nil
}

func globalOpts(title, subtitle, xName, yName, xType string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     pageWidth,
			Height:    pageHeight,
		}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: xName, Type: xType}),
		charts.WithYAxisOpts(opts.YAxis{Name: yName, Type: "value"}),
	}
}

// RenderLine renders a line chart with a numeric cycle axis.
func RenderLine(spec LineSpec) ([]byte, error) {
	line := charts.NewLine()
	line.SetGlobalOptions(globalOpts(spec.Title, spec.Subtitle, spec.XAxis, spec.YAxis, "value")...)

	var marks []opts.MarkPointNameCoordItem
	for _, m := range spec.Marks {
		marks = append(marks, opts.MarkPointNameCoordItem{
			Name:       m.Name,
			Coordinate: []interface{}{m.X, m.Y},
		})
	}

	for i, s := range spec.Series {
		data := make([]opts.LineData, 0, len(s.Points))
		for _, p := range s.Points {
			data = append(data, opts.LineData{Value: []interface{}{p.X, p.Y}})
		}
		style := opts.LineStyle{Color: s.Color}
		if s.Dashed {
			style.Type = "dashed"
		}
		seriesOpts := []charts.SeriesOpts{
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(s.Markers)}),
			charts.WithLineStyleOpts(style),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}),
		}
		// marks annotate the primary series only
		if i == 0 && len(marks) > 0 {
			seriesOpts = append(seriesOpts, charts.WithMarkPointNameCoordItemOpts(marks...))
		}
		line.AddSeries(s.Name, data, seriesOpts...)
	}

	return toHTML(line)
}

// RenderHistogram renders bins as adjacent bars labelled by range.
func RenderHistogram(h Histogram) ([]byte, error) {
	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOpts(h.Title, "", h.XAxis, h.YAxis, "category")...)

	labels := make([]string, 0, len(h.Bins))
	data := make([]opts.BarData, 0, len(h.Bins))
	for _, b := range h.Bins {
		labels = append(labels, b.Label())
		data = append(data, opts.BarData{Value: b.Count})
	}
	bar.SetXAxis(labels).AddSeries(h.YAxis, data,
		charts.WithBarChartOpts(opts.BarChart{BarCategoryGap: "0%"}),
	)
	return toHTML(bar)
}
