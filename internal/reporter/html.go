package reporter

import (
	"fmt"
	"io"

	echarts "github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// renderHTML renders a chart as a self-contained interactive HTML document
func renderHTML(c Chart, w io.Writer) error {
	switch c.Kind {
	case KindPie:
		pie := echarts.NewPie()
		pie.SetGlobalOptions(echarts.WithTitleOpts(opts.Title{Title: c.Title}))
		items := make([]opts.PieData, 0, len(c.Values))
		for i, v := range c.Values {
			items = append(items, opts.PieData{Name: c.Labels[i], Value: v})
		}
		pie.AddSeries(c.Title, items)
		return pie.Render(w)

	case KindHorizontalBar, KindVerticalBar:
		bar := echarts.NewBar()
		bar.SetGlobalOptions(echarts.WithTitleOpts(opts.Title{Title: c.Title}))
		items := make([]opts.BarData, 0, len(c.Values))
		for _, v := range c.Values {
			items = append(items, opts.BarData{Value: v})
		}
		bar.SetXAxis(c.Labels).AddSeries(c.Title, items)
		if c.Kind == KindHorizontalBar {
			bar.XYReversal()
		}
		return bar.Render(w)

	case KindLine:
		line := echarts.NewLine()
		line.SetGlobalOptions(echarts.WithTitleOpts(opts.Title{Title: c.Title}))
		items := make([]opts.LineData, 0, len(c.Values))
		for _, v := range c.Values {
			items = append(items, opts.LineData{Value: v})
		}
		line.SetXAxis(c.Labels).AddSeries(c.Title, items)
		return line.Render(w)

	default:
		return fmt.Errorf("unknown chart kind %q", c.Kind)
	}
}
