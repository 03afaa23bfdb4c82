package reporter

import (
	"fmt"

	charts "github.com/vicanso/go-charts/v2"
)

// renderStatic renders a chart to PNG or SVG bytes
func renderStatic(c Chart, format string) ([]byte, error) {
	outputType := charts.PNGTypeOption()
	if format == "svg" {
		outputType = charts.SVGTypeOption()
	}

	var (
		painter *charts.Painter
		err     error
	)

	switch c.Kind {
	case KindPie:
		painter, err = charts.PieRender(
			c.Values,
			outputType,
			charts.TitleTextOptionFunc(c.Title),
			charts.LegendLabelsOptionFunc(c.Labels),
		)
	case KindHorizontalBar:
		painter, err = charts.HorizontalBarRender(
			[][]float64{c.Values},
			outputType,
			charts.TitleTextOptionFunc(c.Title),
			charts.YAxisDataOptionFunc(c.Labels),
		)
	case KindVerticalBar:
		painter, err = charts.BarRender(
			[][]float64{c.Values},
			outputType,
			charts.TitleTextOptionFunc(c.Title),
			charts.XAxisDataOptionFunc(c.Labels),
		)
	case KindLine:
		painter, err = charts.LineRender(
			[][]float64{c.Values},
			outputType,
			charts.TitleTextOptionFunc(c.Title),
			charts.XAxisDataOptionFunc(c.Labels),
		)
	default:
		return nil, fmt.Errorf("unknown chart kind %q", c.Kind)
	}
	if err != nil {
		return nil, err
	}

	return painter.Bytes()
}
