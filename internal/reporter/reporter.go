package reporter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bonnefeteyvette/superstore/internal/config"
	apperrors "github.com/bonnefeteyvette/superstore/internal/errors"
	"github.com/bonnefeteyvette/superstore/internal/stats"
)

// Kind selects the chart rendering for one aggregation view
type Kind string

const (
	KindPie           Kind = "pie"
	KindHorizontalBar Kind = "horizontal_bar"
	KindVerticalBar   Kind = "vertical_bar"
	KindLine          Kind = "line"
)

// Chart is one already-aggregated view ready to render. The reporter
// never aggregates; Labels and Values arrive pre-computed and ordered.
type Chart struct {
	Name   string // file stem, e.g. "sales_by_category"
	Title  string
	Kind   Kind
	Labels []string
	Values []float64
}

// Reporter renders charts into the results directory, each in three
// redundant forms: PNG, SVG and an interactive HTML document.
type Reporter struct {
	paths  *config.Paths
	logger *slog.Logger
}

// New creates a reporter bound to the path layout
func New(paths *config.Paths, logger *slog.Logger) *Reporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reporter{paths: paths, logger: logger}
}

// Render emits one chart as PNG, SVG and HTML. Filenames are deterministic
// from the chart name. A write failure is fatal for that artifact and the
// ones after it; artifacts already written stay on disk. The returned
// slice lists every artifact successfully written.
func (r *Reporter) Render(ctx context.Context, chart Chart) ([]string, error) {
	if len(chart.Labels) != len(chart.Values) {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("chart %s: %d labels for %d values", chart.Name, len(chart.Labels), len(chart.Values)))
	}

	var written []string

	for _, format := range []string{"png", "svg"} {
		data, err := renderStatic(chart, format)
		if err != nil {
			return written, apperrors.NewStorageError(
				fmt.Sprintf("failed to render %s as %s", chart.Name, format), err)
		}
		path := r.paths.GetResultPath(chart.Name + "." + format)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return written, apperrors.NewStorageError(
				fmt.Sprintf("failed to write %s", path), err)
		}
		written = append(written, path)
	}

	htmlPath := r.paths.GetResultPath(chart.Name + ".html")
	file, err := os.Create(htmlPath)
	if err != nil {
		return written, apperrors.NewStorageError(
			fmt.Sprintf("failed to create %s", htmlPath), err)
	}
	if err := renderHTML(chart, file); err != nil {
		file.Close()
		return written, apperrors.NewStorageError(
			fmt.Sprintf("failed to render %s as html", chart.Name), err)
	}
	if err := file.Close(); err != nil {
		return written, apperrors.NewStorageError(
			fmt.Sprintf("failed to write %s", htmlPath), err)
	}
	written = append(written, htmlPath)

	r.logger.InfoContext(ctx, "chart rendered",
		slog.String("chart", chart.Name),
		slog.String("kind", string(chart.Kind)),
		slog.String("dir", filepath.Dir(htmlPath)))

	return written, nil
}

// RenderAll renders the fixed chart set from the aggregation bundle
func (r *Reporter) RenderAll(ctx context.Context, bundle *stats.Bundle) ([]string, error) {
	charts := []Chart{
		fromGroups("sales_by_category", "Sales by Category", KindPie, bundle.SalesByCategory, sumOf),
		fromGroups("sales_by_sub_category", "Sales by Sub-Category", KindHorizontalBar, bundle.SalesBySubCategory, sumOf),
		fromGroups("sales_by_region", "Sales by Region", KindHorizontalBar, bundle.SalesByRegion, sumOf),
		fromGroups("orders_by_ship_mode", "Orders by Ship Mode", KindVerticalBar, bundle.CountByShipMode, countOf),
		fromGroups("orders_by_segment", "Orders by Segment", KindVerticalBar, bundle.CountBySegment, countOf),
		fromMonths("monthly_sales", "Monthly Sales", bundle.MonthlySales),
	}

	var written []string
	for _, chart := range charts {
		paths, err := r.Render(ctx, chart)
		written = append(written, paths...)
		if err != nil {
			return written, err
		}
	}

	r.logger.InfoContext(ctx, "all charts rendered",
		slog.Int("charts", len(charts)),
		slog.Int("artifacts", len(written)))

	return written, nil
}

func sumOf(g stats.Group) float64   { return g.Sum }
func countOf(g stats.Group) float64 { return float64(g.Count) }

func fromGroups(name, title string, kind Kind, groups []stats.Group, value func(stats.Group) float64) Chart {
	chart := Chart{Name: name, Title: title, Kind: kind}
	for _, g := range groups {
		chart.Labels = append(chart.Labels, g.Key)
		chart.Values = append(chart.Values, value(g))
	}
	return chart
}

func fromMonths(name, title string, months []stats.MonthTotal) Chart {
	chart := Chart{Name: name, Title: title, Kind: KindLine}
	for _, m := range months {
		chart.Labels = append(chart.Labels, m.Month)
		chart.Values = append(chart.Values, m.Total)
	}
	return chart
}
