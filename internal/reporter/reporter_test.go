package reporter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bonnefeteyvette/superstore/internal/config"
	"github.com/bonnefeteyvette/superstore/internal/stats"
)

func setupReporter(t *testing.T) (*Reporter, *config.Paths) {
	t.Helper()
	paths := config.GetPathsFrom(t.TempDir())
	require.NoError(t, paths.EnsureDirectories())
	return New(paths, nil), paths
}

func sampleChart(kind Kind) Chart {
	return Chart{
		Name:   "sales_by_category",
		Title:  "Sales by Category",
		Kind:   kind,
		Labels: []string{"Furniture", "Office Supplies", "Technology"},
		Values: []float64{741999.79, 719047.03, 836154.03},
	}
}

func assertArtifact(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoErrorf(t, err, "artifact %s missing", path)
	assert.Positivef(t, info.Size(), "artifact %s is empty", path)
}

func TestRender_AllKinds(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
	}{
		{"pie", KindPie},
		{"horizontal bar", KindHorizontalBar},
		{"vertical bar", KindVerticalBar},
		{"line", KindLine},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reporter, paths := setupReporter(t)

			written, err := reporter.Render(context.Background(), sampleChart(tt.kind))
			require.NoError(t, err)
			require.Len(t, written, 3)

			// One raster, one vector, one interactive document with
			// deterministic names
			assertArtifact(t, paths.GetResultPath("sales_by_category.png"))
			assertArtifact(t, paths.GetResultPath("sales_by_category.svg"))
			assertArtifact(t, paths.GetResultPath("sales_by_category.html"))
		})
	}
}

func TestRender_LabelValueMismatch(t *testing.T) {
	reporter, _ := setupReporter(t)

	chart := sampleChart(KindPie)
	chart.Values = chart.Values[:1]

	_, err := reporter.Render(context.Background(), chart)
	require.Error(t, err)
}

func TestRender_Deterministic(t *testing.T) {
	reporter, paths := setupReporter(t)
	ctx := context.Background()

	_, err := reporter.Render(ctx, sampleChart(KindPie))
	require.NoError(t, err)
	first, err := os.ReadFile(paths.GetResultPath("sales_by_category.svg"))
	require.NoError(t, err)

	_, err = reporter.Render(ctx, sampleChart(KindPie))
	require.NoError(t, err)
	second, err := os.ReadFile(paths.GetResultPath("sales_by_category.svg"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRenderAll(t *testing.T) {
	reporter, paths := setupReporter(t)

	bundle := &stats.Bundle{
		SalesByCategory: []stats.Group{
			{Key: "Technology", Count: 2, Sum: 500},
			{Key: "Furniture", Count: 1, Sum: 350},
		},
		SalesBySubCategory: []stats.Group{
			{Key: "Phones", Count: 2, Sum: 500},
			{Key: "Chairs", Count: 1, Sum: 350},
		},
		SalesByRegion: []stats.Group{
			{Key: "West", Count: 3, Sum: 850},
		},
		CountByShipMode: []stats.Group{
			{Key: "Second Class", Count: 2},
			{Key: "First Class", Count: 1},
		},
		CountBySegment: []stats.Group{
			{Key: "Consumer", Count: 3},
		},
		MonthlySales: []stats.MonthTotal{
			{Month: "January", Ordinal: 1, Total: 500},
			{Month: "March", Ordinal: 3, Total: 350},
		},
	}

	written, err := reporter.RenderAll(context.Background(), bundle)
	require.NoError(t, err)
	assert.Len(t, written, 6*3)

	for _, stem := range []string{
		"sales_by_category", "sales_by_sub_category", "sales_by_region",
		"orders_by_ship_mode", "orders_by_segment", "monthly_sales",
	} {
		for _, ext := range []string{".png", ".svg", ".html"} {
			assertArtifact(t, paths.GetResultPath(stem+ext))
		}
	}
}

func TestRenderAll_FailsWhenResultsDirMissing(t *testing.T) {
	paths := config.GetPathsFrom(filepath.Join(t.TempDir(), "missing"))
	// Results directory never created: every write fails
	reporter := New(paths, nil)

	bundle := &stats.Bundle{
		SalesByCategory: []stats.Group{{Key: "Technology", Sum: 500}},
	}

	_, err := reporter.RenderAll(context.Background(), bundle)
	require.Error(t, err)
}
