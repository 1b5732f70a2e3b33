package portfolio

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/hnakamura/kabuto/internal/models"
)

// sectorColors mirrors the palette the web client uses for its pie chart.
var sectorColors = map[string]string{
	"Technology":             "8b5cf6",
	"Healthcare":             "06b6d4",
	"Finance":                "3b82f6",
	"Consumer Discretionary": "ec4899",
	"Consumer Staples":       "22c55e",
	"Energy":                 "f59e0b",
	"Materials":              "f97316",
	"Industrials":            "64748b",
	"Utilities":              "14b8a6",
	"Real Estate":            "a855f7",
	"Communication Services": "6366f1",
	"Cryptocurrency":         "eab308",
	"ETF":                    "0ea5e9",
	"Other":                  "71717a",
}

// RenderSectorChart renders the sector breakdown as a PNG pie chart.
// Returns raw PNG bytes.
func RenderSectorChart(summary *models.PortfolioSummary) ([]byte, error) {
	if summary == nil || summary.TotalValue <= 0 {
		return nil, fmt.Errorf("nothing to chart: portfolio has no value")
	}

	values := make([]chart.Value, 0, len(summary.SectorBreakdown))
	for _, sb := range summary.SectorBreakdown {
		if sb.Value <= 0 {
			continue
		}
		v := chart.Value{
			Label: fmt.Sprintf("%s %.1f%%", sb.Sector, sb.Percentage),
			Value: sb.Value,
		}
		if hex, ok := sectorColors[sb.Sector]; ok {
			v.Style = chart.Style{FillColor: drawing.ColorFromHex(hex)}
		}
		values = append(values, v)
	}

	graph := chart.PieChart{
		Title:  "Sector Allocation",
		Width:  600,
		Height: 600,
		Values: values,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}
