// Package portfolio computes aggregate valuation over a set of assets.
package portfolio

import (
	"sort"

	"github.com/hnakamura/kabuto/internal/fx"
	"github.com/hnakamura/kabuto/internal/models"
)

// Summarize computes the portfolio summary for the given assets, with all
// monetary figures normalized into the reporting currency. It is a pure
// function of its inputs and is recomputed fresh on every call.
//
// The only error is a rate-table miss on a persisted asset's currency; that
// is a data-integrity fault and is propagated, never skipped.
func Summarize(assets []models.Asset, table fx.Table) (*models.PortfolioSummary, error) {
	summary := &models.PortfolioSummary{
		AssetCount:      len(assets),
		SectorBreakdown: []models.SectorBreakdown{},
		Holdings:        []models.AssetPerformance{},
	}

	sectors := make(map[string]*models.SectorBreakdown)

	for _, a := range assets {
		value, err := table.Normalize(a.Quantity*a.CurrentPrice, a.Currency)
		if err != nil {
			return nil, err
		}
		cost, err := table.Normalize(a.Quantity*a.AverageCost, a.Currency)
		if err != nil {
			return nil, err
		}

		perf := models.AssetPerformance{
			Asset: a,
			Value: value,
			Cost:  cost,
			Gain:  value - cost,
		}
		// AverageCost > 0 is enforced at input time, so cost cannot be
		// zero for valid data; treat it as flat rather than dividing.
		if cost > 0 {
			perf.GainPercent = (value - cost) / cost * 100
		}
		summary.Holdings = append(summary.Holdings, perf)

		sb, ok := sectors[a.Sector]
		if !ok {
			sb = &models.SectorBreakdown{Sector: a.Sector}
			sectors[a.Sector] = sb
		}
		sb.Value += value
		sb.Cost += cost
		sb.Count++

		summary.TotalValue += value
		summary.TotalCost += cost
	}

	summary.TotalGain = summary.TotalValue - summary.TotalCost
	if summary.TotalCost > 0 {
		summary.TotalGainPercent = summary.TotalGain / summary.TotalCost * 100
	}

	for i := range summary.Holdings {
		if summary.TotalValue > 0 {
			summary.Holdings[i].WeightPct = summary.Holdings[i].Value / summary.TotalValue * 100
		}
	}

	// Ties go to the first asset in input order: strict comparisons only.
	for i := range summary.Holdings {
		h := &summary.Holdings[i]
		if summary.TopPerformer == nil || h.GainPercent > summary.TopPerformer.GainPercent {
			summary.TopPerformer = h
		}
		if summary.WorstPerformer == nil || h.GainPercent < summary.WorstPerformer.GainPercent {
			summary.WorstPerformer = h
		}
	}

	for _, sb := range sectors {
		if summary.TotalValue > 0 {
			sb.Percentage = sb.Value / summary.TotalValue * 100
		}
		summary.SectorBreakdown = append(summary.SectorBreakdown, *sb)
	}
	sort.Slice(summary.SectorBreakdown, func(i, j int) bool {
		a, b := summary.SectorBreakdown[i], summary.SectorBreakdown[j]
		if a.Value != b.Value {
			return a.Value > b.Value
		}
		return a.Sector < b.Sector
	})

	return summary, nil
}
