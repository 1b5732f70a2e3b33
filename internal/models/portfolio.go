package models

// PortfolioSummary is a pure projection of the current asset set, expressed
// entirely in the reporting currency. It is recomputed on every read and
// never persisted.
type PortfolioSummary struct {
	TotalValue       float64           `json:"total_value"`
	TotalCost        float64           `json:"total_cost"`
	TotalGain        float64           `json:"total_gain"`
	TotalGainPercent float64           `json:"total_gain_percent"`
	AssetCount       int               `json:"asset_count"`
	TopPerformer     *AssetPerformance `json:"top_performer,omitempty"`
	WorstPerformer   *AssetPerformance `json:"worst_performer,omitempty"`
	SectorBreakdown  []SectorBreakdown `json:"sector_breakdown"`
	Holdings         []AssetPerformance `json:"holdings"`
}

// AssetPerformance is one asset's valuation in the reporting currency.
type AssetPerformance struct {
	Asset       Asset   `json:"asset"`
	Value       float64 `json:"value"`
	Cost        float64 `json:"cost"`
	Gain        float64 `json:"gain"`
	GainPercent float64 `json:"gain_percent"`
	WeightPct   float64 `json:"weight_pct"`
}

// SectorBreakdown is one sector's share of the portfolio, sorted for
// display by descending value (ties by label).
type SectorBreakdown struct {
	Sector     string  `json:"sector"`
	Value      float64 `json:"value"`
	Cost       float64 `json:"cost"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}
