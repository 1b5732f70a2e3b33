package models

// InstitutionalHolder is one row in a ticker's institutional-ownership
// table.
type InstitutionalHolder struct {
	Holder           string  `json:"holder"`
	Shares           int64   `json:"shares"`
	DateReported     string  `json:"dateReported"`
	Change           int64   `json:"change"`
	ChangePercentage float64 `json:"changePercentage"`
	Value            float64 `json:"value"`
}
