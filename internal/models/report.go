package models

// Performance summarizes portfolio returns for a report period.
type Performance struct {
	TotalReturn   float64 `json:"totalReturn"`
	MonthlyReturn float64 `json:"monthlyReturn"`
	BestAsset     string  `json:"bestAsset"`
	WorstAsset    string  `json:"worstAsset"`
}

// Allocation carries rebalancing advice for a report period.
type Allocation struct {
	Recommended bool     `json:"recommended"`
	Suggestions []string `json:"suggestions"`
}

// Reports is the reports endpoint payload.
type Reports struct {
	Performance Performance `json:"performance"`
	Allocation  Allocation  `json:"allocation"`
}
