package models

// PortfolioCategory is one slice of the portfolio breakdown.
// Percentage is the period performance of the slice, Allocation its share of
// the total in percent.
type PortfolioCategory struct {
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
	Allocation float64 `json:"allocation"`
}

// Portfolio is the full position breakdown returned by the portfolio endpoint.
type Portfolio struct {
	TotalValue float64             `json:"totalValue"`
	Categories []PortfolioCategory `json:"categories"`
}

// CategorySum adds up the category values. It can drift from TotalValue when
// the backend reports positions that are not categorized.
func (p Portfolio) CategorySum() float64 {
	var sum float64
	for _, c := range p.Categories {
		sum += c.Value
	}
	return sum
}

// AllocationOf returns the share of the total held by a category, in percent.
// Returns 0 for an empty portfolio.
func (p Portfolio) AllocationOf(name string) float64 {
	if p.TotalValue == 0 {
		return 0
	}
	for _, c := range p.Categories {
		if c.Name == name {
			return c.Value / p.TotalValue * 100
		}
	}
	return 0
}
