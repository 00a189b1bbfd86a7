package budget

// Budget is the API response model for a budget row.
type Budget struct {
	ID           int64  `json:"id" doc:"Budget id"`
	CategoryID   int64  `json:"category_id" doc:"Category id"`
	Amount       string `json:"amount" doc:"Decimal allocation for the year"`
	Year         int    `json:"year" doc:"Budget year"`
	IsLocked     bool   `json:"is_locked" doc:"Circuit-breaker flag"`
	CategoryName string `json:"category_name,omitempty" doc:"Joined category name"`
}

// Summary is the aggregate attached to a yearly budget listing. Fields other
// than TotalAnnualBudget are reserved for the dashboard and stay zero.
type Summary struct {
	TotalAnnualBudget string `json:"TotalAnnualBudget" doc:"Sum of all allocations for the year"`
	HighestAllocation string `json:"HighestAllocation" doc:"Reserved, currently 0"`
	SavingsTarget     string `json:"SavingsTarget" doc:"Reserved, currently 0"`
	RemainingBudget   string `json:"RemainingBudget" doc:"Reserved, currently 0"`
}
