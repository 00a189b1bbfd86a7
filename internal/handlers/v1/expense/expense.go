package expense

// dateLayout is the calendar-date wire format for expense dates.
const dateLayout = "2006-01-02"

// Expense is the API response model for an expense.
type Expense struct {
	ID           int64  `json:"id" doc:"Expense id"`
	Amount       string `json:"amount" doc:"Decimal amount"`
	ExpenseDate  string `json:"expense_date" doc:"Calendar date, YYYY-MM-DD"`
	CategoryID   int64  `json:"category_id" doc:"Category id"`
	Remarks      string `json:"remarks,omitempty" doc:"Optional free text"`
	CategoryName string `json:"category_name" doc:"Joined category name"`
	CreatedAt    string `json:"created_at" doc:"RFC3339 creation time"`
}
