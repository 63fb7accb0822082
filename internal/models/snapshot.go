package models

// FinancialSnapshot is the complete set of a user's financial line items at
// a point in time. Any collection may be empty or absent; a nil slice is
// equivalent to an empty one. Engines treat snapshots as immutable input.
type FinancialSnapshot struct {
	Incomes     []FinancialLineItem `json:"incomes,omitempty"`
	Expenses    []FinancialLineItem `json:"expenses,omitempty"`
	Savings     []FinancialLineItem `json:"savings,omitempty"`
	Investments []FinancialLineItem `json:"investments,omitempty"`
	Debts       []FinancialLineItem `json:"debts,omitempty"`
	Assets      []FinancialLineItem `json:"assets,omitempty"`
	Liabilities []FinancialLineItem `json:"liabilities,omitempty"`
}

// SnapshotRecord is a persisted snapshot with storage metadata.
type SnapshotRecord struct {
	ID        int64             `json:"id"`
	UserID    int64             `json:"user_id"`
	Snapshot  FinancialSnapshot `json:"snapshot"`
	CreatedAt string            `json:"created_at"`
	UpdatedAt string            `json:"updated_at"`
}
