package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// Account is a node in the chart of accounts. Group accounts aggregate their
// children and are not postable; journal lines may only reference leaves.
type Account struct {
	AccountID       string      `json:"accountID"`
	Name            string      `json:"name"`
	AccountType     AccountType `json:"accountType"`
	IsGroup         bool        `json:"isGroup"`
	ParentAccountID string      `json:"parentAccountID"` // empty for root accounts
	RelatedDriverID string      `json:"relatedDriverID"` // set on per-driver sub-accounts
	RelatedCarID    string      `json:"relatedCarID"`
	AuditFields
}
