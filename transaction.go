package budget

import "github.com/shopspring/decimal"

// Transaction is a single ledger record. Deposits carry a positive amount,
// withdrawals and outgoing transfers a negative one.
type Transaction struct {
	Amount      decimal.Decimal
	Description string
}

func NewIncome(amount decimal.Decimal, description string) Transaction {
	return Transaction{
		Amount:      amount,
		Description: description,
	}
}

func NewExpense(amount decimal.Decimal, description string) Transaction {
	return Transaction{
		Amount:      amount.Neg(),
		Description: description,
	}
}

// IsExpense reports whether the record took money out of the category.
func (t Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}
