package budget

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	headerWidth      = 30
	descriptionWidth = 23
	amountWidth      = 7
)

// Category is a named budget bucket backed by an append-only ledger.
// A Category is not safe for concurrent use; share it through a Book.
type Category struct {
	name   string
	ledger []Transaction
}

func NewCategory(name string) *Category {
	return &Category{name: name}
}

func (c *Category) Name() string {
	return c.name
}

// Ledger returns a copy of the records in insertion order.
func (c *Category) Ledger() []Transaction {
	ledger := make([]Transaction, len(c.ledger))
	copy(ledger, c.ledger)
	return ledger
}

// Deposit appends amount as-is. Negative amounts are accepted and simply
// lower the balance.
func (c *Category) Deposit(amount decimal.Decimal, description string) {
	c.ledger = append(c.ledger, NewIncome(amount, description))
}

// Withdraw appends -amount if the category can cover it.
func (c *Category) Withdraw(amount decimal.Decimal, description string) bool {
	if !c.CheckFunds(amount) {
		return false
	}
	c.ledger = append(c.ledger, NewExpense(amount, description))
	return true
}

func (c *Category) Balance() decimal.Decimal {
	balance := decimal.Zero
	for _, t := range c.ledger {
		balance = balance.Add(t.Amount)
	}
	return balance
}

// CheckFunds reports whether amount does not exceed the current balance.
func (c *Category) CheckFunds(amount decimal.Decimal) bool {
	return amount.LessThanOrEqual(c.Balance())
}

// Transfer moves amount from c to destination. It returns false without
// touching either ledger when c cannot cover amount or destination is nil.
func (c *Category) Transfer(amount decimal.Decimal, destination *Category) bool {
	if destination == nil || !c.CheckFunds(amount) {
		return false
	}
	c.Withdraw(amount, "Transfer to "+destination.name)
	destination.Deposit(amount, "Transfer from "+c.name)
	return true
}

// Spent sums the absolute value of every negative record.
func (c *Category) Spent() decimal.Decimal {
	return spent(c.ledger)
}

func spent(ledger []Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range ledger {
		if t.IsExpense() {
			total = total.Add(t.Amount.Abs())
		}
	}
	return total
}

// String renders the fixed-width statement:
//
//	*************Food*************
//	initial deposit        1000.00
//	groceries               -10.15
//	Total: 989.85
//
// Line breaks inside a description are written as spaces so every record
// stays on one line.
func (c *Category) String() string {
	var sb strings.Builder
	sb.WriteString(center(c.name, headerWidth, '*'))
	sb.WriteByte('\n')
	for _, t := range c.ledger {
		sb.WriteString(padRight(truncate(singleLine(t.Description), descriptionWidth), descriptionWidth))
		sb.WriteString(padLeft(t.Amount.StringFixed(2), amountWidth))
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "Total: %s", c.Balance().StringFixed(2))
	return sb.String()
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

func singleLine(s string) string {
	return lineBreaks.Replace(s)
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width])
}

func padRight(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

func padLeft(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return strings.Repeat(" ", width-n) + s
}

// center pads s with fill on both sides; an odd remainder goes to the right.
func center(s string, width int, fill rune) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	left := (width - n) / 2
	right := width - n - left
	return strings.Repeat(string(fill), left) + s + strings.Repeat(string(fill), right)
}
