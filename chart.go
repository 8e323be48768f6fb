package budget

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const chartTitle = "Percentage spent by category"

var hundred = decimal.NewFromInt(100)

// Spender is anything the spend chart can read: a name and a ledger.
type Spender interface {
	Name() string
	Ledger() []Transaction
}

// Buckets returns each category's share of total spending, rounded down to
// a multiple of 10. When nothing was spent at all every bucket is 0.
func Buckets[C Spender](categories []C) []int {
	spends := make([]decimal.Decimal, len(categories))
	total := decimal.Zero
	for i, c := range categories {
		spends[i] = spent(c.Ledger())
		total = total.Add(spends[i])
	}

	buckets := make([]int, len(categories))
	if total.IsZero() {
		return buckets
	}
	for i, s := range spends {
		pct, _ := s.Mul(hundred).QuoRem(total, 0)
		buckets[i] = int(pct.IntPart()) / 10 * 10
	}
	return buckets
}

// SpendChart renders a vertical bar chart of withdrawal percentages with
// category names written downwards under their columns.
func SpendChart[C Spender](categories []C) string {
	buckets := Buckets(categories)

	var sb strings.Builder
	sb.WriteString(chartTitle)
	sb.WriteByte('\n')

	for threshold := 100; threshold >= 0; threshold -= 10 {
		sb.WriteString(padLeft(strconv.Itoa(threshold), 3))
		sb.WriteString("| ")
		for _, b := range buckets {
			if b >= threshold {
				sb.WriteString("o  ")
			} else {
				sb.WriteString("   ")
			}
		}
		sb.WriteByte('\n')
	}

	sb.WriteString("    ")
	sb.WriteString(strings.Repeat("-", len(categories)*3+1))
	sb.WriteByte('\n')

	names := make([][]rune, len(categories))
	longest := 0
	for i, c := range categories {
		names[i] = []rune(c.Name())
		longest = max(longest, len(names[i]))
	}
	for row := 0; row < longest; row++ {
		sb.WriteString("     ")
		for _, name := range names {
			if row < len(name) {
				sb.WriteRune(name[row])
				sb.WriteString("  ")
			} else {
				sb.WriteString("   ")
			}
		}
		if row < longest-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
