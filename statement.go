package budget

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const totalPrefix = "Total: "

// Statement is a Category rendering read back into values. Descriptions
// keep whatever survived the 23 character truncation.
//
// A name shorter than the 30 rune header is recovered by trimming the '*'
// padding, so leading or trailing '*' in the name itself are lost: "*Star*"
// and "Star" render the same header and both parse back as "Star".
type Statement struct {
	Name    string
	Entries []Transaction
	Total   decimal.Decimal
}

// ParseStatement parses the output of (*Category).String.
func ParseStatement(text string) (Statement, error) {
	lines := strings.Split(text, "\n")
	if len(lines) < 2 {
		return Statement{}, fmt.Errorf("%w: want header and total lines, got %d lines", ErrMalformedStatement, len(lines))
	}

	var st Statement
	header := lines[0]
	switch n := len([]rune(header)); {
	case n < headerWidth:
		return Statement{}, fmt.Errorf("%w: bad header %q", ErrMalformedStatement, header)
	case n > headerWidth:
		// names wider than the header are written without padding
		st.Name = header
	default:
		st.Name = strings.Trim(header, "*")
	}

	last := lines[len(lines)-1]
	if !strings.HasPrefix(last, totalPrefix) {
		return Statement{}, fmt.Errorf("%w: bad total line %q", ErrMalformedStatement, last)
	}
	total, err := decimal.NewFromString(strings.TrimPrefix(last, totalPrefix))
	if err != nil {
		return Statement{}, fmt.Errorf("%w: total: %v", ErrMalformedStatement, err)
	}
	st.Total = total

	for i, line := range lines[1 : len(lines)-1] {
		r := []rune(line)
		if len(r) < descriptionWidth+1 {
			return Statement{}, fmt.Errorf("%w: entry %d too short: %q", ErrMalformedStatement, i, line)
		}
		amount, err := decimal.NewFromString(strings.TrimSpace(string(r[descriptionWidth:])))
		if err != nil {
			return Statement{}, fmt.Errorf("%w: entry %d amount: %v", ErrMalformedStatement, i, err)
		}
		st.Entries = append(st.Entries, Transaction{
			Amount:      amount,
			Description: strings.TrimRight(string(r[:descriptionWidth]), " "),
		})
	}
	return st, nil
}

// Balance sums the parsed entries.
func (s Statement) Balance() decimal.Decimal {
	balance := decimal.Zero
	for _, e := range s.Entries {
		balance = balance.Add(e.Amount)
	}
	return balance
}
