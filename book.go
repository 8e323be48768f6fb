package budget

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
)

// AllocationRule sends a fraction of incoming money to a category.
// Percentage is a fraction: 0.25 means a quarter.
type AllocationRule struct {
	Category   string
	Percentage decimal.Decimal
}

// Book holds a set of uniquely named categories. Every method takes the
// book's lock, so a transfer between two categories of the same book is
// observed by other callers either fully applied or not at all.
// The zero value is an empty book ready for use.
type Book struct {
	mu         sync.Mutex
	categories map[string]*Category
	order      []string
}

func NewBook() *Book {
	return &Book{
		categories: make(map[string]*Category),
	}
}

func (b *Book) Add(c *Category) error {
	if c == nil {
		return ErrNilCategory
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.categories[c.name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateCategory, c.name)
	}
	if b.categories == nil {
		b.categories = make(map[string]*Category)
	}
	b.categories[c.name] = c
	b.order = append(b.order, c.name)
	return nil
}

func (b *Book) Get(name string) (*Category, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.get(name)
}

func (b *Book) get(name string) (*Category, error) {
	c, exists := b.categories[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrCategoryNotFound, name)
	}
	return c, nil
}

// Categories returns the categories in the order they were added.
func (b *Book) Categories() []*Category {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.list()
}

func (b *Book) list() []*Category {
	out := make([]*Category, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, b.categories[name])
	}
	return out
}

// Transfer moves amount between two categories of the book. It returns
// false with a nil error when the source cannot cover the amount.
func (b *Book) Transfer(amount decimal.Decimal, from, to string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	src, err := b.get(from)
	if err != nil {
		return false, err
	}
	dst, err := b.get(to)
	if err != nil {
		return false, err
	}
	return src.Transfer(amount, dst), nil
}

// Allocate splits income across categories according to rules. All rules are
// checked before the first deposit, so an error leaves the book untouched.
func (b *Book) Allocate(income decimal.Decimal, description string, rules []AllocationRule) error {
	if len(rules) < 1 {
		return ErrNoAllocationRules
	}

	totalPercentage := decimal.Zero
	for _, rule := range rules {
		totalPercentage = totalPercentage.Add(rule.Percentage)
	}
	if totalPercentage.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: %s", ErrAllocationExceeded, totalPercentage.Mul(hundred).String())
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	targets := make([]*Category, len(rules))
	for i, rule := range rules {
		c, err := b.get(rule.Category)
		if err != nil {
			return err
		}
		targets[i] = c
	}

	for i, rule := range rules {
		targets[i].Deposit(income.Mul(rule.Percentage), description)
	}
	return nil
}

func (b *Book) SpendChart() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return SpendChart(b.list())
}
