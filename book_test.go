package budget

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBook(t *testing.T, names ...string) *Book {
	t.Helper()
	b := NewBook()
	for _, name := range names {
		require.NoError(t, b.Add(NewCategory(name)))
	}
	return b
}

func TestBook_AddAndGet(t *testing.T) {
	b := newTestBook(t, "Food", "Clothing")

	c, err := b.Get("Clothing")
	require.NoError(t, err)
	assert.Equal(t, "Clothing", c.Name())

	_, err = b.Get("Auto")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestBook_AddDuplicate(t *testing.T) {
	b := newTestBook(t, "Food")

	assert.ErrorIs(t, b.Add(NewCategory("Food")), ErrDuplicateCategory)
	assert.ErrorIs(t, b.Add(nil), ErrNilCategory)
	assert.Len(t, b.Categories(), 1)
}

func TestBook_CategoriesInOrder(t *testing.T) {
	b := newTestBook(t, "Food", "Entertainment", "Business")

	var names []string
	for _, c := range b.Categories() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"Food", "Entertainment", "Business"}, names)
}

func TestBook_Transfer(t *testing.T) {
	b := newTestBook(t, "Food", "Clothing")
	food, _ := b.Get("Food")
	clothing, _ := b.Get("Clothing")
	food.Deposit(dec("100"), "deposit")

	ok, err := b.Transfer(dec("40"), "Food", "Clothing")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, food.Balance().Equal(dec("60")))
	assert.True(t, clothing.Balance().Equal(dec("40")))

	ok, err = b.Transfer(dec("500"), "Food", "Clothing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, food.Balance().Equal(dec("60")))
}

func TestBook_TransferUnknownCategory(t *testing.T) {
	b := newTestBook(t, "Food")
	food, _ := b.Get("Food")
	food.Deposit(dec("100"), "deposit")

	ok, err := b.Transfer(dec("10"), "Food", "Auto")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
	assert.False(t, ok)
	assert.Len(t, food.Ledger(), 1)

	_, err = b.Transfer(dec("10"), "Auto", "Food")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestBook_ConcurrentTransfersConserveMoney(t *testing.T) {
	b := newTestBook(t, "A", "B")
	a, _ := b.Get("A")
	bb, _ := b.Get("B")
	a.Deposit(dec("100"), "deposit")
	bb.Deposit(dec("100"), "deposit")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = b.Transfer(dec("3"), "A", "B")
		}()
		go func() {
			defer wg.Done()
			_, _ = b.Transfer(dec("2"), "B", "A")
		}()
	}
	wg.Wait()

	assert.True(t, a.Balance().Add(bb.Balance()).Equal(dec("200")))
	assert.False(t, a.Balance().IsNegative())
	assert.False(t, bb.Balance().IsNegative())
}

func TestBook_Allocate(t *testing.T) {
	b := newTestBook(t, "Expense", "Emergency", "Savings")

	err := b.Allocate(dec("1000"), "September Salary", []AllocationRule{
		{Category: "Expense", Percentage: dec("0.5")},
		{Category: "Emergency", Percentage: dec("0.3")},
		{Category: "Savings", Percentage: dec("0.2")},
	})
	require.NoError(t, err)

	want := map[string]string{"Expense": "500", "Emergency": "300", "Savings": "200"}
	for _, c := range b.Categories() {
		assert.True(t, c.Balance().Equal(dec(want[c.Name()])), c.Name())
		assert.Equal(t, "September Salary", c.Ledger()[0].Description)
	}
}

func TestBook_AllocateErrors(t *testing.T) {
	tests := []struct {
		name    string
		rules   []AllocationRule
		wantErr error
	}{
		{"no rules", nil, ErrNoAllocationRules},
		{"over 100%", []AllocationRule{
			{Category: "Expense", Percentage: dec("0.7")},
			{Category: "Savings", Percentage: dec("0.4")},
		}, ErrAllocationExceeded},
		{"unknown category", []AllocationRule{
			{Category: "Expense", Percentage: dec("0.5")},
			{Category: "Auto", Percentage: dec("0.5")},
		}, ErrCategoryNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBook(t, "Expense", "Savings")

			err := b.Allocate(dec("1000"), "", tt.rules)

			assert.ErrorIs(t, err, tt.wantErr)
			for _, c := range b.Categories() {
				assert.Empty(t, c.Ledger())
			}
		})
	}
}

func TestBook_SpendChart(t *testing.T) {
	b := NewBook()
	for _, c := range chartCategories() {
		require.NoError(t, b.Add(c))
	}

	assert.Equal(t, SpendChart(chartCategories()), b.SpendChart())
}

func TestBook_ZeroValue(t *testing.T) {
	var b Book

	_, err := b.Get("Food")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
	assert.Empty(t, b.Categories())

	require.NoError(t, b.Add(NewCategory("Food")))
	c, err := b.Get("Food")
	require.NoError(t, err)
	assert.Equal(t, "Food", c.Name())
}
