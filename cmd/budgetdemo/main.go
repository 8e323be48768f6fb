package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/dnswd/budget"
	"github.com/dnswd/budget/internal/config"
	"github.com/dnswd/budget/internal/logging"
)

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLogging(envConfig)
	logger.Info("budgetdemo starting")

	food := budget.NewCategory("Food")
	food.Deposit(decimal.NewFromInt(1000), "initial deposit")
	food.Withdraw(decimal.RequireFromString("10.15"), "groceries")
	food.Withdraw(decimal.RequireFromString("15.89"), "restaurant and more food for dessert")
	logger.WithField("balance", food.Balance().StringFixed(2)).Info("Food.Ready")

	clothing := budget.NewCategory("Clothing")
	ok := food.Transfer(decimal.NewFromInt(50), clothing)
	logger.WithField("ok", ok).Info("Food.Transfer.Clothing")

	ok = clothing.Withdraw(decimal.NewFromInt(200), "designer jacket")
	logger.WithField("ok", ok).Info("Clothing.Withdraw.Rejected")

	ok = clothing.Transfer(decimal.NewFromInt(200), food)
	logger.WithFields(logrus.Fields{
		"ok":           ok,
		"clothing":     clothing.Balance().StringFixed(2),
		"food_entries": len(food.Ledger()),
	}).Info("Clothing.Transfer.Rejected")

	fmt.Println(food)
	fmt.Println()
	fmt.Println(clothing)
	fmt.Println()

	if st, err := budget.ParseStatement(food.String()); err != nil {
		logger.WithError(err).Error("ParseStatement")
	} else {
		logger.WithFields(logrus.Fields{
			"name":    st.Name,
			"entries": len(st.Entries),
			"total":   st.Total.StringFixed(2),
		}).Info("ParseStatement.Complete")
	}

	book := budget.NewBook()
	for _, name := range []string{"Food", "Entertainment", "Business"} {
		if err := book.Add(budget.NewCategory(name)); err != nil {
			logger.WithError(err).Fatal("Book.Add")
		}
	}

	err = book.Allocate(decimal.NewFromInt(2700), "deposit", []budget.AllocationRule{
		{Category: "Food", Percentage: decimal.RequireFromString("0.3334")},
		{Category: "Entertainment", Percentage: decimal.RequireFromString("0.3333")},
		{Category: "Business", Percentage: decimal.RequireFromString("0.3333")},
	})
	if err != nil {
		logger.WithError(err).Fatal("Book.Allocate")
	}

	spend := map[string]string{
		"Food":          "105.55",
		"Entertainment": "33.40",
		"Business":      "10.99",
	}
	for _, c := range book.Categories() {
		c.Withdraw(decimal.RequireFromString(spend[c.Name()]), "")
		if envConfig.DumpLedgers {
			logger.Debugf("ledger %s:\n%s", c.Name(), spew.Sdump(c.Ledger()))
		}
	}

	fmt.Println(book.SpendChart())

	if ok, err := book.Transfer(decimal.NewFromInt(50), "Business", "Food"); err != nil {
		logger.WithError(err).Error("Book.Transfer")
	} else {
		logger.WithField("ok", ok).Info("Book.Transfer.Business.Food")
	}
	logger.Info("budgetdemo complete")
}
