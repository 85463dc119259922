package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yuhsinc/pocket-ledger/internal/model"
	"github.com/yuhsinc/pocket-ledger/internal/testutil"
)

func TestFilterMonth(t *testing.T) {
	txs := []model.Transaction{
		testutil.Tx(1, "2024-01-15", model.ModeExpense, 10, "a", model.CategoryOther),
		testutil.Tx(2, "2024-02-01", model.ModeExpense, 20, "b", model.CategoryOther),
		testutil.Tx(3, "2024-02-29", model.ModeExpense, 30, "c", model.CategoryOther),
		testutil.Tx(4, "2023-02-10", model.ModeExpense, 40, "d", model.CategoryOther),
	}

	got := filterMonth(txs, "2024-02")

	var notes []string
	for _, tx := range got {
		notes = append(notes, tx.Note)
	}
	assert.Equal(t, []string{"b", "c"}, notes)
}

func TestMonthPattern(t *testing.T) {
	assert.True(t, monthPattern.MatchString("2024-02"))
	assert.False(t, monthPattern.MatchString("2024-2"))
	assert.False(t, monthPattern.MatchString("2024-02-01"))
	assert.False(t, monthPattern.MatchString("Feb 2024"))
}
