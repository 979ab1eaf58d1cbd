package domain

import (
	"strings"
	"testing"

	"github.com/sebuszqo/FinanceTracker/internal/finance/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validTransaction() Transaction {
	return Transaction{
		Type:     TransactionTypeExpense,
		Category: "food",
		Amount:   decimal.NewFromFloat(12.50),
	}
}

func TestTransactionValidate_Valid(t *testing.T) {
	transaction := validTransaction()
	assert.NoError(t, transaction.Validate())
}

func TestTransactionValidate_InvalidType(t *testing.T) {
	transaction := validTransaction()
	transaction.Type = "transfer"
	err := transaction.Validate()
	assert.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestTransactionValidate_EmptyCategory(t *testing.T) {
	transaction := validTransaction()
	transaction.Category = "   "
	err := transaction.Validate()
	assert.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestTransactionValidate_NegativeAmount(t *testing.T) {
	transaction := validTransaction()
	transaction.Amount = decimal.NewFromFloat(-0.01)
	err := transaction.Validate()
	assert.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestTransactionValidate_ZeroAmountAllowed(t *testing.T) {
	transaction := validTransaction()
	transaction.Amount = decimal.Zero
	assert.NoError(t, transaction.Validate())
}

func TestTransactionValidate_DescriptionTooLong(t *testing.T) {
	transaction := validTransaction()
	transaction.Description = strings.Repeat("a", 200)
	assert.NoError(t, transaction.Validate())

	transaction.Description = strings.Repeat("a", 201)
	err := transaction.Validate()
	assert.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
