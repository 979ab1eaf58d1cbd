package domain

import (
	"strings"
	"time"

	"github.com/sebuszqo/FinanceTracker/internal/finance/errors"
	"github.com/shopspring/decimal"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"

	maxDescriptionLength = 200
)

type Transaction struct {
	ID          string          `json:"id"`
	UserID      string          `json:"-"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type TransactionRepository interface {
	Save(transaction Transaction) error
	FindByID(transactionID, userID string) (*Transaction, error)
	FindByUser(userID string, limit, offset int) ([]Transaction, error)
	CountByUser(userID string) (int, error)
	Update(transaction Transaction) error
	Delete(transactionID, userID string) error
	FindRecent(userID string, limit int) ([]Transaction, error)
	FindInDateRange(userID string, startDate, endDate time.Time) ([]Transaction, error)
	GetCategoryUsage(userID, categoryName string) (CategoryUsage, error)
}

func IsValidTransactionType(transactionType string) bool {
	return transactionType == TransactionTypeIncome || transactionType == TransactionTypeExpense
}

func (t *Transaction) Validate() error {
	if !IsValidTransactionType(t.Type) {
		return errors.NewValidationError("Type must be 'income' or 'expense'")
	}
	if strings.TrimSpace(t.Category) == "" {
		return errors.NewValidationError("Category is required")
	}
	if t.Amount.IsNegative() {
		return errors.NewValidationError("Amount cannot be negative")
	}
	if len(t.Description) > maxDescriptionLength {
		return errors.NewValidationError("Description must be of length less than 200")
	}
	return nil
}
