package infrastructure

import (
	"sort"
	"time"

	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/FinanceTracker/internal/finance/errors"
	"github.com/shopspring/decimal"
)

// MockTransactionRepository is an in-memory stand-in used by service and
// handler tests.
type MockTransactionRepository struct {
	Transactions []domain.Transaction
	Err          error
}

func (m *MockTransactionRepository) Save(transaction domain.Transaction) error {
	if m.Err != nil {
		return m.Err
	}
	m.Transactions = append(m.Transactions, transaction)
	return nil
}

func (m *MockTransactionRepository) FindByID(transactionID, userID string) (*domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, transaction := range m.Transactions {
		if transaction.ID == transactionID && transaction.UserID == userID {
			t := transaction
			return &t, nil
		}
	}
	return nil, nil
}

func (m *MockTransactionRepository) sortedByDateDesc(userID string) []domain.Transaction {
	var owned []domain.Transaction
	for _, transaction := range m.Transactions {
		if transaction.UserID == userID {
			owned = append(owned, transaction)
		}
	}
	sort.Slice(owned, func(i, j int) bool {
		if !owned[i].Date.Equal(owned[j].Date) {
			return owned[i].Date.After(owned[j].Date)
		}
		return owned[i].ID > owned[j].ID
	})
	return owned
}

func (m *MockTransactionRepository) FindByUser(userID string, limit, offset int) ([]domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	owned := m.sortedByDateDesc(userID)
	if offset >= len(owned) {
		return nil, nil
	}
	end := offset + limit
	if end > len(owned) {
		end = len(owned)
	}
	return owned[offset:end], nil
}

func (m *MockTransactionRepository) CountByUser(userID string) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	count := 0
	for _, transaction := range m.Transactions {
		if transaction.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (m *MockTransactionRepository) Update(transaction domain.Transaction) error {
	if m.Err != nil {
		return m.Err
	}
	for i, existing := range m.Transactions {
		if existing.ID == transaction.ID && existing.UserID == transaction.UserID {
			m.Transactions[i] = transaction
			return nil
		}
	}
	return financeErrors.ErrTransactionNotFound
}

func (m *MockTransactionRepository) Delete(transactionID, userID string) error {
	if m.Err != nil {
		return m.Err
	}
	for i, transaction := range m.Transactions {
		if transaction.ID == transactionID && transaction.UserID == userID {
			m.Transactions = append(m.Transactions[:i], m.Transactions[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrTransactionNotFound
}

func (m *MockTransactionRepository) FindRecent(userID string, limit int) ([]domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	owned := m.sortedByDateDesc(userID)
	if len(owned) > limit {
		owned = owned[:limit]
	}
	return owned, nil
}

func (m *MockTransactionRepository) FindInDateRange(userID string, startDate, endDate time.Time) ([]domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var filtered []domain.Transaction
	for _, transaction := range m.Transactions {
		if transaction.UserID != userID {
			continue
		}
		if transaction.Date.Before(startDate) || transaction.Date.After(endDate) {
			continue
		}
		filtered = append(filtered, transaction)
	}
	return filtered, nil
}

func (m *MockTransactionRepository) GetCategoryUsage(userID, categoryName string) (domain.CategoryUsage, error) {
	if m.Err != nil {
		return domain.CategoryUsage{}, m.Err
	}
	usage := domain.CategoryUsage{TotalAmount: decimal.Zero, AverageAmount: decimal.Zero}
	for _, transaction := range m.Transactions {
		if transaction.UserID != userID || transaction.Category != categoryName {
			continue
		}
		usage.TotalAmount = usage.TotalAmount.Add(transaction.Amount)
		usage.TransactionCount++
		if usage.LastUsed == nil || transaction.Date.After(*usage.LastUsed) {
			lastUsed := transaction.Date
			usage.LastUsed = &lastUsed
		}
	}
	return usage, nil
}
