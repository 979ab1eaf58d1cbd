package interfaces

import (
	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
)

type MockTransactionService struct {
	CreateTransactionFunc   func(transaction *domain.Transaction) error
	GetUserTransactionsFunc func(userID string, page, limit int) ([]domain.Transaction, int, int, error)
	UpdateTransactionFunc   func(userID, transactionID string, fields *domain.Transaction) (*domain.Transaction, error)
	DeleteTransactionFunc   func(userID, transactionID string) error
}

func (m *MockTransactionService) CreateTransaction(transaction *domain.Transaction) error {
	return m.CreateTransactionFunc(transaction)
}

func (m *MockTransactionService) GetUserTransactions(userID string, page, limit int) ([]domain.Transaction, int, int, error) {
	return m.GetUserTransactionsFunc(userID, page, limit)
}

func (m *MockTransactionService) UpdateTransaction(userID, transactionID string, fields *domain.Transaction) (*domain.Transaction, error) {
	return m.UpdateTransactionFunc(userID, transactionID, fields)
}

func (m *MockTransactionService) DeleteTransaction(userID, transactionID string) error {
	return m.DeleteTransactionFunc(userID, transactionID)
}
