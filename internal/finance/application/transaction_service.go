package application

import (
	"time"

	"github.com/google/uuid"
	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/FinanceTracker/internal/finance/errors"
)

const defaultPageSize = 10

type CategoryResolver interface {
	DoesCategoryExist(userID, name, categoryType string) (bool, error)
}

type TransactionService struct {
	repo             domain.TransactionRepository
	categoryResolver CategoryResolver
}

func NewTransactionService(repo domain.TransactionRepository, categoryResolver CategoryResolver) *TransactionService {
	return &TransactionService{repo: repo, categoryResolver: categoryResolver}
}

func (s *TransactionService) CreateTransaction(transaction *domain.Transaction) error {
	if err := transaction.Validate(); err != nil {
		return err
	}

	exists, err := s.categoryResolver.DoesCategoryExist(transaction.UserID, transaction.Category, transaction.Type)
	if err != nil {
		return err
	}
	if !exists {
		return financeErrors.ErrInvalidCategory
	}

	now := time.Now().UTC()
	transaction.ID = uuid.NewString()
	if transaction.Date.IsZero() {
		transaction.Date = now
	}
	transaction.CreatedAt = now
	transaction.UpdatedAt = now
	return s.repo.Save(*transaction)
}

// GetUserTransactions returns one page of the user's transactions ordered by
// date descending, together with the total record and page counts. A page
// past the end yields an empty list, not an error.
func (s *TransactionService) GetUserTransactions(userID string, page, limit int) ([]domain.Transaction, int, int, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultPageSize
	}

	transactions, err := s.repo.FindByUser(userID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, 0, err
	}
	if transactions == nil {
		transactions = []domain.Transaction{}
	}

	total, err := s.repo.CountByUser(userID)
	if err != nil {
		return nil, 0, 0, err
	}
	totalPages := (total + limit - 1) / limit
	return transactions, total, totalPages, nil
}

func (s *TransactionService) UpdateTransaction(userID, transactionID string, fields *domain.Transaction) (*domain.Transaction, error) {
	transaction, err := s.repo.FindByID(transactionID, userID)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, financeErrors.ErrTransactionNotFound
	}

	transaction.Type = fields.Type
	transaction.Category = fields.Category
	transaction.Amount = fields.Amount
	transaction.Description = fields.Description
	if !fields.Date.IsZero() {
		transaction.Date = fields.Date
	}
	if err := transaction.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.categoryResolver.DoesCategoryExist(userID, transaction.Category, transaction.Type)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, financeErrors.ErrInvalidCategory
	}

	transaction.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(*transaction); err != nil {
		return nil, err
	}
	return transaction, nil
}

func (s *TransactionService) DeleteTransaction(userID, transactionID string) error {
	return s.repo.Delete(transactionID, userID)
}
