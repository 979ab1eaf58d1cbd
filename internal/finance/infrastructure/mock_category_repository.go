package infrastructure

import (
	"sort"

	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/FinanceTracker/internal/finance/errors"
)

// MockCategoryRepository is an in-memory stand-in used by service tests.
// TransactionRepo, when set, backs the reference count of DeleteIfUnused.
type MockCategoryRepository struct {
	Categories      []domain.Category
	TransactionRepo *MockTransactionRepository
	Err             error
}

func (m *MockCategoryRepository) Save(category domain.Category) error {
	if m.Err != nil {
		return m.Err
	}
	for _, existing := range m.Categories {
		if existing.UserID == category.UserID && existing.Name == category.Name && existing.Type == category.Type {
			return financeErrors.ErrCategoryExists
		}
	}
	m.Categories = append(m.Categories, category)
	return nil
}

func (m *MockCategoryRepository) FindByID(categoryID, userID string) (*domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, category := range m.Categories {
		if category.ID == categoryID && category.UserID == userID {
			c := category
			return &c, nil
		}
	}
	return nil, nil
}

func (m *MockCategoryRepository) FindByUser(userID string) ([]domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var owned []domain.Category
	for _, category := range m.Categories {
		if category.UserID == userID {
			owned = append(owned, category)
		}
	}
	// Same ordering as the real repository.
	sort.Slice(owned, func(i, j int) bool {
		if owned[i].Type != owned[j].Type {
			return owned[i].Type < owned[j].Type
		}
		return owned[i].Name < owned[j].Name
	})
	return owned, nil
}

func (m *MockCategoryRepository) FindByNameAndType(userID, name, categoryType string) (*domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, category := range m.Categories {
		if category.UserID == userID && category.Name == name && category.Type == categoryType {
			c := category
			return &c, nil
		}
	}
	return nil, nil
}

func (m *MockCategoryRepository) Update(category domain.Category) error {
	if m.Err != nil {
		return m.Err
	}
	for i, existing := range m.Categories {
		if existing.ID == category.ID && existing.UserID == category.UserID {
			m.Categories[i] = category
			return nil
		}
	}
	return financeErrors.ErrCategoryNotFound
}

func (m *MockCategoryRepository) DeleteIfUnused(categoryID, userID string) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	for i, category := range m.Categories {
		if category.ID != categoryID || category.UserID != userID {
			continue
		}
		referencing := 0
		if m.TransactionRepo != nil {
			for _, transaction := range m.TransactionRepo.Transactions {
				if transaction.UserID == userID && transaction.Category == category.Name {
					referencing++
				}
			}
		}
		if referencing > 0 {
			return referencing, nil
		}
		m.Categories = append(m.Categories[:i], m.Categories[i+1:]...)
		return 0, nil
	}
	return 0, financeErrors.ErrCategoryNotFound
}
