package interfaces

import (
	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
)

// MockCategoryService lets handler tests script each operation.
type MockCategoryService struct {
	GetUserCategoriesFunc func(userID string) ([]domain.Category, error)
	CreateCategoryFunc    func(userID string, category *domain.Category) error
	UpdateCategoryFunc    func(userID, categoryID string, fields domain.Category) (*domain.Category, error)
	DeleteCategoryFunc    func(userID, categoryID string) error
	GetCategoryUsageFunc  func(userID, categoryID string) (*domain.Category, *domain.CategoryUsage, error)
}

func (m *MockCategoryService) GetUserCategories(userID string) ([]domain.Category, error) {
	return m.GetUserCategoriesFunc(userID)
}

func (m *MockCategoryService) CreateCategory(userID string, category *domain.Category) error {
	return m.CreateCategoryFunc(userID, category)
}

func (m *MockCategoryService) UpdateCategory(userID, categoryID string, fields domain.Category) (*domain.Category, error) {
	return m.UpdateCategoryFunc(userID, categoryID, fields)
}

func (m *MockCategoryService) DeleteCategory(userID, categoryID string) error {
	return m.DeleteCategoryFunc(userID, categoryID)
}

func (m *MockCategoryService) GetCategoryUsage(userID, categoryID string) (*domain.Category, *domain.CategoryUsage, error) {
	return m.GetCategoryUsageFunc(userID, categoryID)
}
