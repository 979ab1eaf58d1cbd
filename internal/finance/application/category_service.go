package application

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/FinanceTracker/internal/finance/errors"
	"github.com/shopspring/decimal"
)

type CategoryService struct {
	categoryRepo    domain.CategoryRepository
	transactionRepo domain.TransactionRepository
}

func NewCategoryService(categoryRepo domain.CategoryRepository, transactionRepo domain.TransactionRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo, transactionRepo: transactionRepo}
}

// GetUserCategories returns the built-in categories in their declared order
// followed by the user's custom categories ordered by (type, name). The
// ordering is stable across calls.
func (s *CategoryService) GetUserCategories(userID string) ([]domain.Category, error) {
	categories := domain.DefaultCategories()

	userCategories, err := s.categoryRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	return append(categories, userCategories...), nil
}

func (s *CategoryService) CreateCategory(userID string, category *domain.Category) error {
	category.UserID = userID
	if err := category.Validate(); err != nil {
		return err
	}

	existing, err := s.categoryRepo.FindByNameAndType(userID, category.Name, category.Type)
	if err != nil {
		return err
	}
	if existing != nil {
		return financeErrors.ErrCategoryExists
	}

	now := time.Now().UTC()
	category.ID = uuid.NewString()
	category.CreatedAt = now
	category.UpdatedAt = now
	return s.categoryRepo.Save(*category)
}

func (s *CategoryService) UpdateCategory(userID, categoryID string, fields domain.Category) (*domain.Category, error) {
	if _, isDefault := domain.DefaultCategoryByID(categoryID); isDefault {
		return nil, financeErrors.ErrDefaultCategory
	}

	category, err := s.categoryRepo.FindByID(categoryID, userID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, financeErrors.ErrCategoryNotFound
	}

	fields.Name = strings.TrimSpace(fields.Name)
	if fields.Name != category.Name || fields.Type != category.Type {
		duplicate, err := s.categoryRepo.FindByNameAndType(userID, fields.Name, fields.Type)
		if err != nil {
			return nil, err
		}
		if duplicate != nil && duplicate.ID != category.ID {
			return nil, financeErrors.ErrCategoryExists
		}
	}

	category.Name = fields.Name
	category.Type = fields.Type
	// Icon and color keep their stored values when the payload omits them.
	if fields.Icon != "" {
		category.Icon = fields.Icon
	}
	if fields.Color != "" {
		category.Color = fields.Color
	}
	if err := category.Validate(); err != nil {
		return nil, err
	}
	category.UpdatedAt = time.Now().UTC()

	if err := s.categoryRepo.Update(*category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory refuses to remove built-ins and categories still referenced
// by the owner's transactions. The reference check and the delete are atomic
// at the repository level, so a concurrent insert cannot slip between them.
func (s *CategoryService) DeleteCategory(userID, categoryID string) error {
	if _, isDefault := domain.DefaultCategoryByID(categoryID); isDefault {
		return financeErrors.ErrDefaultCategory
	}

	referencing, err := s.categoryRepo.DeleteIfUnused(categoryID, userID)
	if err != nil {
		return err
	}
	if referencing > 0 {
		return &financeErrors.CategoryInUseError{Count: referencing}
	}
	return nil
}

// GetCategoryUsage reports totals over the owner's transactions referencing
// the category's name. Built-ins are addressable here like stored categories.
func (s *CategoryService) GetCategoryUsage(userID, categoryID string) (*domain.Category, *domain.CategoryUsage, error) {
	category, isDefault := domain.DefaultCategoryByID(categoryID)
	if !isDefault {
		var err error
		category, err = s.categoryRepo.FindByID(categoryID, userID)
		if err != nil {
			return nil, nil, err
		}
		if category == nil {
			return nil, nil, financeErrors.ErrCategoryNotFound
		}
	}

	usage, err := s.transactionRepo.GetCategoryUsage(userID, category.Name)
	if err != nil {
		return nil, nil, err
	}
	if usage.TransactionCount > 0 {
		usage.AverageAmount = usage.TotalAmount.Div(decimal.NewFromInt(int64(usage.TransactionCount))).Round(2)
	}
	return category, &usage, nil
}

// DoesCategoryExist resolves a category name against the built-ins and the
// user's custom categories of the same type.
func (s *CategoryService) DoesCategoryExist(userID, name, categoryType string) (bool, error) {
	if domain.IsDefaultCategory(name, categoryType) {
		return true, nil
	}
	category, err := s.categoryRepo.FindByNameAndType(userID, name, categoryType)
	if err != nil {
		return false, err
	}
	return category != nil, nil
}
