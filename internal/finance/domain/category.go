package domain

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sebuszqo/FinanceTracker/internal/finance/errors"
	"github.com/shopspring/decimal"
)

const (
	maxCategoryNameLength = 30
	maxCategoryIconLength = 5

	DefaultCategoryIcon  = "📁"
	DefaultCategoryColor = "#6B7280"
)

var hexColorRegexp = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

type Category struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Icon      string    `json:"icon"`
	Color     string    `json:"color"`
	IsDefault bool      `json:"isDefault"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryUsage aggregates the transactions of one user that reference
// a category by name.
type CategoryUsage struct {
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	TransactionCount int             `json:"transactionCount"`
	AverageAmount    decimal.Decimal `json:"averageAmount"`
	LastUsed         *time.Time      `json:"lastUsed,omitempty"`
}

type CategoryRepository interface {
	Save(category Category) error
	FindByID(categoryID, userID string) (*Category, error)
	FindByUser(userID string) ([]Category, error)
	FindByNameAndType(userID, name, categoryType string) (*Category, error)
	Update(category Category) error
	// DeleteIfUnused removes the category only when no transaction of the
	// owner references its name. The check and the delete run in a single
	// database transaction; a nonzero count means nothing was deleted.
	DeleteIfUnused(categoryID, userID string) (referencingTransactions int, err error)
}

func (c *Category) Validate() error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return errors.NewValidationError("Category name is required")
	}
	if len(c.Name) > maxCategoryNameLength {
		return errors.NewValidationError("Category name cannot exceed 30 characters")
	}
	if !IsValidTransactionType(c.Type) {
		return errors.NewValidationError("Type must be 'income' or 'expense'")
	}
	if utf8.RuneCountInString(c.Icon) > maxCategoryIconLength {
		return errors.NewValidationError("Icon too long")
	}
	if c.Color != "" && !hexColorRegexp.MatchString(c.Color) {
		return errors.NewValidationError("Invalid color format")
	}
	if c.Icon == "" {
		c.Icon = DefaultCategoryIcon
	}
	if c.Color == "" {
		c.Color = DefaultCategoryColor
	}
	return nil
}
