package domain

// Default categories are process-wide static configuration. They are never
// persisted and never mutated; their ids are stable synthetic values so the
// API can address them like stored categories.

const defaultCategoryIDPrefix = "default_"

const (
	defaultIncomeColor  = "#10B981"
	defaultExpenseColor = "#EF4444"
)

var defaultCategories = []Category{
	{ID: defaultCategoryIDPrefix + "salary", Name: "salary", Type: TransactionTypeIncome, Icon: "💼", Color: defaultIncomeColor, IsDefault: true},
	{ID: defaultCategoryIDPrefix + "freelance", Name: "freelance", Type: TransactionTypeIncome, Icon: "💻", Color: defaultIncomeColor, IsDefault: true},
	{ID: defaultCategoryIDPrefix + "investment", Name: "investment", Type: TransactionTypeIncome, Icon: "📈", Color: defaultIncomeColor, IsDefault: true},
	{ID: defaultCategoryIDPrefix + "business", Name: "business", Type: TransactionTypeIncome, Icon: "🏢", Color: defaultIncomeColor, IsDefault: true},
	{ID: defaultCategoryIDPrefix + "gift", Name: "gift", Type: TransactionTypeIncome, Icon: "🎁", Color: defaultIncomeColor, IsDefault: true},
	{ID: defaultCategoryIDPrefix + "other_income", Name: "other_income", Type: TransactionTypeIncome, Icon: "💰", Color: defaultIncomeColor, IsDefault: true},

	{ID: defaultCategoryIDPrefix + "food", Name: "food", Type: TransactionTypeExpense, Icon: "🍕", Color: defaultExpenseColor, IsDefault: true},
	{ID: defaultCategoryIDPrefix + "transport", Name: "transport", Type: TransactionTypeExpense, Icon: "🚗", Color: defaultExpenseColor, IsDefault: true},
	{ID: defaultCategoryIDPrefix + "housing", Name: "housing", Type: TransactionTypeExpense, Icon: "🏠", Color: defaultExpenseColor, IsDefault: true},
	{ID: defaultCategoryIDPrefix + "entertainment", Name: "entertainment", Type: TransactionTypeExpense, Icon: "🎬", Color: defaultExpenseColor, IsDefault: true},
	{ID: defaultCategoryIDPrefix + "healthcare", Name: "healthcare", Type: TransactionTypeExpense, Icon: "🏥", Color: defaultExpenseColor, IsDefault: true},
	{ID: defaultCategoryIDPrefix + "education", Name: "education", Type: TransactionTypeExpense, Icon: "📚", Color: defaultExpenseColor, IsDefault: true},
	{ID: defaultCategoryIDPrefix + "shopping", Name: "shopping", Type: TransactionTypeExpense, Icon: "🛍️", Color: defaultExpenseColor, IsDefault: true},
	{ID: defaultCategoryIDPrefix + "other_expense", Name: "other_expense", Type: TransactionTypeExpense, Icon: "💸", Color: defaultExpenseColor, IsDefault: true},
}

// DefaultCategories returns a copy of the built-in category list in its
// declared order.
func DefaultCategories() []Category {
	categories := make([]Category, len(defaultCategories))
	copy(categories, defaultCategories)
	return categories
}

func DefaultCategoryByID(categoryID string) (*Category, bool) {
	for _, category := range defaultCategories {
		if category.ID == categoryID {
			c := category
			return &c, true
		}
	}
	return nil, false
}

func IsDefaultCategory(name, categoryType string) bool {
	for _, category := range defaultCategories {
		if category.Name == name && category.Type == categoryType {
			return true
		}
	}
	return false
}
