package application

import (
	"sort"
	"time"

	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
	"github.com/shopspring/decimal"
)

const recentTransactionsLimit = 5

// MonthlyStats are the current-month totals. Savings equals income minus
// expenses and is always present, even when both are zero.
type MonthlyStats struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Savings  decimal.Decimal `json:"savings"`
}

type CategoryStat struct {
	Type     string          `json:"type"`
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

type YearlyStat struct {
	Month int             `json:"month"`
	Type  string          `json:"type"`
	Total decimal.Decimal `json:"total"`
}

type DashboardStats struct {
	Balance            decimal.Decimal      `json:"balance"`
	MonthlyStats       MonthlyStats         `json:"monthlyStats"`
	RecentTransactions []domain.Transaction `json:"recentTransactions"`
	CategoryStats      []CategoryStat       `json:"categoryStats"`
	YearlyStats        []YearlyStat         `json:"yearlyStats"`
}

// DashboardService derives reporting views from the transaction store. It
// holds no state of its own; every report is recomputed from the current
// store contents.
type DashboardService struct {
	repo domain.TransactionRepository
	now  func() time.Time
}

func NewDashboardService(repo domain.TransactionRepository) *DashboardService {
	return &DashboardService{repo: repo, now: time.Now}
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func startOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

// MonthlyTotals sums amounts per type over [firstOfMonth(asOf), asOf].
// Types with no transactions sum to exactly zero.
func (s *DashboardService) MonthlyTotals(userID string, asOf time.Time) (income, expenses decimal.Decimal, err error) {
	transactions, err := s.repo.FindInDateRange(userID, startOfMonth(asOf), asOf)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	income, expenses = decimal.Zero, decimal.Zero
	for _, transaction := range transactions {
		switch transaction.Type {
		case domain.TransactionTypeIncome:
			income = income.Add(transaction.Amount)
		case domain.TransactionTypeExpense:
			expenses = expenses.Add(transaction.Amount)
		}
	}
	return income, expenses, nil
}

// CategoryBreakdown sums amounts per (type, category) over the same
// current-month window as MonthlyTotals, ordered by (type, category).
func (s *DashboardService) CategoryBreakdown(userID string, asOf time.Time) ([]CategoryStat, error) {
	transactions, err := s.repo.FindInDateRange(userID, startOfMonth(asOf), asOf)
	if err != nil {
		return nil, err
	}

	type groupKey struct {
		transactionType string
		category        string
	}
	totals := make(map[groupKey]decimal.Decimal)
	for _, transaction := range transactions {
		key := groupKey{transaction.Type, transaction.Category}
		totals[key] = totals[key].Add(transaction.Amount)
	}

	stats := make([]CategoryStat, 0, len(totals))
	for key, total := range totals {
		stats = append(stats, CategoryStat{Type: key.transactionType, Category: key.category, Total: total})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Type != stats[j].Type {
			return stats[i].Type < stats[j].Type
		}
		return stats[i].Category < stats[j].Category
	})
	return stats, nil
}

// YearlyBreakdown sums amounts per (calendar month, type) over
// [firstOfYear(asOf), asOf], ordered by (month, type).
func (s *DashboardService) YearlyBreakdown(userID string, asOf time.Time) ([]YearlyStat, error) {
	transactions, err := s.repo.FindInDateRange(userID, startOfYear(asOf), asOf)
	if err != nil {
		return nil, err
	}

	type groupKey struct {
		month           int
		transactionType string
	}
	totals := make(map[groupKey]decimal.Decimal)
	for _, transaction := range transactions {
		key := groupKey{int(transaction.Date.Month()), transaction.Type}
		totals[key] = totals[key].Add(transaction.Amount)
	}

	stats := make([]YearlyStat, 0, len(totals))
	for key, total := range totals {
		stats = append(stats, YearlyStat{Month: key.month, Type: key.transactionType, Total: total})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Month != stats[j].Month {
			return stats[i].Month < stats[j].Month
		}
		return stats[i].Type < stats[j].Type
	})
	return stats, nil
}

// RecentActivity returns the user's most recent transactions ordered by
// date descending with id as tie-breaker, so repeated calls over unchanged
// data yield the same order.
func (s *DashboardService) RecentActivity(userID string, limit int) ([]domain.Transaction, error) {
	transactions, err := s.repo.FindRecent(userID, limit)
	if err != nil {
		return nil, err
	}
	if transactions == nil {
		transactions = []domain.Transaction{}
	}
	return transactions, nil
}

func (s *DashboardService) GetDashboardStats(userID string) (*DashboardStats, error) {
	asOf := s.now()

	income, expenses, err := s.MonthlyTotals(userID, asOf)
	if err != nil {
		return nil, err
	}
	balance := income.Sub(expenses)

	recent, err := s.RecentActivity(userID, recentTransactionsLimit)
	if err != nil {
		return nil, err
	}

	categoryStats, err := s.CategoryBreakdown(userID, asOf)
	if err != nil {
		return nil, err
	}

	yearlyStats, err := s.YearlyBreakdown(userID, asOf)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		Balance: balance,
		MonthlyStats: MonthlyStats{
			Income:   income,
			Expenses: expenses,
			Savings:  balance,
		},
		RecentTransactions: recent,
		CategoryStats:      categoryStats,
		YearlyStats:        yearlyStats,
	}, nil
}
