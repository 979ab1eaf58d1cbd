package infrastructure

import (
	"database/sql"
	"errors"
	"time"

	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/FinanceTracker/internal/finance/errors"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Save(transaction domain.Transaction) error {
	_, err := r.db.Exec(
		`INSERT INTO transactions (id, user_id, type, category, amount, description, date, created_at, updated_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		transaction.ID, transaction.UserID, transaction.Type, transaction.Category, transaction.Amount,
		transaction.Description, transaction.Date, transaction.CreatedAt, transaction.UpdatedAt,
	)
	return err
}

const transactionColumns = `id, user_id, type, category, amount, description, date, created_at, updated_at`

func scanTransaction(row interface{ Scan(...interface{}) error }) (*domain.Transaction, error) {
	var transaction domain.Transaction
	err := row.Scan(&transaction.ID, &transaction.UserID, &transaction.Type, &transaction.Category,
		&transaction.Amount, &transaction.Description, &transaction.Date, &transaction.CreatedAt, &transaction.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (r *TransactionRepository) FindByID(transactionID, userID string) (*domain.Transaction, error) {
	row := r.db.QueryRow(
		`SELECT `+transactionColumns+` FROM transactions WHERE id = $1 AND user_id = $2`,
		transactionID, userID,
	)
	transaction, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return transaction, err
}

func (r *TransactionRepository) queryTransactions(query string, args ...interface{}) ([]domain.Transaction, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *transaction)
	}
	return transactions, rows.Err()
}

func (r *TransactionRepository) FindByUser(userID string, limit, offset int) ([]domain.Transaction, error) {
	return r.queryTransactions(
		`SELECT `+transactionColumns+` FROM transactions
         WHERE user_id = $1 ORDER BY date DESC, id DESC LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
}

func (r *TransactionRepository) CountByUser(userID string) (int, error) {
	var total int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM transactions WHERE user_id = $1`, userID).Scan(&total)
	return total, err
}

func (r *TransactionRepository) Update(transaction domain.Transaction) error {
	result, err := r.db.Exec(
		`UPDATE transactions SET type = $1, category = $2, amount = $3, description = $4, date = $5, updated_at = $6
         WHERE id = $7 AND user_id = $8`,
		transaction.Type, transaction.Category, transaction.Amount, transaction.Description,
		transaction.Date, transaction.UpdatedAt, transaction.ID, transaction.UserID,
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return financeErrors.ErrTransactionNotFound
	}
	return nil
}

func (r *TransactionRepository) Delete(transactionID, userID string) error {
	result, err := r.db.Exec(`DELETE FROM transactions WHERE id = $1 AND user_id = $2`, transactionID, userID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return financeErrors.ErrTransactionNotFound
	}
	return nil
}

func (r *TransactionRepository) FindRecent(userID string, limit int) ([]domain.Transaction, error) {
	return r.queryTransactions(
		`SELECT `+transactionColumns+` FROM transactions
         WHERE user_id = $1 ORDER BY date DESC, id DESC LIMIT $2`,
		userID, limit,
	)
}

func (r *TransactionRepository) FindInDateRange(userID string, startDate, endDate time.Time) ([]domain.Transaction, error) {
	return r.queryTransactions(
		`SELECT `+transactionColumns+` FROM transactions
         WHERE user_id = $1 AND date >= $2 AND date <= $3 ORDER BY date, id`,
		userID, startDate, endDate,
	)
}

func (r *TransactionRepository) GetCategoryUsage(userID, categoryName string) (domain.CategoryUsage, error) {
	var usage domain.CategoryUsage
	var lastUsed sql.NullTime
	err := r.db.QueryRow(
		`SELECT COALESCE(SUM(amount), 0), COUNT(*), MAX(date)
         FROM transactions WHERE user_id = $1 AND category = $2`,
		userID, categoryName,
	).Scan(&usage.TotalAmount, &usage.TransactionCount, &lastUsed)
	if err != nil {
		return domain.CategoryUsage{}, err
	}
	if lastUsed.Valid {
		usage.LastUsed = &lastUsed.Time
	}
	return usage, nil
}
