package infrastructure

import (
	"database/sql"
	"errors"
	"log"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/FinanceTracker/internal/finance/errors"
)

const uniqueViolationCode = "23505"

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

func (r *CategoryRepository) Save(category domain.Category) error {
	_, err := r.db.Exec(
		`INSERT INTO categories (id, user_id, name, type, icon, color, created_at, updated_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		category.ID, category.UserID, category.Name, category.Type, category.Icon, category.Color,
		category.CreatedAt, category.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return financeErrors.ErrCategoryExists
	}
	return err
}

func (r *CategoryRepository) FindByID(categoryID, userID string) (*domain.Category, error) {
	var category domain.Category
	err := r.db.QueryRow(
		`SELECT id, user_id, name, type, icon, color, created_at, updated_at
         FROM categories WHERE id = $1 AND user_id = $2`,
		categoryID, userID,
	).Scan(&category.ID, &category.UserID, &category.Name, &category.Type, &category.Icon, &category.Color,
		&category.CreatedAt, &category.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) FindByUser(userID string) ([]domain.Category, error) {
	rows, err := r.db.Query(
		`SELECT id, user_id, name, type, icon, color, created_at, updated_at
         FROM categories WHERE user_id = $1 ORDER BY type, name`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.UserID, &category.Name, &category.Type, &category.Icon,
			&category.Color, &category.CreatedAt, &category.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) FindByNameAndType(userID, name, categoryType string) (*domain.Category, error) {
	var category domain.Category
	err := r.db.QueryRow(
		`SELECT id, user_id, name, type, icon, color, created_at, updated_at
         FROM categories WHERE user_id = $1 AND name = $2 AND type = $3`,
		userID, name, categoryType,
	).Scan(&category.ID, &category.UserID, &category.Name, &category.Type, &category.Icon, &category.Color,
		&category.CreatedAt, &category.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) Update(category domain.Category) error {
	result, err := r.db.Exec(
		`UPDATE categories SET name = $1, type = $2, icon = $3, color = $4, updated_at = $5
         WHERE id = $6 AND user_id = $7`,
		category.Name, category.Type, category.Icon, category.Color, category.UpdatedAt,
		category.ID, category.UserID,
	)
	if isUniqueViolation(err) {
		return financeErrors.ErrCategoryExists
	}
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return financeErrors.ErrCategoryNotFound
	}
	return nil
}

// DeleteIfUnused counts the owner's transactions referencing the category
// name and deletes the category in the same database transaction. When the
// count is nonzero nothing is deleted and the count is returned.
func (r *CategoryRepository) DeleteIfUnused(categoryID, userID string) (int, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, err
	}

	var name string
	err = tx.QueryRow(`SELECT name FROM categories WHERE id = $1 AND user_id = $2`, categoryID, userID).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		safeRollback(tx)
		return 0, financeErrors.ErrCategoryNotFound
	}
	if err != nil {
		safeRollback(tx)
		return 0, err
	}

	var referencing int
	err = tx.QueryRow(`SELECT COUNT(*) FROM transactions WHERE user_id = $1 AND category = $2`, userID, name).Scan(&referencing)
	if err != nil {
		safeRollback(tx)
		return 0, err
	}
	if referencing > 0 {
		safeRollback(tx)
		return referencing, nil
	}

	if _, err := tx.Exec(`DELETE FROM categories WHERE id = $1 AND user_id = $2`, categoryID, userID); err != nil {
		safeRollback(tx)
		return 0, err
	}
	return 0, tx.Commit()
}

func safeRollback(tx *sql.Tx) {
	if err := tx.Rollback(); err != nil {
		log.Printf("Error during transaction rollback: %v", err)
	}
}
