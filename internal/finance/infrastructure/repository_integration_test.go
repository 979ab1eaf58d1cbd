package infrastructure

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/FinanceTracker/internal/finance/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	database "github.com/sebuszqo/FinanceTracker/internal/db"
)

// startPostgres brings up a throwaway database, runs the migrations and
// returns an open pool. The container is torn down with the test.
func startPostgres(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("financetracker_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("pgx", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Ping())
	require.NoError(t, database.RunMigrations(db))
	return db
}

func insertTestUser(t *testing.T, db *sql.DB) string {
	t.Helper()
	userID := uuid.NewString()
	_, err := db.Exec(
		`INSERT INTO users (id, email, login, password_hash) VALUES ($1, $2, $3, $4)`,
		userID, userID[:8]+"@example.com", "user_"+userID[:8], "not-a-real-hash",
	)
	require.NoError(t, err)
	return userID
}

func TestTransactionRepository_Postgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := startPostgres(t)
	userID := insertTestUser(t, db)
	repo := NewTransactionRepository(db)

	now := time.Now().UTC().Truncate(time.Second)
	transaction := domain.Transaction{
		ID:          uuid.NewString(),
		UserID:      userID,
		Type:        domain.TransactionTypeExpense,
		Category:    "food",
		Amount:      decimal.NewFromFloat(12.50),
		Description: "lunch",
		Date:        now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, repo.Save(transaction))

	t.Run("find by id round trip", func(t *testing.T) {
		found, err := repo.FindByID(transaction.ID, userID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "lunch", found.Description)
		assert.True(t, found.Amount.Equal(decimal.NewFromFloat(12.50)), "amount: %s", found.Amount)

		missing, err := repo.FindByID(uuid.NewString(), userID)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("other user cannot see it", func(t *testing.T) {
		otherUser := insertTestUser(t, db)
		found, err := repo.FindByID(transaction.ID, otherUser)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("pagination order", func(t *testing.T) {
		for i := 1; i <= 3; i++ {
			extra := transaction
			extra.ID = uuid.NewString()
			extra.Date = now.AddDate(0, 0, i)
			extra.Description = "later"
			require.NoError(t, repo.Save(extra))
		}

		page, err := repo.FindByUser(userID, 2, 0)
		require.NoError(t, err)
		require.Equal(t, 2, len(page))
		assert.Equal(t, "later", page[0].Description)
		assert.True(t, page[0].Date.After(page[1].Date) || page[0].Date.Equal(page[1].Date))

		count, err := repo.CountByUser(userID)
		require.NoError(t, err)
		assert.Equal(t, 4, count)
	})

	t.Run("date range is a closed interval", func(t *testing.T) {
		inRange, err := repo.FindInDateRange(userID, now, now)
		require.NoError(t, err)
		assert.Equal(t, 1, len(inRange))
	})

	t.Run("category usage aggregates", func(t *testing.T) {
		usage, err := repo.GetCategoryUsage(userID, "food")
		require.NoError(t, err)
		assert.Equal(t, 4, usage.TransactionCount)
		assert.NotNil(t, usage.LastUsed)

		empty, err := repo.GetCategoryUsage(userID, "never-used")
		require.NoError(t, err)
		assert.Equal(t, 0, empty.TransactionCount)
		assert.True(t, empty.TotalAmount.IsZero())
		assert.Nil(t, empty.LastUsed)
	})

	t.Run("update and delete scoped to owner", func(t *testing.T) {
		transaction.Description = "brunch"
		transaction.UpdatedAt = time.Now().UTC()
		require.NoError(t, repo.Update(transaction))

		found, err := repo.FindByID(transaction.ID, userID)
		require.NoError(t, err)
		assert.Equal(t, "brunch", found.Description)

		err = repo.Delete(transaction.ID, uuid.NewString())
		assert.ErrorIs(t, err, financeErrors.ErrTransactionNotFound)

		require.NoError(t, repo.Delete(transaction.ID, userID))
		err = repo.Delete(transaction.ID, userID)
		assert.ErrorIs(t, err, financeErrors.ErrTransactionNotFound)
	})
}

func TestCategoryRepository_Postgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := startPostgres(t)
	userID := insertTestUser(t, db)
	categoryRepo := NewCategoryRepository(db)
	transactionRepo := NewTransactionRepository(db)

	now := time.Now().UTC().Truncate(time.Second)
	category := domain.Category{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      "pets",
		Type:      domain.TransactionTypeExpense,
		Icon:      "🐶",
		Color:     "#10B981",
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, categoryRepo.Save(category))

	t.Run("duplicate insert maps unique violation", func(t *testing.T) {
		duplicate := category
		duplicate.ID = uuid.NewString()
		err := categoryRepo.Save(duplicate)
		assert.ErrorIs(t, err, financeErrors.ErrCategoryExists)
	})

	t.Run("same name under another type is fine", func(t *testing.T) {
		sibling := category
		sibling.ID = uuid.NewString()
		sibling.Type = domain.TransactionTypeIncome
		require.NoError(t, categoryRepo.Save(sibling))
	})

	t.Run("rename onto an existing pair is rejected", func(t *testing.T) {
		other := domain.Category{
			ID: uuid.NewString(), UserID: userID, Name: "games", Type: domain.TransactionTypeExpense,
			Icon: "📁", Color: "#6B7280", CreatedAt: now, UpdatedAt: now,
		}
		require.NoError(t, categoryRepo.Save(other))

		other.Name = "pets"
		err := categoryRepo.Update(other)
		assert.ErrorIs(t, err, financeErrors.ErrCategoryExists)
	})

	t.Run("delete blocked while referenced", func(t *testing.T) {
		require.NoError(t, transactionRepo.Save(domain.Transaction{
			ID: uuid.NewString(), UserID: userID, Type: domain.TransactionTypeExpense,
			Category: "pets", Amount: decimal.NewFromInt(10), Date: now, CreatedAt: now, UpdatedAt: now,
		}))

		referencing, err := categoryRepo.DeleteIfUnused(category.ID, userID)
		require.NoError(t, err)
		assert.Equal(t, 1, referencing)

		// Category must still be there.
		found, err := categoryRepo.FindByID(category.ID, userID)
		require.NoError(t, err)
		require.NotNil(t, found)

		_, err = db.Exec(`DELETE FROM transactions WHERE user_id = $1`, userID)
		require.NoError(t, err)

		referencing, err = categoryRepo.DeleteIfUnused(category.ID, userID)
		require.NoError(t, err)
		assert.Equal(t, 0, referencing)

		found, err = categoryRepo.FindByID(category.ID, userID)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("delete unknown id", func(t *testing.T) {
		_, err := categoryRepo.DeleteIfUnused(uuid.NewString(), userID)
		assert.ErrorIs(t, err, financeErrors.ErrCategoryNotFound)
	})
}
