package interfaces

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/FinanceTracker/internal/finance/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCreateTransaction_HandlerSuccess(t *testing.T) {
	var created *domain.Transaction
	service := &MockTransactionService{
		CreateTransactionFunc: func(transaction *domain.Transaction) error {
			transaction.ID = "t-new"
			created = transaction
			return nil
		},
	}
	handler := NewTransactionHandler(service, testRespondJSON, testRespondError)

	recorder := httptest.NewRecorder()
	req := newAuthedRequest(http.MethodPost, "/api/protected/transactions",
		`{"type":"expense","category":"food","amount":12.50,"description":"lunch"}`)
	handler.CreateTransaction(recorder, req)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, testUserID, created.UserID)
	assert.True(t, created.Amount.Equal(decimal.NewFromFloat(12.50)))
	body := decodeBody(t, recorder)
	assert.Equal(t, "t-new", body["data"].(map[string]interface{})["id"])
}

func TestCreateTransaction_HandlerValidationError(t *testing.T) {
	service := &MockTransactionService{
		CreateTransactionFunc: func(transaction *domain.Transaction) error {
			return financeErrors.NewValidationError("Type must be 'income' or 'expense'")
		},
	}
	handler := NewTransactionHandler(service, testRespondJSON, testRespondError)

	recorder := httptest.NewRecorder()
	req := newAuthedRequest(http.MethodPost, "/api/protected/transactions",
		`{"type":"transfer","category":"food","amount":5}`)
	handler.CreateTransaction(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Type must be 'income' or 'expense'", decodeBody(t, recorder)["message"])
}

func TestCreateTransaction_HandlerMissingAmount(t *testing.T) {
	called := false
	service := &MockTransactionService{
		CreateTransactionFunc: func(transaction *domain.Transaction) error {
			called = true
			return nil
		},
	}
	handler := NewTransactionHandler(service, testRespondJSON, testRespondError)

	recorder := httptest.NewRecorder()
	req := newAuthedRequest(http.MethodPost, "/api/protected/transactions",
		`{"type":"expense","category":"food"}`)
	handler.CreateTransaction(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Amount must be a positive number", decodeBody(t, recorder)["message"])
	assert.False(t, called, "nothing must be stored without an amount")
}

func TestCreateTransaction_HandlerZeroAmountAllowed(t *testing.T) {
	var created *domain.Transaction
	service := &MockTransactionService{
		CreateTransactionFunc: func(transaction *domain.Transaction) error {
			created = transaction
			return nil
		},
	}
	handler := NewTransactionHandler(service, testRespondJSON, testRespondError)

	recorder := httptest.NewRecorder()
	req := newAuthedRequest(http.MethodPost, "/api/protected/transactions",
		`{"type":"expense","category":"food","amount":0}`)
	handler.CreateTransaction(recorder, req)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.True(t, created.Amount.IsZero())
}

func TestCreateTransaction_HandlerUnauthorized(t *testing.T) {
	handler := NewTransactionHandler(&MockTransactionService{}, testRespondJSON, testRespondError)

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/protected/transactions", nil)
	handler.CreateTransaction(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestGetUserTransactions_HandlerPassesPaging(t *testing.T) {
	service := &MockTransactionService{
		GetUserTransactionsFunc: func(userID string, page, limit int) ([]domain.Transaction, int, int, error) {
			assert.Equal(t, 2, page)
			assert.Equal(t, 5, limit)
			return []domain.Transaction{{ID: "t1", Type: "expense", Category: "food", Amount: decimal.NewFromInt(1)}}, 11, 3, nil
		},
	}
	handler := NewTransactionHandler(service, testRespondJSON, testRespondError)

	recorder := httptest.NewRecorder()
	req := newAuthedRequest(http.MethodGet, "/api/protected/transactions?page=2&limit=5", "")
	handler.GetUserTransactions(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	data := decodeBody(t, recorder)["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["currentPage"])
	assert.Equal(t, float64(3), data["totalPages"])
	assert.Equal(t, float64(11), data["totalTransactions"])
	assert.Equal(t, 1, len(data["transactions"].([]interface{})))
}

func TestGetUserTransactions_HandlerRejectsBadPaging(t *testing.T) {
	handler := NewTransactionHandler(&MockTransactionService{}, testRespondJSON, testRespondError)

	for _, target := range []string{
		"/api/protected/transactions?page=0",
		"/api/protected/transactions?page=abc",
		"/api/protected/transactions?limit=-1",
	} {
		recorder := httptest.NewRecorder()
		handler.GetUserTransactions(recorder, newAuthedRequest(http.MethodGet, target, ""))
		assert.Equal(t, http.StatusBadRequest, recorder.Code, target)
	}
}

func TestUpdateTransaction_HandlerNotFound(t *testing.T) {
	service := &MockTransactionService{
		UpdateTransactionFunc: func(userID, transactionID string, fields *domain.Transaction) (*domain.Transaction, error) {
			assert.Equal(t, "missing", transactionID)
			return nil, financeErrors.ErrTransactionNotFound
		},
	}
	handler := NewTransactionHandler(service, testRespondJSON, testRespondError)

	recorder := httptest.NewRecorder()
	req := newAuthedRequest(http.MethodPut, "/api/protected/transactions/missing",
		`{"type":"expense","category":"food","amount":5}`)
	req.SetPathValue("transactionID", "missing")
	handler.UpdateTransaction(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "Transaction not found", decodeBody(t, recorder)["message"])
}

func TestUpdateTransaction_HandlerPassesDate(t *testing.T) {
	date := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)
	service := &MockTransactionService{
		UpdateTransactionFunc: func(userID, transactionID string, fields *domain.Transaction) (*domain.Transaction, error) {
			assert.Equal(t, date, fields.Date)
			updated := *fields
			updated.ID = transactionID
			return &updated, nil
		},
	}
	handler := NewTransactionHandler(service, testRespondJSON, testRespondError)

	recorder := httptest.NewRecorder()
	req := newAuthedRequest(http.MethodPut, "/api/protected/transactions/t1",
		`{"type":"expense","category":"food","amount":5,"date":"2026-03-03T00:00:00Z"}`)
	req.SetPathValue("transactionID", "t1")
	handler.UpdateTransaction(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestUpdateTransaction_HandlerMissingAmount(t *testing.T) {
	called := false
	service := &MockTransactionService{
		UpdateTransactionFunc: func(userID, transactionID string, fields *domain.Transaction) (*domain.Transaction, error) {
			called = true
			return fields, nil
		},
	}
	handler := NewTransactionHandler(service, testRespondJSON, testRespondError)

	recorder := httptest.NewRecorder()
	req := newAuthedRequest(http.MethodPut, "/api/protected/transactions/t1",
		`{"type":"expense","category":"food"}`)
	req.SetPathValue("transactionID", "t1")
	handler.UpdateTransaction(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Amount must be a positive number", decodeBody(t, recorder)["message"])
	assert.False(t, called, "an omitted amount must not zero the stored one")
}

func TestDeleteTransaction_Handler(t *testing.T) {
	service := &MockTransactionService{
		DeleteTransactionFunc: func(userID, transactionID string) error {
			if transactionID == "missing" {
				return financeErrors.ErrTransactionNotFound
			}
			return nil
		},
	}
	handler := NewTransactionHandler(service, testRespondJSON, testRespondError)

	recorder := httptest.NewRecorder()
	req := newAuthedRequest(http.MethodDelete, "/api/protected/transactions/t1", "")
	req.SetPathValue("transactionID", "t1")
	handler.DeleteTransaction(recorder, req)
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = httptest.NewRecorder()
	req = newAuthedRequest(http.MethodDelete, "/api/protected/transactions/missing", "")
	req.SetPathValue("transactionID", "missing")
	handler.DeleteTransaction(recorder, req)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
