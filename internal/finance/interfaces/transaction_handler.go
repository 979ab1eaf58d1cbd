package interfaces

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/FinanceTracker/internal/finance/errors"
	"github.com/shopspring/decimal"
)

type TransactionServiceInterface interface {
	CreateTransaction(transaction *domain.Transaction) error
	GetUserTransactions(userID string, page, limit int) ([]domain.Transaction, int, int, error)
	UpdateTransaction(userID, transactionID string, fields *domain.Transaction) (*domain.Transaction, error)
	DeleteTransaction(userID, transactionID string) error
}

type transactionRequest struct {
	Type        string           `json:"type"`
	Category    string           `json:"category"`
	Amount      *decimal.Decimal `json:"amount"`
	Description string           `json:"description"`
	Date        *time.Time       `json:"date"`
}

// validate rejects payloads without an amount. A zero-valued amount would
// otherwise be indistinguishable from an absent field.
func (req *transactionRequest) validate() error {
	if req.Amount == nil {
		return financeErrors.NewValidationError("Amount must be a positive number")
	}
	return nil
}

func (req *transactionRequest) toDomain() *domain.Transaction {
	transaction := &domain.Transaction{
		Type:        req.Type,
		Category:    req.Category,
		Description: req.Description,
	}
	if req.Amount != nil {
		transaction.Amount = *req.Amount
	}
	if req.Date != nil {
		transaction.Date = *req.Date
	}
	return transaction
}

type TransactionHandler struct {
	service      TransactionServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewTransactionHandler(
	service TransactionServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *TransactionHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &TransactionHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.validate(); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	transaction := req.toDomain()
	transaction.UserID = userID
	if err := h.service.CreateTransaction(transaction); err != nil {
		if financeErrors.IsValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.respondError(w, http.StatusInternalServerError, "Failed to create transaction")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Transaction created successfully",
		"data":    transaction,
	})
}

func (h *TransactionHandler) GetUserTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	page := 1
	limit := 0
	var err error
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		page, err = strconv.Atoi(pageStr)
		if err != nil || page <= 0 {
			h.respondError(w, http.StatusBadRequest, "Invalid page value")
			return
		}
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			h.respondError(w, http.StatusBadRequest, "Invalid limit value")
			return
		}
	}

	transactions, total, totalPages, err := h.service.GetUserTransactions(userID, page, limit)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve transactions")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transactions retrieved successfully",
		"data": map[string]interface{}{
			"transactions":      transactions,
			"currentPage":       page,
			"totalPages":        totalPages,
			"totalTransactions": total,
		},
	})
}

func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	transactionID := r.PathValue("transactionID")

	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.validate(); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	transaction, err := h.service.UpdateTransaction(userID, transactionID, req.toDomain())
	if err != nil {
		switch {
		case errors.Is(err, financeErrors.ErrTransactionNotFound):
			h.respondError(w, http.StatusNotFound, "Transaction not found")
		case financeErrors.IsValidationError(err):
			h.respondError(w, http.StatusBadRequest, err.Error())
		default:
			h.respondError(w, http.StatusInternalServerError, "Failed to update transaction")
		}
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transaction updated successfully",
		"data":    transaction,
	})
}

func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	transactionID := r.PathValue("transactionID")

	if err := h.service.DeleteTransaction(userID, transactionID); err != nil {
		if errors.Is(err, financeErrors.ErrTransactionNotFound) {
			h.respondError(w, http.StatusNotFound, "Transaction not found")
			return
		}
		h.respondError(w, http.StatusInternalServerError, "Failed to delete transaction")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transaction deleted successfully",
	})
}
