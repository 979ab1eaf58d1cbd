package interfaces

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/FinanceTracker/internal/finance/errors"
)

type CategoryServiceInterface interface {
	GetUserCategories(userID string) ([]domain.Category, error)
	CreateCategory(userID string, category *domain.Category) error
	UpdateCategory(userID, categoryID string, fields domain.Category) (*domain.Category, error)
	DeleteCategory(userID, categoryID string) error
	GetCategoryUsage(userID, categoryID string) (*domain.Category, *domain.CategoryUsage, error)
}

type categoryRequest struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

type CategoryHandler struct {
	service      CategoryServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewCategoryHandler(
	service CategoryServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *CategoryHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &CategoryHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	categories, err := h.service.GetUserCategories(userID)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve categories")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "success",
		"message":    "Categories retrieved successfully",
		"categories": categories,
	})
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category := &domain.Category{Name: req.Name, Type: req.Type, Icon: req.Icon, Color: req.Color}
	if err := h.service.CreateCategory(userID, category); err != nil {
		switch {
		case errors.Is(err, financeErrors.ErrCategoryExists):
			h.respondError(w, http.StatusBadRequest, "Category already exists")
		case financeErrors.IsValidationError(err):
			h.respondError(w, http.StatusBadRequest, err.Error())
		default:
			h.respondError(w, http.StatusInternalServerError, "Failed to create category")
		}
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":   "success",
		"message":  "Category created successfully",
		"category": category,
	})
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	categoryID := r.PathValue("categoryID")

	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.service.UpdateCategory(userID, categoryID, domain.Category{
		Name: req.Name, Type: req.Type, Icon: req.Icon, Color: req.Color,
	})
	if err != nil {
		switch {
		case errors.Is(err, financeErrors.ErrCategoryNotFound):
			h.respondError(w, http.StatusNotFound, "Category not found")
		case errors.Is(err, financeErrors.ErrDefaultCategory):
			h.respondError(w, http.StatusBadRequest, "Cannot edit default categories")
		case errors.Is(err, financeErrors.ErrCategoryExists):
			h.respondError(w, http.StatusBadRequest, "Category already exists")
		case financeErrors.IsValidationError(err):
			h.respondError(w, http.StatusBadRequest, err.Error())
		default:
			h.respondError(w, http.StatusInternalServerError, "Failed to update category")
		}
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "success",
		"message":  "Category updated successfully",
		"category": category,
	})
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	categoryID := r.PathValue("categoryID")

	if err := h.service.DeleteCategory(userID, categoryID); err != nil {
		if inUseErr, ok := financeErrors.IsCategoryInUseError(err); ok {
			h.respondJSON(w, http.StatusBadRequest, map[string]interface{}{
				"status":           "error",
				"message":          "Cannot delete category that is used in transactions",
				"code":             http.StatusBadRequest,
				"transactionCount": inUseErr.Count,
			})
			return
		}
		switch {
		case errors.Is(err, financeErrors.ErrCategoryNotFound):
			h.respondError(w, http.StatusNotFound, "Category not found")
		case errors.Is(err, financeErrors.ErrDefaultCategory):
			h.respondError(w, http.StatusBadRequest, "Cannot delete default categories")
		default:
			h.respondError(w, http.StatusInternalServerError, "Failed to delete category")
		}
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Category deleted successfully",
	})
}

func (h *CategoryHandler) GetCategoryUsage(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	categoryID := r.PathValue("categoryID")

	category, usage, err := h.service.GetCategoryUsage(userID, categoryID)
	if err != nil {
		if errors.Is(err, financeErrors.ErrCategoryNotFound) {
			h.respondError(w, http.StatusNotFound, "Category not found")
			return
		}
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve category usage")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "success",
		"message":  "Category usage retrieved successfully",
		"category": category,
		"usage":    usage,
	})
}
