package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testRespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func testRespondError(w http.ResponseWriter, status int, message string) {
	testRespondJSON(w, status, map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	})
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.NewDecoder(recorder.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return body
}

func TestHandleRegister_Success(t *testing.T) {
	service, _ := newAuthServiceForTest()
	handler := NewHandler(service, testRespondJSON, testRespondError)

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/register",
		strings.NewReader(`{"email":"user@example.com","login":"newlogin","password":"password123"}`))
	handler.HandleRegister(recorder, req)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, "success", body["status"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "newlogin", user["login"])
	// The hash must never leak into the response.
	_, leaked := user["PasswordHash"]
	assert.False(t, leaked)
}

func TestHandleRegister_ValidationErrors(t *testing.T) {
	service, _ := newAuthServiceForTest()
	handler := NewHandler(service, testRespondJSON, testRespondError)

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/register",
		strings.NewReader(`{"email":"bad","login":"newlogin","password":"password123"}`))
	handler.HandleRegister(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, ErrInvalidEmail.Error(), decodeBody(t, recorder)["message"])
}

func TestHandleLogin_Success(t *testing.T) {
	service, _ := newAuthServiceForTest()
	_, err := service.Register("user@example.com", "newlogin", "password123")
	assert.NoError(t, err)
	handler := NewHandler(service, testRespondJSON, testRespondError)

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"loginOrEmail":"newlogin","password":"password123"}`))
	handler.HandleLogin(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, "signed-token", body["token"])
}

func TestHandleLogin_InvalidCredentials(t *testing.T) {
	service, _ := newAuthServiceForTest()
	handler := NewHandler(service, testRespondJSON, testRespondError)

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"loginOrEmail":"nobody","password":"password123"}`))
	handler.HandleLogin(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
