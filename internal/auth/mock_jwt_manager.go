package auth

import "time"

type MockJWTManager struct {
	Token       string
	UserID      string
	GenerateErr error
	ValidateErr error
}

func (m *MockJWTManager) GenerateAccessJWT(userID string, duration time.Duration) (string, error) {
	if m.GenerateErr != nil {
		return "", m.GenerateErr
	}
	return m.Token, nil
}

func (m *MockJWTManager) ValidateAccessToken(tokenString string) (string, error) {
	if m.ValidateErr != nil {
		return "", m.ValidateErr
	}
	return m.UserID, nil
}
