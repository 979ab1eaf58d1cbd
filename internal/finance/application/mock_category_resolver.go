package application

// MockCategoryResolver is used by transaction service tests.
type MockCategoryResolver struct {
	Exists bool
	Err    error
}

func (m *MockCategoryResolver) DoesCategoryExist(userID, name, categoryType string) (bool, error) {
	return m.Exists, m.Err
}
