package auth

// MockUserRepository keeps users in memory for service and middleware tests.
type MockUserRepository struct {
	Users []*User
	Err   error
}

func (m *MockUserRepository) createUser(user *User) error {
	if m.Err != nil {
		return m.Err
	}
	m.Users = append(m.Users, user)
	return nil
}

func (m *MockUserRepository) getUserByID(id string) (*User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, user := range m.Users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, ErrUserNotFound
}

func (m *MockUserRepository) getUserByLoginOrEmail(loginOrEmail string) (*User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, user := range m.Users {
		if user.Login == loginOrEmail || user.Email == loginOrEmail {
			return user, nil
		}
	}
	return nil, ErrUserNotFound
}

func (m *MockUserRepository) userExistsByLoginOrEmail(login, email string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	for _, user := range m.Users {
		if user.Login == login || user.Email == email {
			return true, nil
		}
	}
	return false, nil
}
