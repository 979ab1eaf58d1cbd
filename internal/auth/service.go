package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/badoux/checkmail"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	maxEmailLength = 35
	minEmailLength = 3
	maxLoginLength = 30
	minLoginLength = 5
	minPasswordLen = 8
	bcryptCost     = 12
)

var (
	ErrInvalidEmail       = errors.New("email address is not valid")
	ErrInvalidLogin       = errors.New("login must be between 5 and 30 characters")
	ErrInvalidPassword    = errors.New("password must be at least 8 characters long")
	ErrUserAlreadyExists  = errors.New("user with this login or email already exists")
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrInternalError      = errors.New("internal Server Error")
)

type Service interface {
	Register(email, login, password string) (*User, error)
	Login(loginOrEmail, password string) (string, *User, error)
	GetUserByID(userID string) (*User, error)
	JWTAccessTokenMiddleware() func(http.Handler) http.Handler
}

type service struct {
	repo       Repository
	jwtManager JWTManagerInterface
}

func NewAuthService(repo Repository, jwtManager JWTManagerInterface) Service {
	return &service{
		repo:       repo,
		jwtManager: jwtManager,
	}
}

func hashPassword(password string) (string, error) {
	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(hashedPasswordBytes), err
}

func validateEmailAddress(email string) error {
	if err := checkmail.ValidateFormat(email); err != nil {
		return ErrInvalidEmail
	}
	if len(email) > maxEmailLength || len(email) <= minEmailLength {
		return ErrInvalidEmail
	}
	return nil
}

func (s *service) Register(email, login, password string) (*User, error) {
	email = strings.TrimSpace(email)
	login = strings.TrimSpace(login)

	if err := validateEmailAddress(email); err != nil {
		return nil, err
	}
	if len(login) < minLoginLength || len(login) > maxLoginLength {
		return nil, ErrInvalidLogin
	}
	if len(password) < minPasswordLen {
		return nil, ErrInvalidPassword
	}

	exists, err := s.repo.userExistsByLoginOrEmail(login, email)
	if err != nil {
		return nil, ErrInternalError
	}
	if exists {
		return nil, ErrUserAlreadyExists
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, ErrInternalError
	}

	user := &User{
		ID:           uuid.NewString(),
		Email:        email,
		Login:        login,
		PasswordHash: passwordHash,
	}
	if err := s.repo.createUser(user); err != nil {
		return nil, ErrInternalError
	}
	return user, nil
}

func (s *service) Login(loginOrEmail, password string) (string, *User, error) {
	user, err := s.repo.getUserByLoginOrEmail(strings.TrimSpace(loginOrEmail))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, ErrInternalError
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateAccessJWT(user.ID, defaultJWTDuration)
	if err != nil {
		return "", nil, ErrInternalError
	}
	return token, user, nil
}

func (s *service) GetUserByID(userID string) (*User, error) {
	return s.repo.getUserByID(userID)
}
