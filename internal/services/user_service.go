package services

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/amanv05/second-brain-backend/internal/models"
)

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	CreateUser(username, password string) (models.User, error)
	AuthenticateUser(username, password string) (models.User, error)
	GetUserByID(id string) (models.User, error)
}

// UserService provides business logic for user accounts.
type UserService struct {
	db   *sql.DB
	cost int
}

// NewUserService creates a new UserService with the given bcrypt cost.
func NewUserService(db *sql.DB, bcryptCost int) *UserService {
	return &UserService{db: db, cost: bcryptCost}
}

// CreateUser creates a new user, hashing their password. Returns
// ErrUsernameTaken when the username is already registered; the users table
// UNIQUE constraint backstops the check against concurrent signups.
func (s *UserService) CreateUser(username, password string) (models.User, error) {
	var existing string
	err := s.db.QueryRow("SELECT id FROM users WHERE username = ?", username).Scan(&existing)
	if err == nil {
		return models.User{}, ErrUsernameTaken
	}
	if err != sql.ErrNoRows {
		return models.User{}, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:       uuid.New().String(),
		Username: username,
	}

	_, err = s.db.Exec("INSERT INTO users(id, username, password_hash) VALUES(?, ?, ?)",
		user.ID, user.Username, string(hashedPassword))
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrUsernameTaken
		}
		return models.User{}, err
	}

	return user, nil
}

// AuthenticateUser verifies a user's credentials. Unknown usernames and wrong
// passwords both return ErrInvalidCredentials.
func (s *UserService) AuthenticateUser(username, password string) (models.User, error) {
	var user models.User
	var passwordHash string
	row := s.db.QueryRow("SELECT id, username, password_hash FROM users WHERE username = ?", username)
	err := row.Scan(&user.ID, &user.Username, &passwordHash)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// GetUserByID retrieves a single user by their ID.
func (s *UserService) GetUserByID(id string) (models.User, error) {
	var user models.User
	row := s.db.QueryRow("SELECT id, username FROM users WHERE id = ?", id)
	err := row.Scan(&user.ID, &user.Username)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}
