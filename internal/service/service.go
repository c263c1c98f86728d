package service

import (
	"errors"
	"fmt"

	"github.com/dexterminal/api/internal/auth"
	"github.com/dexterminal/api/internal/config"
	"github.com/dexterminal/api/internal/models"
	"github.com/dexterminal/api/internal/repository"
	"github.com/dexterminal/api/internal/utils/email"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

// Service handles business logic
type Service struct {
	repo   *repository.Repository
	log    *logrus.Logger
	config *config.Config
	mailer *email.Sender
}

// NewService initializes a new service. mailer may be nil to disable
// registration emails.
func NewService(repo *repository.Repository, log *logrus.Logger, cfg *config.Config, mailer *email.Sender) *Service {
	return &Service{repo: repo, log: log, config: cfg, mailer: mailer}
}

// Register creates a new user with a hashed password and issues a
// session token for it.
func (s *Service) Register(username, email, password string) (string, *models.User, error) {
	if username == "" || email == "" || password == "" {
		return "", nil, &ValidationError{Message: "All fields are required"}
	}
	if len(password) < minPasswordLength {
		return "", nil, &ValidationError{Message: "Password must be at least 6 characters"}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	if err := s.repo.CreateUser(user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return "", nil, &ConflictError{Message: "Username or email already exists"}
		}
		return "", nil, err
	}

	token, err := auth.GenerateToken(user, []byte(s.config.JWTSecret), auth.TokenValidity)
	if err != nil {
		return "", nil, err
	}

	s.log.Infof("User registered: %s", user.Email)
	s.sendWelcomeMail(user)
	return token, user, nil
}

// Login authenticates a user by email and password and issues a session
// token. Unknown email and wrong password produce the same error.
func (s *Service) Login(email, password string) (string, *models.User, error) {
	if email == "" || password == "" {
		return "", nil, &ValidationError{Message: "Email and password are required"}
	}

	user, err := s.repo.FindUserByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, &AuthError{Message: "Invalid credentials"}
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, &AuthError{Message: "Invalid credentials"}
	}

	token, err := auth.GenerateToken(user, []byte(s.config.JWTSecret), auth.TokenValidity)
	if err != nil {
		return "", nil, err
	}

	s.log.Infof("User logged in: %s", user.Email)
	return token, user, nil
}

// VerifyToken validates a session token and returns its claims.
func (s *Service) VerifyToken(tokenString string) (*auth.Claims, error) {
	claims, err := auth.ParseToken(tokenString, []byte(s.config.JWTSecret))
	if err != nil {
		return nil, &AuthError{Message: "Invalid token"}
	}
	return claims, nil
}

// SeedAdmin idempotently ensures the configured admin account exists.
// A username already held by another account is logged and skipped so a
// misconfigured seed never blocks startup.
func (s *Service) SeedAdmin(username, adminEmail, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	if err := s.repo.UpsertAdmin(username, adminEmail, string(hashedPassword)); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			s.log.Warnf("Admin username %s already taken by another account, skipping seed", username)
			return nil
		}
		return err
	}
	s.log.Infof("Admin account ensured: %s", adminEmail)
	return nil
}

// Stats returns aggregate usage counts.
func (s *Service) Stats() (*models.Stats, error) {
	return s.repo.Stats()
}

func (s *Service) sendWelcomeMail(user *models.User) {
	if s.mailer == nil || !s.mailer.Enabled() {
		return
	}
	go func(to, name string) {
		if err := s.mailer.SendWelcome(to, name); err != nil {
			s.log.Warnf("Failed to send welcome email to %s: %v", to, err)
		}
	}(user.Email, user.Username)
}
