package repository

import (
	"database/sql"
	"fmt"

	"github.com/dexterminal/api/internal/models"
)

// CreateUser inserts a new user with role 'user' and fills in the
// generated fields. Returns ErrDuplicate when username or email is taken.
func (r *Repository) CreateUser(user *models.User) error {
	query := `
		INSERT INTO users (username, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, role, created_at`
	err := r.db.QueryRow(query, user.Username, user.Email, user.PasswordHash).
		Scan(&user.ID, &user.Role, &user.CreatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindUserByEmail retrieves a user by email
func (r *Repository) FindUserByEmail(email string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, username, email, password_hash, role, created_at
		FROM users
		WHERE email = $1`
	err := r.db.QueryRow(query, email).
		Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// ListUsers returns all users' public fields, newest-first.
func (r *Repository) ListUsers() ([]models.User, error) {
	query := `
		SELECT id, username, email, role, created_at
		FROM users
		ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.Role, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// DeleteUser removes a user row; favorites cascade at the schema level.
func (r *Repository) DeleteUser(id int) error {
	if _, err := r.db.Exec(`DELETE FROM users WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// UpdateUserRole sets the role of the given user.
func (r *Repository) UpdateUserRole(id int, role string) error {
	if _, err := r.db.Exec(`UPDATE users SET role = $1 WHERE id = $2`, role, id); err != nil {
		return fmt.Errorf("failed to update user role: %w", err)
	}
	return nil
}

// UpsertAdmin ensures an admin account with the given email exists.
// An existing account keeps its password; only the role is enforced.
// Returns ErrDuplicate when the username belongs to a different account,
// since the email conflict is already absorbed by the upsert.
func (r *Repository) UpsertAdmin(username, email, passwordHash string) error {
	query := `
		INSERT INTO users (username, email, password_hash, role)
		VALUES ($1, $2, $3, 'admin')
		ON CONFLICT (email) DO UPDATE SET role = 'admin'`
	_, err := r.db.Exec(query, username, email, passwordHash)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("failed to upsert admin: %w", err)
	}
	return nil
}

// Stats returns aggregate user and favorite counts.
func (r *Repository) Stats() (*models.Stats, error) {
	stats := &models.Stats{}
	query := `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM favorites)`
	if err := r.db.QueryRow(query).Scan(&stats.TotalUsers, &stats.TotalFavorites); err != nil {
		return nil, fmt.Errorf("failed to load stats: %w", err)
	}
	return stats, nil
}
