package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/dexterminal/api/internal/models"
)

// ListFavorites returns the user's favorites, newest-first.
func (r *Repository) ListFavorites(userID int) ([]models.Favorite, error) {
	query := `
		SELECT id, user_id, token_address, chain_id,
		       COALESCE(token_name, ''), COALESCE(token_symbol, ''), COALESCE(token_logo, ''),
		       created_at
		FROM favorites
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer rows.Close()

	favorites := []models.Favorite{}
	for rows.Next() {
		var f models.Favorite
		if err := rows.Scan(&f.ID, &f.UserID, &f.TokenAddress, &f.ChainID,
			&f.TokenName, &f.TokenSymbol, &f.TokenLogo, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		favorites = append(favorites, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return favorites, nil
}

// AddFavorite inserts the favorite if it is not already present.
// On a duplicate the existing row's id and timestamp are loaded instead,
// so a re-add reports the row that already exists.
func (r *Repository) AddFavorite(f *models.Favorite) error {
	query := `
		INSERT INTO favorites (user_id, token_address, chain_id, token_name, token_symbol, token_logo)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, token_address, chain_id) DO NOTHING
		RETURNING id, created_at`
	err := r.db.QueryRow(query, f.UserID, f.TokenAddress, f.ChainID,
		f.TokenName, f.TokenSymbol, f.TokenLogo).
		Scan(&f.ID, &f.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		lookup := `
			SELECT id, created_at
			FROM favorites
			WHERE user_id = $1 AND token_address = $2 AND chain_id = $3`
		err = r.db.QueryRow(lookup, f.UserID, f.TokenAddress, f.ChainID).
			Scan(&f.ID, &f.CreatedAt)
	}
	if err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

// RemoveFavorite deletes the matching row. Removing an absent favorite
// is not an error.
func (r *Repository) RemoveFavorite(userID int, tokenAddress, chainID string) error {
	query := `
		DELETE FROM favorites
		WHERE user_id = $1 AND token_address = $2 AND chain_id = $3`
	if _, err := r.db.Exec(query, userID, tokenAddress, chainID); err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

// HasFavorite reports whether the user already favorited the token.
func (r *Repository) HasFavorite(userID int, tokenAddress, chainID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM favorites
			WHERE user_id = $1 AND token_address = $2 AND chain_id = $3
		)`
	var exists bool
	if err := r.db.QueryRow(query, userID, tokenAddress, chainID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return exists, nil
}

// ListAllFavorites returns every favorite joined with the owning
// username, newest-first. Admin use only.
func (r *Repository) ListAllFavorites() ([]models.FavoriteWithUser, error) {
	query := `
		SELECT f.id, f.user_id, f.token_address, f.chain_id,
		       COALESCE(f.token_name, ''), COALESCE(f.token_symbol, ''), COALESCE(f.token_logo, ''),
		       f.created_at, u.username
		FROM favorites f
		JOIN users u ON f.user_id = u.id
		ORDER BY f.created_at DESC, f.id DESC`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list all favorites: %w", err)
	}
	defer rows.Close()

	favorites := []models.FavoriteWithUser{}
	for rows.Next() {
		var f models.FavoriteWithUser
		if err := rows.Scan(&f.ID, &f.UserID, &f.TokenAddress, &f.ChainID,
			&f.TokenName, &f.TokenSymbol, &f.TokenLogo, &f.CreatedAt, &f.Username); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		favorites = append(favorites, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list all favorites: %w", err)
	}
	return favorites, nil
}
