package service

import "github.com/dexterminal/api/internal/models"

// ListFavorites returns the caller's favorites, newest-first.
func (s *Service) ListFavorites(userID int) ([]models.Favorite, error) {
	return s.repo.ListFavorites(userID)
}

// AddFavorite saves a token for the caller. Adding a favorite that
// already exists is a success and returns the existing row's id.
func (s *Service) AddFavorite(userID int, tokenAddress, chainID, tokenName, tokenSymbol, tokenLogo string) (int, error) {
	if tokenAddress == "" || chainID == "" {
		return 0, &ValidationError{Message: "Token address and chain are required"}
	}

	favorite := &models.Favorite{
		UserID:       userID,
		TokenAddress: tokenAddress,
		ChainID:      chainID,
		TokenName:    tokenName,
		TokenSymbol:  tokenSymbol,
		TokenLogo:    tokenLogo,
	}
	if err := s.repo.AddFavorite(favorite); err != nil {
		return 0, err
	}

	s.log.Infof("Favorite added for user %d: %s on %s", userID, tokenAddress, chainID)
	return favorite.ID, nil
}

// RemoveFavorite deletes the caller's favorite. Removing an absent
// favorite is a success.
func (s *Service) RemoveFavorite(userID int, tokenAddress, chainID string) error {
	if err := s.repo.RemoveFavorite(userID, tokenAddress, chainID); err != nil {
		return err
	}
	s.log.Infof("Favorite removed for user %d: %s on %s", userID, tokenAddress, chainID)
	return nil
}

// IsFavorite reports whether the caller already favorited the token.
func (s *Service) IsFavorite(userID int, tokenAddress, chainID string) (bool, error) {
	return s.repo.HasFavorite(userID, tokenAddress, chainID)
}
