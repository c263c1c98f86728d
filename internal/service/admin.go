package service

import "github.com/dexterminal/api/internal/models"

// ListUsers returns all users' public fields, newest-first.
func (s *Service) ListUsers() ([]models.User, error) {
	return s.repo.ListUsers()
}

// ListAllFavorites returns every favorite joined with its owner's name.
func (s *Service) ListAllFavorites() ([]models.FavoriteWithUser, error) {
	return s.repo.ListAllFavorites()
}

// DeleteUser removes a user and, via the schema, their favorites.
// Admins cannot delete their own account.
func (s *Service) DeleteUser(callerID, id int) error {
	if id == callerID {
		return &ValidationError{Message: "Cannot delete your own account"}
	}
	if err := s.repo.DeleteUser(id); err != nil {
		return err
	}
	s.log.Infof("User deleted: %d", id)
	return nil
}

// SetUserRole updates another user's role. Admins cannot change their
// own role.
func (s *Service) SetUserRole(callerID, id int, role string) error {
	if !models.ValidRole(role) {
		return &ValidationError{Message: "Invalid role"}
	}
	if id == callerID {
		return &ValidationError{Message: "Cannot change your own role"}
	}
	if err := s.repo.UpdateUserRole(id, role); err != nil {
		return err
	}
	s.log.Infof("User %d role set to %s", id, role)
	return nil
}
