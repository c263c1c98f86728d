package service

import (
	"database/sql"
	"io"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dexterminal/api/internal/auth"
	"github.com/dexterminal/api/internal/config"
	"github.com/dexterminal/api/internal/models"
	"github.com/dexterminal/api/internal/repository"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func newServiceWithMock(t *testing.T) (*Service, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	cfg := &config.Config{JWTSecret: testSecret}
	svc := NewService(repository.NewRepository(db), logger, cfg, nil)
	return svc, mock, db
}

func TestRegister_ShortPassword(t *testing.T) {
	svc, mock, db := newServiceWithMock(t)
	defer db.Close()

	_, _, err := svc.Register("alice", "a@x.com", "short")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Password must be at least 6 characters", ve.Message)
	assert.NoError(t, mock.ExpectationsWereMet(), "no row must be created")
}

func TestRegister_MissingFields(t *testing.T) {
	svc, mock, db := newServiceWithMock(t)
	defer db.Close()

	for _, args := range [][3]string{
		{"", "a@x.com", "secret1"},
		{"alice", "", "secret1"},
		{"alice", "a@x.com", ""},
	} {
		_, _, err := svc.Register(args[0], args[1], args[2])
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "All fields are required", ve.Message)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_Success(t *testing.T) {
	svc, mock, db := newServiceWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "role", "created_at"}).
		AddRow(1, "user", time.Now())
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("alice", "a@x.com", sqlmock.AnyArg()).
		WillReturnRows(rows)

	token, user, err := svc.Register("alice", "a@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	assert.Equal(t, models.RoleUser, user.Role)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, models.RoleUser, claims.Role)
}

func TestRegister_Duplicate(t *testing.T) {
	svc, mock, db := newServiceWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("alice", "a@x.com", sqlmock.AnyArg()).
		WillReturnError(&pq.Error{Code: "23505"})

	_, _, err := svc.Register("alice", "a@x.com", "secret1")
	var ce *ConflictError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "Username or email already exists", ce.Message)
}

func userRow(t *testing.T, id int, username, email, password, role string) *sqlmock.Rows {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "role", "created_at"}).
		AddRow(id, username, email, string(hash), role, time.Now())
}

func TestLogin_Success(t *testing.T) {
	svc, mock, db := newServiceWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, username, email, password_hash`).
		WithArgs("a@x.com").
		WillReturnRows(userRow(t, 1, "alice", "a@x.com", "secret1", "user"))

	token, user, err := svc.Login("a@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

// Wrong password and unknown email must be indistinguishable.
func TestLogin_InvalidCredentials(t *testing.T) {
	svc, mock, db := newServiceWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, username, email, password_hash`).
		WithArgs("a@x.com").
		WillReturnRows(userRow(t, 1, "alice", "a@x.com", "secret1", "user"))
	_, _, wrongPassErr := svc.Login("a@x.com", "wrong")

	mock.ExpectQuery(`SELECT id, username, email, password_hash`).
		WithArgs("ghost@x.com").
		WillReturnError(sql.ErrNoRows)
	_, _, unknownErr := svc.Login("ghost@x.com", "secret1")

	var ae *AuthError
	require.ErrorAs(t, wrongPassErr, &ae)
	require.ErrorAs(t, unknownErr, &ae)
	assert.Equal(t, wrongPassErr.Error(), unknownErr.Error())
}

func TestLogin_MissingFields(t *testing.T) {
	svc, _, db := newServiceWithMock(t)
	defer db.Close()

	_, _, err := svc.Login("", "secret1")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Email and password are required", ve.Message)
}

func TestVerifyToken_Expired(t *testing.T) {
	svc, _, db := newServiceWithMock(t)
	defer db.Close()

	user := &models.User{ID: 1, Username: "alice", Email: "a@x.com", Role: "user"}
	token, err := auth.GenerateToken(user, []byte(testSecret), -time.Hour)
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	var ae *AuthError
	require.ErrorAs(t, err, &ae)
}

func TestDeleteUser_Self(t *testing.T) {
	svc, mock, db := newServiceWithMock(t)
	defer db.Close()

	err := svc.DeleteUser(5, 5)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Cannot delete your own account", ve.Message)
	assert.NoError(t, mock.ExpectationsWereMet(), "no delete must be issued")
}

func TestDeleteUser_Other(t *testing.T) {
	svc, mock, db := newServiceWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM users`).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, svc.DeleteUser(5, 7))
}

func TestSetUserRole_InvalidRole(t *testing.T) {
	svc, _, db := newServiceWithMock(t)
	defer db.Close()

	err := svc.SetUserRole(5, 7, "superuser")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Invalid role", ve.Message)
}

func TestSetUserRole_Self(t *testing.T) {
	svc, _, db := newServiceWithMock(t)
	defer db.Close()

	err := svc.SetUserRole(5, 5, "user")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Cannot change your own role", ve.Message)
}

func TestSetUserRole_Success(t *testing.T) {
	svc, mock, db := newServiceWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE users SET role`).
		WithArgs("admin", 7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, svc.SetUserRole(5, 7, "admin"))
}

func TestSeedAdmin(t *testing.T) {
	svc, mock, db := newServiceWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO users`).
		WithArgs("admin", "ops@x.com", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, svc.SeedAdmin("admin", "ops@x.com", "strong-password"))
}

// A username collision with an existing account must not fail startup.
func TestSeedAdmin_UsernameTaken(t *testing.T) {
	svc, mock, db := newServiceWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO users`).
		WithArgs("admin", "ops@x.com", sqlmock.AnyArg()).
		WillReturnError(&pq.Error{Code: "23505"})

	require.NoError(t, svc.SeedAdmin("admin", "ops@x.com", "strong-password"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddFavorite_MissingFields(t *testing.T) {
	svc, mock, db := newServiceWithMock(t)
	defer db.Close()

	_, err := svc.AddFavorite(1, "", "0x1", "", "", "")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NoError(t, mock.ExpectationsWereMet())
}
