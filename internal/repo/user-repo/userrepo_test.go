package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/mkarenzi/ikimina/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_FindByLogin(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		login     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "User found",
			login: "organizer",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "login", "phone", "password_hash"}).
					AddRow(1, "organizer", "+250788000001", "hashed_password")
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, login, phone, password_hash FROM users WHERE login = $1")).
					WithArgs("organizer").
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.User{
				ID:           1,
				Login:        "organizer",
				Phone:        "+250788000001",
				PasswordHash: "hashed_password",
			},
		},
		{
			name:  "User not found",
			login: "missing",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, login, phone, password_hash FROM users WHERE login = $1")).
					WithArgs("missing").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:  "Query error",
			login: "organizer",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, login, phone, password_hash FROM users WHERE login = $1")).
					WithArgs("organizer").
					WillReturnError(errors.New("query error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			user, err := repo.FindByLogin(context.Background(), tt.login)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, user)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:   "User found",
			userID: 1,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "login", "phone", "password_hash"}).
					AddRow(1, "organizer", "+250788000001", "hashed_password")
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, login, phone, password_hash FROM users WHERE id = $1")).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.User{
				ID:           1,
				Login:        "organizer",
				Phone:        "+250788000001",
				PasswordHash: "hashed_password",
			},
		},
		{
			name:   "User not found",
			userID: 99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, login, phone, password_hash FROM users WHERE id = $1")).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			user, err := repo.FindByID(context.Background(), tt.userID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, user)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		user      *domain.User
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Create success",
			user: &domain.User{Login: "organizer", Phone: "+250788000001", PasswordHash: "hashed_password"},
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id"}).AddRow(1)
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (login, phone, password_hash)")).
					WithArgs("organizer", "+250788000001", "hashed_password").
					WillReturnRows(rows)
			},
			expectErr: false,
		},
		{
			name: "Create error",
			user: &domain.User{Login: "organizer", Phone: "+250788000001", PasswordHash: "hashed_password"},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (login, phone, password_hash)")).
					WithArgs("organizer", "+250788000001", "hashed_password").
					WillReturnError(errors.New("insert error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			user, err := repo.Create(context.Background(), tt.user)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, user.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
