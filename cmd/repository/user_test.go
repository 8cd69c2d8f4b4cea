package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fidellopezm03/giakiemso-backend/cmd/model"
)

const userID = "0d9c6f32-3f1a-4c55-b0a4-2b6d0c1e9a77"

func TestUserFindByEmailNormalizes(t *testing.T) {
	conn, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
		WithArgs("owner@shop.vn").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "password_hash", "created_at"}).
			AddRow(userID, "owner@shop.vn", "Chủ shop", "$2a$10$hash", time.Now()))

	u, err := NewUserRepo(conn).FindByEmail(context.Background(), "  Owner@Shop.VN ")
	require.NoError(t, err)
	assert.Equal(t, userID, u.ID)
	assert.Equal(t, "$2a$10$hash", u.PasswordHash)
}

func TestUserFindByEmailMissing(t *testing.T) {
	conn, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "password_hash", "created_at"}))

	_, err := NewUserRepo(conn).FindByEmail(context.Background(), "ghost@shop.vn")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserCreateDuplicate(t *testing.T) {
	conn, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(sqlmock.AnyArg(), "owner@shop.vn", "", "hash").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})

	err := NewUserRepo(conn).Create(context.Background(), &model.User{Email: "Owner@shop.vn", PasswordHash: "hash"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserUpdatePassword(t *testing.T) {
	conn, mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET password_hash = $1 WHERE id = $2")).
		WithArgs("newhash", userID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, NewUserRepo(conn).UpdatePassword(context.Background(), userID, "newhash"))
}

func TestUserCreateOtherErrorIsNotDuplicate(t *testing.T) {
	conn, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(&pq.Error{Code: "23502", Message: "duplicate key in message only"})

	err := NewUserRepo(conn).Create(context.Background(), &model.User{Email: "a@shop.vn", PasswordHash: "hash"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmailTaken)
}
