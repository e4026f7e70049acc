package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ujjwal-9/ordering-agent/entity"
	"github.com/ujjwal-9/ordering-agent/repository"
)

func TestAuthServiceLogin(t *testing.T) {
	db := testDB(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&entity.AdminUser{Username: "admin", Password: string(hash), Role: "admin"}).Error)

	svc := NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)

	result, err := svc.Login("admin", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "admin", result.User.Role)

	_, err = svc.Login("admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("nobody", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
