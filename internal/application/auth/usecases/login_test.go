package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luma/internal/infrastructure/auth"
	"luma/internal/shared/errors"
	"luma/internal/shared/logger"
)

type nopLogger struct{}

func (l *nopLogger) Debug(msg string, args ...any)                   {}
func (l *nopLogger) Info(msg string, args ...any)                    {}
func (l *nopLogger) Warn(msg string, args ...any)                    {}
func (l *nopLogger) Error(msg string, args ...any)                   {}
func (l *nopLogger) With(args ...any) logger.Interface               { return l }
func (l *nopLogger) Named(name string) logger.Interface              { return l }
func (l *nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (l *nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func newLoginUseCase(t *testing.T, password string) *LoginUseCase {
	t.Helper()
	hasher := auth.NewBcryptPasswordHasher(4)
	hash := ""
	if password != "" {
		var err error
		hash, err = hasher.Hash(password)
		require.NoError(t, err)
	}
	return NewLoginUseCase(hash, hasher, auth.NewJWTService("test-secret", 60), &nopLogger{})
}

func TestLoginUseCase_Success(t *testing.T) {
	uc := newLoginUseCase(t, "s3cret")

	result, err := uc.Execute(context.Background(), LoginCommand{Password: "s3cret"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.Equal(t, "Bearer", result.TokenType)
	assert.Equal(t, int64(3600), result.ExpiresIn)

	claims, err := auth.NewJWTService("test-secret", 60).Verify(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
}

func TestLoginUseCase_WrongPassword(t *testing.T) {
	uc := newLoginUseCase(t, "s3cret")

	_, err := uc.Execute(context.Background(), LoginCommand{Password: "wrong"})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
}

func TestLoginUseCase_NotConfigured(t *testing.T) {
	uc := newLoginUseCase(t, "")

	_, err := uc.Execute(context.Background(), LoginCommand{Password: "anything"})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
}
