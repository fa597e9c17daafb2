// Package usecases implements back-office authentication. There is a single
// operator account; its credential is a bcrypt hash carried in config.
package usecases

import (
	"context"

	"luma/internal/infrastructure/auth"
	"luma/internal/shared/errors"
	"luma/internal/shared/logger"
)

const adminSubject = "admin"

type LoginCommand struct {
	Password string
}

type LoginResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type LoginUseCase struct {
	passwordHash string
	hasher       *auth.BcryptPasswordHasher
	jwtService   *auth.JWTService
	logger       logger.Interface
}

func NewLoginUseCase(passwordHash string, hasher *auth.BcryptPasswordHasher, jwtService *auth.JWTService, logger logger.Interface) *LoginUseCase {
	return &LoginUseCase{
		passwordHash: passwordHash,
		hasher:       hasher,
		jwtService:   jwtService,
		logger:       logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if uc.passwordHash == "" {
		uc.logger.Warnw("admin login attempted but no password hash is configured")
		return nil, errors.NewUnauthorizedError("admin login is not configured")
	}

	if err := uc.hasher.Verify(cmd.Password, uc.passwordHash); err != nil {
		uc.logger.Warnw("admin login failed")
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	token, err := uc.jwtService.Generate(adminSubject, adminSubject)
	if err != nil {
		uc.logger.Errorw("failed to issue access token", "error", err)
		return nil, errors.NewInternalError("failed to issue access token")
	}

	uc.logger.Infow("admin logged in")
	return &LoginResult{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(uc.jwtService.AccessExpMinutes()) * 60,
	}, nil
}
