package app

import (
	"fmt"

	authHTTP "github.com/atluixx/lynkt/internal/auth/http"
	authService "github.com/atluixx/lynkt/internal/auth/service"
	authUseCase "github.com/atluixx/lynkt/internal/auth/usecase"
)

// PasswordHasher returns the Argon2id credential hasher.
func (c *Container) PasswordHasher() (authService.PasswordHasher, error) {
	err := c.lazy(&c.passwordHasherInit, "passwordHasher", func() (err error) {
		c.passwordHasher, err = authService.NewPasswordHasher()
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.passwordHasher, nil
}

// TokenCodec returns the session token codec built from the auth configuration.
func (c *Container) TokenCodec() (authService.TokenCodec, error) {
	err := c.lazy(&c.tokenCodecInit, "tokenCodec", func() (err error) {
		c.tokenCodec, err = authService.NewTokenCodec(
			c.config.JWTSecret,
			c.config.TokenExpiration,
			authService.WithClockSkew(c.config.TokenClockSkew),
		)
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.tokenCodec, nil
}

// AuthUseCase returns the registration, login and session use case.
func (c *Container) AuthUseCase() (authUseCase.UseCase, error) {
	err := c.lazy(&c.authUseCaseInit, "authUseCase", func() (err error) {
		c.authUseCase, err = c.initAuthUseCase()
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.authUseCase, nil
}

// AuthHandler returns the HTTP handler for the /auth routes.
func (c *Container) AuthHandler() (*authHTTP.AuthHandler, error) {
	err := c.lazy(&c.authHandlerInit, "authHandler", func() error {
		useCase, err := c.AuthUseCase()
		if err != nil {
			return fmt.Errorf("failed to get auth use case for auth handler: %w", err)
		}
		c.authHandler = authHTTP.NewAuthHandler(useCase, c.cookieConfig(), c.Logger())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.authHandler, nil
}

// initAuthUseCase creates the auth use case with all its dependencies.
func (c *Container) initAuthUseCase() (authUseCase.UseCase, error) {
	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for auth use case: %w", err)
	}

	hasher, err := c.PasswordHasher()
	if err != nil {
		return nil, fmt.Errorf("failed to get password hasher for auth use case: %w", err)
	}

	codec, err := c.TokenCodec()
	if err != nil {
		return nil, fmt.Errorf("failed to get token codec for auth use case: %w", err)
	}

	baseUseCase, err := authUseCase.NewAuthUseCase(userRepo, hasher, codec)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth use case: %w", err)
	}

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for auth use case: %w", err)
		}
		return authUseCase.NewAuthUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
