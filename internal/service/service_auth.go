// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GremahTech

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gremahtech/agri-auth/internal/adapter"
	"github.com/gremahtech/agri-auth/internal/config"
	"github.com/gremahtech/agri-auth/internal/logger"
	"github.com/gremahtech/agri-auth/internal/store"
	"github.com/gremahtech/agri-auth/internal/utils"
	"github.com/gremahtech/agri-auth/models"
)

// minPasswordLength is the minimum accepted plaintext password length.
const minPasswordLength = 8

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification and JWT token
// lifecycle using a UserRepository for persistence, bcrypt for password
// hashing and a ProfileAdapter for the best-effort farmer profile cascade.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// profileAdapter is the outbound client of the farmer profile service.
	// Its calls are best-effort: failures are logged, never surfaced.
	profileAdapter adapter.ProfileAdapter

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// profileTimeout bounds the single profile propagation attempt made
	// after a successful farmer registration.
	profileTimeout time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and ProfileAdapter, populated with security parameters
// from cfg and propagation settings from profileCfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, profileAdapter adapter.ProfileAdapter, cfg config.App, profileCfg config.Profile, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		profileAdapter: profileAdapter,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		profileTimeout: profileCfg.Timeout,
		logger:         logger,
	}
}

// RegisterUser creates a new account.
//
// It validates the payload, verifies that neither the username nor the email
// is already taken (username first, so a request clashing on both reports the
// username conflict), hashes the password with bcrypt and persists the
// account. Accounts registered without an explicit role default to
// [models.RoleFarmer].
//
// When the new account is a farmer and the request carries the full contact
// set, a single profile creation attempt is fired towards the profile
// service in the background; its outcome never affects the registration.
//
// Returns the persisted user without its password hash, or:
//   - ErrInvalidDataProvided / ErrPasswordTooShort on a bad payload.
//   - store.ErrUsernameAlreadyExists / store.ErrEmailAlreadyExists on a
//     uniqueness conflict.
//   - A wrapped storage error if persistence fails.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Username == "" || req.Email == "" || req.Password == "" {
		log.Error().Str("username", req.Username).Str("email", req.Email).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}
	if len(req.Password) < minPasswordLength {
		log.Error().Str("username", req.Username).Msg("registration password too short")
		return models.User{}, ErrPasswordTooShort
	}

	if err := a.checkUsernameAndEmailAreFree(ctx, req.Username, req.Email); err != nil {
		log.Err(err).Str("username", req.Username).Msg("registration uniqueness check failed")
		return models.User{}, err
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrPasswordHashingFailed, err)
	}

	role := req.Role
	if role == "" {
		role = models.RoleFarmer
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         role,
	})
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	if registeredUser.Role == models.RoleFarmer && req.HasProfileData() {
		go a.propagateProfile(registeredUser, req)
	}

	registeredUser.PasswordHash = ""
	return registeredUser, nil
}

// Login authenticates an existing account and issues a signed JWT.
//
// A missing account and a wrong password both collapse to
// ErrInvalidCredentials so the response does not reveal whether the
// username exists; the internal distinction is kept in the logs only.
//
// Returns an AuthResponse carrying the compact token, its lifetime in
// milliseconds and the authenticated identity, or:
//   - ErrInvalidDataProvided if Username or Password is empty.
//   - ErrInvalidCredentials on any credential failure.
//   - A wrapped storage error if the lookup fails for infrastructure reasons.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	if req.Username == "" || req.Password == "" {
		log.Error().Str("username", req.Username).Msg("invalid login data provided")
		return models.AuthResponse{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Str("username", req.Username).Msg("login attempt for unknown username")
			return models.AuthResponse{}, ErrInvalidCredentials
		}
		log.Err(err).Str("username", req.Username).Msg("user search by username failed")
		return models.AuthResponse{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !utils.VerifyPassword(req.Password, foundUser.PasswordHash) {
		log.Warn().
			Int64("id", foundUser.UserID).
			Str("username", foundUser.Username).
			Msg("login attempt with wrong password")
		return models.AuthResponse{}, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, foundUser.Username, foundUser.Role, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("username", foundUser.Username).Msg("token generation failed")
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.AuthResponse{
		Token:     token.SignedString,
		ExpiresIn: a.tokenDuration.Milliseconds(),
		Username:  foundUser.Username,
		Role:      foundUser.Role,
	}, nil
}

// ValidateToken reports whether tokenString is a currently valid token
// issued by this service. The reason for a failure is never exposed.
func (a *authService) ValidateToken(ctx context.Context, tokenString string) bool {
	_, err := a.ParseToken(ctx, tokenString)
	return err == nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// the signing method and the issuer claim. Any validation failure (expired,
// wrong issuer, malformed) is normalised to ErrTokenIsExpiredOrInvalid so
// that callers do not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// GetAllUsers returns every registered account. Password hashes are
// stripped before the slice is handed to the caller.
func (a *authService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	users, err := a.userRepository.GetAllUsers(ctx)
	if err != nil {
		log.Err(err).Msg("listing users ended with error")
		return nil, fmt.Errorf("listing users ended with error: %w", err)
	}

	for i := range users {
		users[i].PasswordHash = ""
	}

	return users, nil
}

// DeleteUser removes the account with the given identifier.
//
// The removal is idempotent: deleting an unknown identifier succeeds.
// After the store delete, a single profile deletion attempt is always made
// towards the profile service, even when no account row was removed, so an
// orphaned profile left by a previous partial failure still gets cleaned
// up. Profile failures are logged and absorbed.
func (a *authService) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if err := a.userRepository.DeleteUserByID(ctx, userID); err != nil {
		if !errors.Is(err, store.ErrNoUserWasFound) {
			log.Err(err).Int64("id", userID).Msg("user deletion ended with error")
			return fmt.Errorf("user deletion ended with error: %w", err)
		}
		log.Debug().Int64("id", userID).Msg("delete requested for unknown user id")
	}

	if err := a.profileAdapter.DeleteProfile(ctx, userID); err != nil {
		log.Warn().Err(err).Int64("id", userID).Msg("farmer profile deletion failed")
	}

	return nil
}

// propagateProfile makes the single best-effort profile creation call after
// a successful farmer registration. It runs detached from the request with
// its own timeout-bounded context, so a slow profile service cannot hold
// the registration response.
func (a *authService) propagateProfile(user models.User, req models.RegisterRequest) {
	timeout := a.profileTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	profile := models.FarmerProfile{
		UserID:    user.UserID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     user.Email,
	}

	if err := a.profileAdapter.CreateProfile(ctx, profile); err != nil {
		a.logger.Warn().Err(err).
			Int64("id", user.UserID).
			Str("username", user.Username).
			Msg("farmer profile propagation failed")
		return
	}

	a.logger.Debug().Int64("id", user.UserID).Msg("farmer profile propagated")
}

// checkUsernameAndEmailAreFree pre-checks both uniqueness constraints so
// the caller gets a deterministic conflict order: username before email.
// The database constraints remain the authority under concurrency; a race
// slipping past these checks still surfaces from CreateUser as the same
// sentinel errors.
func (a *authService) checkUsernameAndEmailAreFree(ctx context.Context, username, email string) error {
	if _, err := a.userRepository.FindUserByUsername(ctx, username); err == nil {
		return store.ErrUsernameAlreadyExists
	} else if !errors.Is(err, store.ErrNoUserWasFound) {
		return fmt.Errorf("user search by username failed: %w", err)
	}

	if _, err := a.userRepository.FindUserByEmail(ctx, email); err == nil {
		return store.ErrEmailAlreadyExists
	} else if !errors.Is(err, store.ErrNoUserWasFound) {
		return fmt.Errorf("user search by email failed: %w", err)
	}

	return nil
}
