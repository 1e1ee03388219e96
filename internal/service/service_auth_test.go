// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GremahTech

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gremahtech/agri-auth/internal/config"
	"github.com/gremahtech/agri-auth/internal/logger"
	"github.com/gremahtech/agri-auth/internal/mock"
	"github.com/gremahtech/agri-auth/internal/store"
	"github.com/gremahtech/agri-auth/internal/utils"
	"github.com/gremahtech/agri-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "agri-auth-test"
)

// newTestAuthService wires an authService to gomock doubles with a one-hour
// token lifetime.
func newTestAuthService(repo *mock.MockUserRepository, profile *mock.MockProfileAdapter) AuthService {
	return NewAuthService(
		repo,
		profile,
		config.App{
			TokenSignKey:  testSignKey,
			TokenIssuer:   testIssuer,
			TokenDuration: time.Hour,
		},
		config.Profile{Timeout: time.Second},
		logger.Nop(),
	)
}

func newMocks(t *testing.T) (*mock.MockUserRepository, *mock.MockProfileAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	return mock.NewMockUserRepository(ctrl), mock.NewMockProfileAdapter(ctrl)
}

// waitForProfileCall receives the profile pushed by a mocked CreateProfile,
// failing the test if the background propagation never fires.
func waitForProfileCall(t *testing.T, ch <-chan models.FarmerProfile) models.FarmerProfile {
	t.Helper()
	select {
	case p := <-ch:
		return p
	case <-time.After(2 * time.Second):
		t.Fatal("profile propagation was never attempted")
		return models.FarmerProfile{}
	}
}

// ─────────────────────────────────────────────
// RegisterUser
// ─────────────────────────────────────────────

func TestRegisterUser_Success(t *testing.T) {
	repo, profile := newMocks(t)
	svc := newTestAuthService(repo, profile)

	req := models.RegisterRequest{
		Username:  "alice",
		Email:     "alice@farm.example",
		Password:  "plaintext-password",
		FirstName: "Alice",
		LastName:  "Anderson",
		Phone:     "555-0101",
	}

	var persisted models.User
	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{}, store.ErrNoUserWasFound)
	repo.EXPECT().FindUserByEmail(gomock.Any(), "alice@farm.example").Return(models.User{}, store.ErrNoUserWasFound)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, user models.User) (models.User, error) {
			persisted = user
			user.UserID = 42
			user.CreatedAt = time.Now()
			return user, nil
		})

	propagated := make(chan models.FarmerProfile, 1)
	profile.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.FarmerProfile) error {
			propagated <- p
			return nil
		})

	registered, err := svc.RegisterUser(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, int64(42), registered.UserID)
	assert.Equal(t, "alice", registered.Username)
	assert.Equal(t, models.RoleFarmer, registered.Role, "missing role must default to FARMER")
	assert.Empty(t, registered.PasswordHash, "password hash must never leave the service")

	// the stored hash is bcrypt, not the plaintext
	assert.NotEqual(t, req.Password, persisted.PasswordHash)
	assert.True(t, utils.VerifyPassword(req.Password, persisted.PasswordHash))

	p := waitForProfileCall(t, propagated)
	assert.Equal(t, int64(42), p.UserID)
	assert.Equal(t, "Alice", p.FirstName)
	assert.Equal(t, "Anderson", p.LastName)
	assert.Equal(t, "555-0101", p.Phone)
	assert.Equal(t, "alice@farm.example", p.Email)
}

func TestRegisterUser_ProfileFailureDoesNotAffectRegistration(t *testing.T) {
	repo, profile := newMocks(t)
	svc := newTestAuthService(repo, profile)

	repo.EXPECT().FindUserByUsername(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrNoUserWasFound)
	repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrNoUserWasFound)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, user models.User) (models.User, error) {
			user.UserID = 7
			return user, nil
		})

	attempted := make(chan models.FarmerProfile, 1)
	profile.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.FarmerProfile) error {
			attempted <- p
			return errors.New("profile service is down")
		}).Times(1)

	registered, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
		Username:  "bob",
		Email:     "bob@farm.example",
		Password:  "plaintext-password",
		FirstName: "Bob",
		LastName:  "Brown",
		Phone:     "555-0102",
	})

	require.NoError(t, err, "propagation failure must not fail the registration")
	assert.Equal(t, int64(7), registered.UserID)

	// exactly one attempt, no retry on failure
	waitForProfileCall(t, attempted)
}

func TestRegisterUser_NoProfileDataSkipsPropagation(t *testing.T) {
	repo, profile := newMocks(t)
	svc := newTestAuthService(repo, profile)

	repo.EXPECT().FindUserByUsername(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrNoUserWasFound)
	repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrNoUserWasFound)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, user models.User) (models.User, error) {
			user.UserID = 8
			return user, nil
		})
	profile.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
		Username: "carol",
		Email:    "carol@farm.example",
		Password: "plaintext-password",
		// FirstName/LastName/Phone intentionally absent
	})

	require.NoError(t, err)
}

func TestRegisterUser_NonFarmerSkipsPropagation(t *testing.T) {
	repo, profile := newMocks(t)
	svc := newTestAuthService(repo, profile)

	repo.EXPECT().FindUserByUsername(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrNoUserWasFound)
	repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrNoUserWasFound)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, user models.User) (models.User, error) {
			user.UserID = 9
			return user, nil
		})
	profile.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).Times(0)

	registered, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
		Username:  "dave",
		Email:     "dave@agri.example",
		Password:  "plaintext-password",
		Role:      models.RoleAdmin,
		FirstName: "Dave",
		LastName:  "Dunn",
		Phone:     "555-0103",
	})

	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, registered.Role)
}

func TestRegisterUser_DuplicateUsername(t *testing.T) {
	repo, profile := newMocks(t)
	svc := newTestAuthService(repo, profile)

	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{UserID: 1, Username: "alice"}, nil)
	// email check must not run once the username conflict is known

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
		Username: "alice",
		Email:    "other@farm.example",
		Password: "plaintext-password",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrUsernameAlreadyExists))
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	repo, profile := newMocks(t)
	svc := newTestAuthService(repo, profile)

	repo.EXPECT().FindUserByUsername(gomock.Any(), "newname").Return(models.User{}, store.ErrNoUserWasFound)
	repo.EXPECT().FindUserByEmail(gomock.Any(), "alice@farm.example").Return(models.User{UserID: 1}, nil)

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
		Username: "newname",
		Email:    "alice@farm.example",
		Password: "plaintext-password",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrEmailAlreadyExists))
}

func TestRegisterUser_InvalidData(t *testing.T) {
	repo, profile := newMocks(t)
	svc := newTestAuthService(repo, profile)

	tests := []struct {
		name    string
		req     models.RegisterRequest
		wantErr error
	}{
		{"empty username", models.RegisterRequest{Email: "a@x.com", Password: "longenough"}, ErrInvalidDataProvided},
		{"empty email", models.RegisterRequest{Username: "a", Password: "longenough"}, ErrInvalidDataProvided},
		{"empty password", models.RegisterRequest{Username: "a", Email: "a@x.com"}, ErrInvalidDataProvided},
		{"short password", models.RegisterRequest{Username: "a", Email: "a@x.com", Password: "short"}, ErrPasswordTooShort},
		{"seven characters", models.RegisterRequest{Username: "a", Email: "a@x.com", Password: "1234567"}, ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RegisterUser(context.Background(), tt.req)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	repo, profile := newMocks(t)
	svc := newTestAuthService(repo, profile)

	hash, err := utils.HashPassword("correct-password")
	require.NoError(t, err)

	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{
		UserID:       42,
		Username:     "alice",
		Email:        "alice@farm.example",
		PasswordHash: hash,
		Role:         models.RoleFarmer,
	}, nil)

	resp, err := svc.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "correct-password"})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, int64(3600000), resp.ExpiresIn, "one hour expressed in milliseconds")
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, models.RoleFarmer, resp.Role)

	// the issued token must verify against the service's own parameters
	token, err := utils.ValidateAndParseJWTToken(resp.Token, testSignKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, "alice", token.Username)
	assert.Equal(t, models.RoleFarmer, token.GetRole())
}

func TestLogin_CredentialFailuresAreIndistinguishable(t *testing.T) {
	repo, profile := newMocks(t)
	svc := newTestAuthService(repo, profile)

	hash, err := utils.HashPassword("correct-password")
	require.NoError(t, err)

	repo.EXPECT().FindUserByUsername(gomock.Any(), "ghost").Return(models.User{}, store.ErrNoUserWasFound)
	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{
		UserID: 42, Username: "alice", PasswordHash: hash, Role: models.RoleFarmer,
	}, nil)

	_, unknownUserErr := svc.Login(context.Background(), models.LoginRequest{Username: "ghost", Password: "whatever-pass"})
	_, wrongPasswordErr := svc.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "wrong-password"})

	require.Error(t, unknownUserErr)
	require.Error(t, wrongPasswordErr)
	assert.Equal(t, unknownUserErr, wrongPasswordErr, "caller must not learn whether the username exists")
	assert.True(t, errors.Is(unknownUserErr, ErrInvalidCredentials))
}

func TestLogin_InvalidData(t *testing.T) {
	repo, profile := newMocks(t)
	svc := newTestAuthService(repo, profile)

	_, err := svc.Login(context.Background(), models.LoginRequest{Username: "", Password: "x"})
	assert.True(t, errors.Is(err, ErrInvalidDataProvided))

	_, err = svc.Login(context.Background(), models.LoginRequest{Username: "x", Password: ""})
	assert.True(t, errors.Is(err, ErrInvalidDataProvided))
}

func TestLogin_StorageError(t *testing.T) {
	repo, profile := newMocks(t)
	svc := newTestAuthService(repo, profile)

	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{}, errors.New("connection reset"))

	_, err := svc.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "whatever-pass"})

	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidCredentials), "infrastructure failures are not credential failures")
}

// ─────────────────────────────────────────────
// ValidateToken / ParseToken
// ─────────────────────────────────────────────

func TestValidateToken(t *testing.T) {
	repo, profile := newMocks(t)
	svc := newTestAuthService(repo, profile)

	valid, err := utils.GenerateJWTToken(testIssuer, "alice", models.RoleFarmer, time.Hour, testSignKey)
	require.NoError(t, err)
	expired, err := utils.GenerateJWTToken(testIssuer, "alice", models.RoleFarmer, -time.Minute, testSignKey)
	require.NoError(t, err)
	foreign, err := utils.GenerateJWTToken(testIssuer, "alice", models.RoleFarmer, time.Hour, "another-sign-key")
	require.NoError(t, err)

	assert.True(t, svc.ValidateToken(context.Background(), valid.SignedString))
	assert.False(t, svc.ValidateToken(context.Background(), expired.SignedString))
	assert.False(t, svc.ValidateToken(context.Background(), foreign.SignedString))
	assert.False(t, svc.ValidateToken(context.Background(), "not-even-a-jwt"))
	assert.False(t, svc.ValidateToken(context.Background(), ""))
}

func TestParseToken(t *testing.T) {
	repo, profile := newMocks(t)
	svc := newTestAuthService(repo, profile)

	issued, err := utils.GenerateJWTToken(testIssuer, "alice", models.RoleAdmin, time.Hour, testSignKey)
	require.NoError(t, err)

	token, err := svc.ParseToken(context.Background(), issued.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "alice", token.Username)
	assert.Equal(t, models.RoleAdmin, token.GetRole())

	_, err = svc.ParseToken(context.Background(), "garbage")
	assert.True(t, errors.Is(err, ErrTokenIsExpiredOrInvalid))
}

// ─────────────────────────────────────────────
// GetAllUsers / DeleteUser
// ─────────────────────────────────────────────

func TestGetAllUsers_StripsPasswordHashes(t *testing.T) {
	repo, profile := newMocks(t)
	svc := newTestAuthService(repo, profile)

	repo.EXPECT().GetAllUsers(gomock.Any()).Return([]models.User{
		{UserID: 1, Username: "alice", PasswordHash: "$2a$10$something"},
		{UserID: 2, Username: "bob", PasswordHash: "$2a$10$other"},
	}, nil)

	users, err := svc.GetAllUsers(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, u := range users {
		assert.Empty(t, u.PasswordHash)
	}
}

func TestGetAllUsers_StorageError(t *testing.T) {
	repo, profile := newMocks(t)
	svc := newTestAuthService(repo, profile)

	repo.EXPECT().GetAllUsers(gomock.Any()).Return(nil, errors.New("connection reset"))

	users, err := svc.GetAllUsers(context.Background())

	require.Error(t, err)
	assert.Nil(t, users)
}

func TestDeleteUser_CascadesToProfile(t *testing.T) {
	repo, profile := newMocks(t)
	svc := newTestAuthService(repo, profile)

	repo.EXPECT().DeleteUserByID(gomock.Any(), int64(42)).Return(nil)
	profile.EXPECT().DeleteProfile(gomock.Any(), int64(42)).Return(nil)

	require.NoError(t, svc.DeleteUser(context.Background(), 42))
}

func TestDeleteUser_MissingRowStillCascades(t *testing.T) {
	repo, profile := newMocks(t)
	svc := newTestAuthService(repo, profile)

	repo.EXPECT().DeleteUserByID(gomock.Any(), int64(7)).Return(store.ErrNoUserWasFound)
	profile.EXPECT().DeleteProfile(gomock.Any(), int64(7)).Return(nil)

	require.NoError(t, svc.DeleteUser(context.Background(), 7), "deletion is idempotent")
}

func TestDeleteUser_ProfileFailureAbsorbed(t *testing.T) {
	repo, profile := newMocks(t)
	svc := newTestAuthService(repo, profile)

	repo.EXPECT().DeleteUserByID(gomock.Any(), int64(42)).Return(nil)
	profile.EXPECT().DeleteProfile(gomock.Any(), int64(42)).Return(errors.New("profile service is down"))

	require.NoError(t, svc.DeleteUser(context.Background(), 42))
}

func TestDeleteUser_StorageError(t *testing.T) {
	repo, profile := newMocks(t)
	svc := newTestAuthService(repo, profile)

	repo.EXPECT().DeleteUserByID(gomock.Any(), int64(42)).Return(errors.New("connection reset"))
	profile.EXPECT().DeleteProfile(gomock.Any(), gomock.Any()).Times(0)

	require.Error(t, svc.DeleteUser(context.Background(), 42))
}
