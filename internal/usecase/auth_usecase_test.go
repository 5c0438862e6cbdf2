package usecase

import (
	"context"
	"testing"
	"time"

	"hospital-backend/config"
	"hospital-backend/internal/delivery/dto"
	"hospital-backend/internal/delivery/http/middleware"
	"hospital-backend/internal/domain/entity"
	"hospital-backend/pkg/jwt"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type authFixture struct {
	usecase          AuthUsecase
	redis            *miniredis.Miniredis
	jwtService       *jwt.JWTService
	userRepo         *MockUserRepository
	profileRepo      *MockProfileRepository
	roleRepo         *MockRoleRepository
	patientRepo      *MockPatientRepository
	notificationRepo *MockNotificationRepository
}

func newAuthFixture(t *testing.T) *authFixture {
	db, _ := setupMockDB(t)
	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { redisClient.Close() })

	f := &authFixture{
		redis: mr,
		jwtService: jwt.NewJWTService(config.JWTConfig{
			Secret:        "test-secret",
			AccessExpiry:  15 * time.Minute,
			RefreshExpiry: 24 * time.Hour,
		}),
		userRepo:         new(MockUserRepository),
		profileRepo:      new(MockProfileRepository),
		roleRepo:         new(MockRoleRepository),
		patientRepo:      new(MockPatientRepository),
		notificationRepo: new(MockNotificationRepository),
	}
	f.usecase = NewAuthUsecase(db, testLogger(), f.userRepo, f.profileRepo, f.roleRepo, f.patientRepo, f.notificationRepo, f.jwtService, redisClient)
	return f
}

func hashPassword(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func (f *authFixture) expectSession(user *entity.User) {
	f.userRepo.On("FindByIdentifier", mock.Anything, user.Username).Return(user, nil)
	f.profileRepo.On("FindByUserID", mock.Anything, user.ID).
		Return(&entity.UserProfile{UserID: user.ID, FirstName: "Maria", LastName: "Santos"}, nil)
	f.notificationRepo.On("FindUnreadByUserID", mock.Anything, user.ID).
		Return([]entity.Notification{{ID: 1, UserID: user.ID, Title: "Welcome"}}, nil)
}

func TestAuthUsecase_Login_Doctor(t *testing.T) {
	f := newAuthFixture(t)
	user := &entity.User{ID: 5, Username: "msantos", Email: "m@clinic.test", Role: entity.RoleDoctor, Status: entity.UserStatusActive, PasswordHash: hashPassword(t, "secret")}
	f.expectSession(user)
	f.roleRepo.On("FindDoctorByUserID", mock.Anything, int64(5)).
		Return(&entity.Doctor{ID: 7, UserID: 5, Specialization: "Cardiology"}, nil)

	session, err := f.usecase.Login(context.Background(), &dto.LoginRequest{Username: "msantos", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "doctor", session.User.Role)
	assert.Equal(t, "Maria", session.User.Profile.FirstName)
	extra, ok := session.User.Extra.(*dto.DoctorExtraResponse)
	require.True(t, ok)
	assert.Equal(t, int64(7), extra.DoctorID)
	assert.Len(t, session.Notifications, 1)
	require.NotNil(t, session.Tokens)
	assert.Equal(t, int64(900), session.Tokens.ExpiresIn)
	assert.Len(t, f.redis.Keys(), 2)
}

func TestAuthUsecase_Login_MissingRoleRowYieldsEmptyExtra(t *testing.T) {
	f := newAuthFixture(t)
	user := &entity.User{ID: 6, Username: "front", Role: entity.RoleReceptionist, PasswordHash: hashPassword(t, "secret")}
	f.expectSession(user)
	f.roleRepo.On("FindReceptionistByUserID", mock.Anything, int64(6)).Return(nil, nil)

	session, err := f.usecase.Login(context.Background(), &dto.LoginRequest{Username: "front", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, dto.EmptyObject{}, session.User.Extra)
}

func TestAuthUsecase_Login_AdminHasNoExtension(t *testing.T) {
	f := newAuthFixture(t)
	user := &entity.User{ID: 1, Username: "admin", Role: entity.RoleAdmin, PasswordHash: hashPassword(t, "secret")}
	f.expectSession(user)

	session, err := f.usecase.Login(context.Background(), &dto.LoginRequest{Username: "admin", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, dto.EmptyObject{}, session.User.Extra)
	f.roleRepo.AssertExpectations(t)
}

func TestAuthUsecase_Login_Failures(t *testing.T) {
	t.Run("unknown user", func(t *testing.T) {
		f := newAuthFixture(t)
		f.userRepo.On("FindByIdentifier", mock.Anything, "ghost").Return(nil, nil)

		_, err := f.usecase.Login(context.Background(), &dto.LoginRequest{Username: "ghost", Password: "x"})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newAuthFixture(t)
		f.userRepo.On("FindByIdentifier", mock.Anything, "msantos").
			Return(&entity.User{ID: 5, Username: "msantos", Role: entity.RoleDoctor, PasswordHash: hashPassword(t, "secret")}, nil)

		_, err := f.usecase.Login(context.Background(), &dto.LoginRequest{Username: "msantos", Password: "wrong"})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Empty(t, f.redis.Keys())
	})

	t.Run("inactive account checked before password", func(t *testing.T) {
		f := newAuthFixture(t)
		f.userRepo.On("FindByIdentifier", mock.Anything, "former").
			Return(&entity.User{ID: 8, Username: "former", Status: entity.UserStatusInactive, PasswordHash: hashPassword(t, "secret")}, nil)

		_, err := f.usecase.Login(context.Background(), &dto.LoginRequest{Username: "former", Password: "wrong"})

		assert.ErrorIs(t, err, ErrAccountInactive)
		f.profileRepo.AssertNotCalled(t, "FindByUserID", mock.Anything, mock.Anything)
	})
}

func TestAuthUsecase_Signup(t *testing.T) {
	f := newAuthFixture(t)
	assert.ErrorIs(t, f.usecase.Signup(context.Background()), ErrSignupNotImplemented)
}

func (f *authFixture) login(t *testing.T) (*entity.User, *dto.TokenResponse) {
	user := &entity.User{ID: 1, Username: "admin", Role: entity.RoleAdmin, Status: entity.UserStatusActive, PasswordHash: hashPassword(t, "secret")}
	f.expectSession(user)

	session, err := f.usecase.Login(context.Background(), &dto.LoginRequest{Username: "admin", Password: "secret"})
	require.NoError(t, err)
	return user, session.Tokens
}

func TestAuthUsecase_RefreshToken_Rotates(t *testing.T) {
	f := newAuthFixture(t)
	user, tokens := f.login(t)
	f.userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

	rotated, err := f.usecase.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, tokens.RefreshToken, rotated.RefreshToken)

	// The old refresh token is single use
	_, err = f.usecase.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	assert.ErrorIs(t, err, ErrTokenRevoked)
}

func TestAuthUsecase_RefreshToken_RejectsAccessToken(t *testing.T) {
	f := newAuthFixture(t)
	_, tokens := f.login(t)

	_, err := f.usecase.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: tokens.AccessToken})

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthUsecase_RefreshToken_InactiveUser(t *testing.T) {
	f := newAuthFixture(t)
	user, tokens := f.login(t)
	f.userRepo.On("FindByID", mock.Anything, user.ID).
		Return(&entity.User{ID: user.ID, Username: user.Username, Role: user.Role, Status: entity.UserStatusInactive}, nil)

	_, err := f.usecase.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})

	assert.ErrorIs(t, err, ErrAccountInactive)
}

func TestAuthUsecase_Logout_RevokesBothTokens(t *testing.T) {
	f := newAuthFixture(t)
	user, tokens := f.login(t)
	require.Len(t, f.redis.Keys(), 2)

	claims, err := f.jwtService.ValidateToken(tokens.AccessToken)
	require.NoError(t, err)
	ctx := middleware.WithUserID(context.Background(), user.ID)
	ctx = context.WithValue(ctx, middleware.TokenIDKey, claims.TokenID)

	err = f.usecase.Logout(ctx, &dto.LogoutRequest{RefreshToken: tokens.RefreshToken})

	require.NoError(t, err)
	assert.Empty(t, f.redis.Keys())
}

func TestAuthUsecase_Logout_RequiresAuthenticatedContext(t *testing.T) {
	f := newAuthFixture(t)

	err := f.usecase.Logout(context.Background(), &dto.LogoutRequest{})

	assert.ErrorIs(t, err, ErrInvalidToken)
}
