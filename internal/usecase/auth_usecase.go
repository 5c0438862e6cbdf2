package usecase

import (
	"context"
	"errors"
	"fmt"

	"hospital-backend/internal/converter"
	"hospital-backend/internal/delivery/dto"
	"hospital-backend/internal/delivery/http/middleware"
	"hospital-backend/internal/domain/entity"
	"hospital-backend/internal/domain/repository"
	"hospital-backend/pkg/jwt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrAccountInactive      = errors.New("account is not active")
	ErrSignupNotImplemented = errors.New("signup not implemented")
	ErrInvalidToken         = errors.New("invalid or expired token")
	ErrTokenRevoked         = errors.New("token has been revoked")
	ErrUserNotFound         = errors.New("user not found")
)

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionResponse, error)
	Signup(ctx context.Context) error
	Logout(ctx context.Context, req *dto.LogoutRequest) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
}

type authUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	userRepo         repository.UserRepository
	profileRepo      repository.ProfileRepository
	roleRepo         repository.RoleRepository
	patientRepo      repository.PatientRepository
	notificationRepo repository.NotificationRepository
	jwtService       *jwt.JWTService
	redisClient      *redis.Client
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	roleRepo repository.RoleRepository,
	patientRepo repository.PatientRepository,
	notificationRepo repository.NotificationRepository,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
) AuthUsecase {
	return &authUsecase{
		db:               db,
		log:              log,
		userRepo:         userRepo,
		profileRepo:      profileRepo,
		roleRepo:         roleRepo,
		patientRepo:      patientRepo,
		notificationRepo: notificationRepo,
		jwtService:       jwtService,
		redisClient:      redisClient,
	}
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionResponse, error) {
	db := u.db.WithContext(ctx)

	// Username or email, read-only, no transaction needed
	user, err := u.userRepo.FindByIdentifier(db, req.Username)
	if err != nil {
		u.log.Warnf("Failed to find user by identifier: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	// Status is checked before the password
	if !user.IsActive() {
		return nil, ErrAccountInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	profile, err := u.profileRepo.FindByUserID(db, user.ID)
	if err != nil {
		u.log.Warnf("Failed to find user profile: %+v", err)
		return nil, err
	}
	user.Profile = profile

	extra, err := u.roleExtension(db, user)
	if err != nil {
		u.log.Warnf("Failed to find role extension for user %d: %+v", user.ID, err)
		return nil, err
	}

	notifications, err := u.notificationRepo.FindUnreadByUserID(db, user.ID)
	if err != nil {
		u.log.Warnf("Failed to find unread notifications: %+v", err)
		return nil, err
	}

	tokens, err := u.issueTokens(ctx, user.ID, user.Username, user.Role.String())
	if err != nil {
		return nil, err
	}

	return &dto.SessionResponse{
		User:          converter.UserToSessionResponse(user, extra),
		Notifications: converter.NotificationsToResponses(notifications),
		Tokens:        tokens,
	}, nil
}

// roleExtension loads the per-role row. A missing row is not an error.
func (u *authUsecase) roleExtension(db *gorm.DB, user *entity.User) (interface{}, error) {
	switch user.Role {
	case entity.RoleDoctor:
		doctor, err := u.roleRepo.FindDoctorByUserID(db, user.ID)
		if err != nil || doctor == nil {
			return nil, err
		}
		return converter.DoctorToExtraResponse(doctor), nil
	case entity.RoleSecretary:
		secretary, err := u.roleRepo.FindSecretaryByUserID(db, user.ID)
		if err != nil || secretary == nil {
			return nil, err
		}
		return converter.SecretaryToExtraResponse(secretary), nil
	case entity.RoleReceptionist:
		receptionist, err := u.roleRepo.FindReceptionistByUserID(db, user.ID)
		if err != nil || receptionist == nil {
			return nil, err
		}
		return converter.ReceptionistToExtraResponse(receptionist), nil
	case entity.RolePatient:
		patient, err := u.patientRepo.FindByUserID(db, user.ID)
		if err != nil || patient == nil {
			return nil, err
		}
		return converter.PatientToExtraResponse(patient), nil
	case entity.RoleAdmin:
		return nil, nil
	default:
		return nil, nil
	}
}

func (u *authUsecase) Signup(ctx context.Context) error {
	return ErrSignupNotImplemented
}

func (u *authUsecase) issueTokens(ctx context.Context, userID int64, username, role string) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(userID, username, role)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(userID, username, role)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	// Store tokens in Redis
	accessKey := accessTokenKey(userID, accessTokenID)
	refreshKey := refreshTokenKey(userID, refreshTokenID)

	if err := u.redisClient.Set(ctx, accessKey, "valid", u.jwtService.GetAccessExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store access token in Redis: %+v", err)
		return nil, err
	}

	if err := u.redisClient.Set(ctx, refreshKey, "valid", u.jwtService.GetRefreshExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store refresh token in Redis: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

// Logout revokes the caller's access token and, when supplied, the refresh
// token issued alongside it.
func (u *authUsecase) Logout(ctx context.Context, req *dto.LogoutRequest) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return ErrInvalidToken
	}
	accessTokenID, _ := middleware.GetTokenIDFromContext(ctx)

	keys := []string{accessTokenKey(userID, accessTokenID)}
	if req.RefreshToken != "" {
		claims, err := u.jwtService.ValidateToken(req.RefreshToken)
		if err == nil && claims.TokenType == jwt.RefreshToken && claims.UserID == userID {
			keys = append(keys, refreshTokenKey(userID, claims.TokenID))
		}
	}

	if err := u.redisClient.Del(ctx, keys...).Err(); err != nil {
		u.log.Warnf("Failed to delete tokens: %+v", err)
		return err
	}

	return nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	// Validate refresh token
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	// Check if refresh token exists in Redis
	refreshKey := refreshTokenKey(claims.UserID, claims.TokenID)
	exists, err := u.redisClient.Exists(ctx, refreshKey).Result()
	if err != nil {
		u.log.Warnf("Failed to check refresh token in Redis: %+v", err)
		return nil, err
	}
	if exists == 0 {
		return nil, ErrTokenRevoked
	}

	// Role or status may have changed since the token was issued
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), claims.UserID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if !user.IsActive() {
		return nil, ErrAccountInactive
	}

	// Delete old refresh token
	if err := u.redisClient.Del(ctx, refreshKey).Err(); err != nil {
		u.log.Warnf("Failed to delete old refresh token: %+v", err)
		return nil, err
	}

	return u.issueTokens(ctx, user.ID, user.Username, user.Role.String())
}

func accessTokenKey(userID int64, tokenID string) string {
	return fmt.Sprintf("access_token:%d:%s", userID, tokenID)
}

func refreshTokenKey(userID int64, tokenID string) string {
	return fmt.Sprintf("refresh_token:%d:%s", userID, tokenID)
}
