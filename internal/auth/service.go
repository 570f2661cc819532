package auth

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"playbox/internal/shared/config"
	"playbox/internal/users"
	"playbox/pkg/logger"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidPhone = errors.New("invalid phone number")
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

var phonePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

type Service interface {
	SendOTP(ctx context.Context, req *SendOTPRequest) (*SendOTPResponse, error)
	VerifyOTP(ctx context.Context, req *VerifyOTPRequest) (*AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
	UpdateProfile(ctx context.Context, userID string, req *UpdateProfileRequest) (*UserResponse, error)
	ValidateToken(tokenString string) (*JWTClaims, error)
}

type service struct {
	repo   Repository
	otp    OTPStore
	config *config.Config
	log    *logger.Logger
}

func NewService(repo Repository, otp OTPStore, cfg *config.Config) Service {
	return &service{
		repo:   repo,
		otp:    otp,
		config: cfg,
		log:    logger.GetDefault(),
	}
}

func (s *service) SendOTP(ctx context.Context, req *SendOTPRequest) (*SendOTPResponse, error) {
	phone, err := normalizePhone(req.Phone)
	if err != nil {
		return nil, err
	}

	code, err := s.otp.Issue(ctx, phone)
	if err != nil {
		return nil, err
	}

	// SMS gateway integration is environment specific. In debug mode the
	// code is logged so local clients can complete the flow.
	if s.config.IsDevelopment() {
		s.log.InfoWithContext(ctx, "OTP issued", map[string]interface{}{
			"phone": phone,
			"code":  code,
		})
	} else {
		s.log.InfoWithContext(ctx, "OTP issued", map[string]interface{}{
			"phone": phone,
		})
	}

	registered, err := s.repo.PhoneExists(ctx, phone)
	if err != nil {
		return nil, err
	}

	return &SendOTPResponse{
		Phone:       phone,
		Registered:  registered,
		ResendAfter: ResendAfterSeconds(s.config),
	}, nil
}

func (s *service) VerifyOTP(ctx context.Context, req *VerifyOTPRequest) (*AuthResponse, error) {
	phone, err := normalizePhone(req.Phone)
	if err != nil {
		return nil, err
	}

	if err := s.otp.Verify(ctx, phone, req.Code); err != nil {
		s.log.LogAuthFailure(ctx, err.Error(), phone)
		return nil, err
	}

	isNewUser := false
	user, err := s.repo.GetUserByPhone(ctx, phone)
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			return nil, err
		}

		// First login creates the account
		name := strings.TrimSpace(req.Name)
		if name == "" {
			name = "PlayBox User"
		}
		user = &users.User{
			Name:  name,
			Phone: phone,
			Role:  users.RoleUser,
		}
		if err := s.repo.CreateUser(ctx, user); err != nil {
			return nil, err
		}
		isNewUser = true
	}

	tokenPair, err := s.generateTokenPair(user.ID.String(), user.Phone, string(user.Role))
	if err != nil {
		return nil, err
	}

	s.log.LogAuthSuccess(ctx, user.ID.String(), "otp")

	return &AuthResponse{
		User: UserResponse{
			ID:        user.ID.String(),
			Name:      user.Name,
			Phone:     user.Phone,
			Role:      string(user.Role),
			CreatedAt: user.CreatedAt,
			UpdatedAt: user.UpdatedAt,
		},
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresIn:    tokenPair.ExpiresIn,
		IsNewUser:    isNewUser,
	}, nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.validateToken(refreshToken)
	if err != nil {
		return nil, err
	}

	if claims.Type != "refresh" {
		return nil, ErrInvalidToken
	}

	// Verify user still exists
	user, err := s.repo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	return s.generateTokenPair(user.ID.String(), user.Phone, string(user.Role))
}

func (s *service) UpdateProfile(ctx context.Context, userID string, req *UpdateProfileRequest) (*UserResponse, error) {
	if err := s.repo.UpdateUserName(ctx, userID, strings.TrimSpace(req.Name)); err != nil {
		return nil, err
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &UserResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Phone:     user.Phone,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}, nil
}

func (s *service) ValidateToken(tokenString string) (*JWTClaims, error) {
	return s.validateToken(tokenString)
}

func (s *service) generateTokenPair(userID, phone, role string) (*TokenPair, error) {
	now := time.Now()

	accessClaims := JWTClaims{
		UserID: userID,
		Phone:  phone,
		Role:   role,
		Type:   "access",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.JWT.JWTExpiresIn)),
			Issuer:    "playbox",
			Subject:   userID,
		},
	}

	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessTokenString, err := accessToken.SignedString([]byte(s.config.JWT.Secret))
	if err != nil {
		return nil, err
	}

	refreshClaims := JWTClaims{
		UserID: userID,
		Phone:  phone,
		Role:   role,
		Type:   "refresh",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.JWT.RefreshExpiresIn)),
			Issuer:    "playbox",
			Subject:   userID,
		},
	}

	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshTokenString, err := refreshToken.SignedString([]byte(s.config.JWT.Secret))
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessTokenString,
		RefreshToken: refreshTokenString,
		ExpiresIn:    int64(s.config.JWT.JWTExpiresIn.Seconds()),
	}, nil
}

func (s *service) validateToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.config.JWT.Secret), nil
	})

	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

// normalizePhone strips separators and validates the digits
func normalizePhone(phone string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')':
			return -1
		}
		return r
	}, strings.TrimSpace(phone))

	if !phonePattern.MatchString(cleaned) {
		return "", ErrInvalidPhone
	}

	return cleaned, nil
}
