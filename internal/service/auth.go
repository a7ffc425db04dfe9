package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/pantrychef/backend/internal/types"
	"github.com/pantrychef/backend/models"
)

// AuthService handles registration, login and token issuance/validation.
type AuthService struct {
	db        *gorm.DB
	jwtSecret string
}

func NewAuthService(db *gorm.DB, jwtSecret string) *AuthService {
	return &AuthService{db: db, jwtSecret: jwtSecret}
}

func (s *AuthService) Register(ctx context.Context, req types.SignUpRequest) (*models.User, error) {
	birth, err := req.BirthDate()
	if err != nil {
		return nil, ErrUnexpected.Wrap(err)
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("email = ?", req.Email).Count(&count).Error; err != nil {
		return nil, ErrDatabase.Wrap(err)
	}
	if count > 0 {
		return nil, ErrDuplicateEmail
	}
	if err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("nickname = ?", req.Nickname).Count(&count).Error; err != nil {
		return nil, ErrDatabase.Wrap(err)
	}
	if count > 0 {
		return nil, ErrDuplicateNickname
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrUnexpected.Wrap(err)
	}

	user := models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Nickname:     req.Nickname,
		Birth:        birth,
		Gender:       req.Gender,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, ErrDatabase.Wrap(err)
	}
	return &user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", ErrDatabase.Wrap(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.GenerateToken(user.ID)
}

func (s *AuthService) GenerateToken(userID uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", ErrUnexpected.Wrap(err)
	}
	return signed, nil
}

// ValidateToken parses and verifies an access token. Anything wrong with the
// token, expiry included, maps to ErrTokenExpired so the caller re-authenticates.
func (s *AuthService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrTokenExpired.Wrap(err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenExpired
	}
	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return nil, ErrTokenExpired
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, ErrTokenExpired.Wrap(err)
	}

	return &types.TokenClaims{UserID: userID}, nil
}

// GetUserByID loads the authenticated user; the resolved identity backs every
// ownership and admin check.
func (s *AuthService) GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, ErrDatabase.Wrap(err)
	}
	return &user, nil
}
