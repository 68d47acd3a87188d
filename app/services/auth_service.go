package services

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v4"
	"github.com/hrakoto/go-annuaire/app/helpers"
	"github.com/hrakoto/go-annuaire/app/models"
	"github.com/hrakoto/go-annuaire/app/repositories"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	Profile(ctx context.Context, userID uint) (*models.User, error)
	VerifyToken(tokenString string) (*helpers.AuthClaims, error)
}

type authService struct {
	userRepo repositories.UserRepositoryImpl
	secret   []byte
}

func NewAuthService(userRepo repositories.UserRepositoryImpl, secret string) AuthService {
	return &authService{userRepo: userRepo, secret: []byte(secret)}
}

// tokenClaims is the self-contained token payload. No expiry is embedded:
// a token stays valid as long as its signature does.
type tokenClaims struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

func (s *authService) Register(ctx context.Context, input RegisterInput) (*models.User, string, error) {
	existing, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", helpers.ValidationError("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	role := input.Role
	if role == "" {
		role = models.RoleUser
	}

	user := &models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hash),
		Role:     role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// Unique-constraint race between the existence check and the insert.
		return nil, "", helpers.ValidationError(err.Error())
	}

	token, err := s.signToken(user)
	if err != nil {
		return nil, "", err
	}
	zap.S().Infof("registered user %s (role=%s)", user.Email, user.Role)
	return user, token, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", helpers.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", helpers.ErrInvalidCredentials
	}

	token, err := s.signToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *authService) Profile(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, helpers.ErrNotFound
	}
	return user, nil
}

func (s *authService) VerifyToken(tokenString string) (*helpers.AuthClaims, error) {
	var claims tokenClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, helpers.ErrInvalidToken
	}
	return &helpers.AuthClaims{ID: claims.ID, Email: claims.Email, Role: claims.Role}, nil
}

func (s *authService) signToken(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
	})
	return token.SignedString(s.secret)
}
