package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"mindtrack/internal/model"
	"mindtrack/internal/repository"
)

var (
	ErrInvalidCredentials = eris.New("invalid username or password")
	ErrUserExists         = eris.New("username or email already registered")
	ErrInvalidToken       = eris.New("invalid or expired token")
	ErrPasswordTooLong    = eris.New("password exceeds 72 bytes")
	ErrUserNotFound       = eris.New("user not found")
)

// AuthService handles registration, login and token validation.
type AuthService struct {
	users    repository.UserRepo
	secret   []byte
	tokenTTL time.Duration
	logger   *zap.Logger
}

func NewAuthService(users repository.UserRepo, secret string, tokenTTL time.Duration, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:    users,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		logger:   logger,
	}
}

// Register creates a new account with a bcrypt-hashed password.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	// bcrypt silently truncates beyond 72 bytes, so reject instead.
	if len(req.Password) > 72 {
		return nil, ErrPasswordTooLong
	}

	exists, err := s.users.ExistsByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		return nil, eris.Wrap(err, "auth: check existing user")
	}
	if exists {
		return nil, ErrUserExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, eris.Wrap(err, "auth: hash password")
	}

	user := &model.User{
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: string(hashed),
		FullName:       req.FullName,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, eris.Wrap(err, "auth: create user")
	}

	s.logger.Info("user registered", zap.String("username", user.Username))
	return user, nil
}

// Login verifies credentials and issues a signed access token.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (*model.TokenResponse, error) {
	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, eris.Wrap(err, "auth: look up user")
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user logged in", zap.String("username", user.Username))
	return &model.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

func (s *AuthService) issueToken(user *model.User) (string, error) {
	now := time.Now().UTC()
	claims := model.UserClaims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", eris.Wrap(err, "auth: sign token")
	}
	return signed, nil
}

// ValidateToken parses a signed token and returns its claims.
func (s *AuthService) ValidateToken(tokenString string) (*model.UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.UserClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, eris.New("auth: unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.UserClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// CurrentUser loads the account behind a validated token.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, eris.Wrap(err, "auth: load user")
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
