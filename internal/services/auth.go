package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/robokit/robokit-backend/internal/logger"
	"github.com/robokit/robokit-backend/internal/pkg/errors"
	"github.com/robokit/robokit-backend/internal/repos"
	"github.com/robokit/robokit-backend/internal/requestdata"
	"github.com/robokit/robokit-backend/internal/types"
)

type JWTClaims struct {
	jwt.RegisteredClaims
}

type AuthService interface {
	RegisterUser(ctx context.Context, user *types.User) (string, error)
	LoginUser(ctx context.Context, username, password string) (string, *types.User, error)
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
	GetAccessTTL() time.Duration
}

type authService struct {
	db            *gorm.DB
	log           *logger.Logger
	userRepo      repos.UserRepo
	userTokenRepo repos.UserTokenRepo
	jwtSecretKey  string
	accessTTL     time.Duration
}

func NewAuthService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo repos.UserRepo,
	userTokenRepo repos.UserTokenRepo,
	jwtSecretKey string,
	accessTTL time.Duration,
) AuthService {
	serviceLog := log.With("service", "AuthService")
	return &authService{
		db:            db,
		log:           serviceLog,
		userRepo:      userRepo,
		userTokenRepo: userTokenRepo,
		jwtSecretKey:  jwtSecretKey,
		accessTTL:     accessTTL,
	}
}

func (as *authService) RegisterUser(ctx context.Context, user *types.User) (string, error) {
	user.Username = strings.TrimSpace(user.Username)
	user.Email = strings.TrimSpace(strings.ToLower(user.Email))
	if user.Username == "" || user.Password == "" {
		return "", fmt.Errorf("%w: username and password are required", errors.ErrInvalidArgument)
	}

	exists, exErr := as.userRepo.UsernameExists(ctx, nil, user.Username)
	if exErr != nil {
		return "", fmt.Errorf("failed to check username: %w", exErr)
	}
	if exists {
		return "", fmt.Errorf("%w: username already taken", errors.ErrInvalidArgument)
	}

	hashed, hErr := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if hErr != nil {
		return "", fmt.Errorf("failed to hash password: %w", hErr)
	}
	user.Password = string(hashed)

	var accessToken string
	if err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user.ID = uuid.New()
		if _, cErr := as.userRepo.Create(ctx, tx, []*types.User{user}); cErr != nil {
			return fmt.Errorf("failed to create user: %w", cErr)
		}
		tok, issueErr := as.issueToken(ctx, tx, user)
		if issueErr != nil {
			return issueErr
		}
		accessToken = tok
		return nil
	}); err != nil {
		return "", err
	}
	return accessToken, nil
}

func (as *authService) LoginUser(ctx context.Context, username, password string) (string, *types.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", nil, fmt.Errorf("%w: username and password are required", errors.ErrInvalidArgument)
	}

	users, uErr := as.userRepo.GetByUsernames(ctx, nil, []string{username})
	if uErr != nil {
		return "", nil, fmt.Errorf("error retrieving user by username: %w", uErr)
	}
	if len(users) == 0 {
		return "", nil, fmt.Errorf("%w: invalid username or password", errors.ErrUnauthorized)
	}

	user := users[0]
	if hErr := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); hErr != nil {
		return "", nil, fmt.Errorf("%w: invalid username or password", errors.ErrUnauthorized)
	}

	var accessToken string
	if err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tok, issueErr := as.issueToken(ctx, tx, user)
		if issueErr != nil {
			return issueErr
		}
		accessToken = tok
		return nil
	}); err != nil {
		return "", nil, err
	}
	return accessToken, user, nil
}

func (as *authService) issueToken(ctx context.Context, tx *gorm.DB, user *types.User) (string, error) {
	tok, genErr := as.generateAccessToken(user)
	if genErr != nil {
		return "", fmt.Errorf("generate access token error: %w", genErr)
	}
	userToken := types.UserToken{
		ID:          uuid.New(),
		UserID:      user.ID,
		AccessToken: tok,
		ExpiresAt:   time.Now().Add(as.accessTTL),
	}
	if _, ctErr := as.userTokenRepo.Create(ctx, tx, []*types.UserToken{&userToken}); ctErr != nil {
		as.log.Warn("create user token error", "error", ctErr)
		return "", fmt.Errorf("create user token error: %w", ctErr)
	}
	return tok, nil
}

func (as *authService) generateAccessToken(user *types.User) (string, error) {
	claims := JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(as.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(as.jwtSecretKey))
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	if tokenString == "" {
		return ctx, nil
	}
	parsedToken, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(as.jwtSecretKey), nil
	})
	if err != nil {
		return ctx, fmt.Errorf("failed to parse token: %w", err)
	}
	claims, ok := parsedToken.Claims.(*JWTClaims)
	if !ok || !parsedToken.Valid {
		return ctx, fmt.Errorf("%w: invalid or expired token", errors.ErrUnauthorized)
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, fmt.Errorf("invalid user id in token: %w", err)
	}
	rd := &requestdata.RequestData{
		TokenString: tokenString,
		UserID:      userID,
	}
	return requestdata.WithRequestData(ctx, rd), nil
}

func (as *authService) GetAccessTTL() time.Duration {
	return as.accessTTL
}
