package service

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/acadsync/faculty-portal-api/internal/models"
	"github.com/acadsync/faculty-portal-api/internal/store"
	appErrors "github.com/acadsync/faculty-portal-api/pkg/errors"
)

// adminUserID is the synthetic id carried by administrator tokens; faculty
// ids come from the store.
const adminUserID = "admin"

// AuthConfig defines configuration for authentication flows.
type AuthConfig struct {
	AdminUsername string
	AdminPassword string
	Secret        string
	Expiration    time.Duration
	Issuer        string
}

// AuthService authenticates the portal administrator and faculty accounts.
// Faculty credentials are the ones derived during ingestion, so they only
// exist once a timetable has been uploaded.
type AuthService struct {
	store         *store.TimetableStore
	validator     *validator.Validate
	logger        *zap.Logger
	config        AuthConfig
	adminPassHash []byte
}

// NewAuthService constructs an AuthService instance. The configured admin
// password is hashed once up front so login compares against a bcrypt digest.
func NewAuthService(st *store.TimetableStore, validate *validator.Validate, logger *zap.Logger, config AuthConfig) (*AuthService, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(config.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash admin password")
	}
	return &AuthService{
		store:         st,
		validator:     validate,
		logger:        logger,
		config:        config,
		adminPassHash: hash,
	}, nil
}

// Login authenticates either role and returns an issued token.
func (s *AuthService) Login(req models.LoginRequest) (*models.LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid login payload")
	}

	if req.Email == s.config.AdminUsername {
		if err := bcrypt.CompareHashAndPassword(s.adminPassHash, []byte(req.Password)); err != nil {
			return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "invalid email or password")
		}
		return s.issue(models.UserInfo{
			ID:    adminUserID,
			Name:  "Administrator",
			Email: s.config.AdminUsername,
			Role:  models.RoleAdmin,
		})
	}

	faculty := s.store.FacultyByCredentials(req.Email, req.Password)
	if faculty == nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "invalid email or password")
	}

	return s.issue(models.UserInfo{
		ID:    faculty.ID,
		Name:  faculty.Name,
		Email: faculty.Email,
		Role:  models.RoleFaculty,
	})
}

// ValidateToken parses and verifies an access token, returning its claims.
func (s *AuthService) ValidateToken(token string) (*models.JWTClaims, error) {
	claims := &models.JWTClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, appErrors.Clone(appErrors.ErrUnauthorized, "unexpected signing method")
		}
		return []byte(s.config.Secret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid or expired token")
	}
	return claims, nil
}

func (s *AuthService) issue(user models.UserInfo) (*models.LoginResponse, error) {
	now := time.Now().UTC()
	claims := models.JWTClaims{
		UserID: user.ID,
		Role:   user.Role,
		Email:  user.Email,
		Name:   user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.config.Issuer,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.Expiration)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.Secret))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign access token")
	}

	return &models.LoginResponse{
		AccessToken: token,
		ExpiresIn:   int64(s.config.Expiration.Seconds()),
		User:        user,
		IssuedAt:    now,
	}, nil
}
