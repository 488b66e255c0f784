package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rlozano/campus-canteen-backend/internal/users"
	pkgauth "github.com/rlozano/campus-canteen-backend/pkg/auth"
	"github.com/rlozano/campus-canteen-backend/pkg/auth/session"
	"github.com/rlozano/campus-canteen-backend/pkg/codes"
	"github.com/rlozano/campus-canteen-backend/pkg/config"
	"github.com/rlozano/campus-canteen-backend/pkg/db"
	"github.com/rlozano/campus-canteen-backend/pkg/db/models"
	"github.com/rlozano/campus-canteen-backend/pkg/enums"
	pkgerrors "github.com/rlozano/campus-canteen-backend/pkg/errors"
	"github.com/rlozano/campus-canteen-backend/pkg/security"
	"gorm.io/gorm"
)

// Service exposes registration, login, and session rotation.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	Refresh(ctx context.Context, req RefreshRequest) (*TokenPairResponse, error)
	Logout(ctx context.Context, accessToken string) error
}

type service struct {
	repo     *users.Repository
	sessions *session.Manager
	jwtCfg   config.JWTConfig
	pwCfg    config.PasswordConfig
	now      func() time.Time
}

// NewService wires auth dependencies.
func NewService(repo *users.Repository, sessions *session.Manager, jwtCfg config.JWTConfig, pwCfg config.PasswordConfig) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "users repository required")
	}
	if sessions == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "session manager required")
	}
	return &service{
		repo:     repo,
		sessions: sessions,
		jwtCfg:   jwtCfg,
		pwCfg:    pwCfg,
		now:      time.Now,
	}, nil
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	role, ok := enums.ParseRole(req.Role)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "role must be student or owner")
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))
	email := strings.ToLower(strings.TrimSpace(req.Email))

	taken, err := s.repo.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check existing user")
	}
	if taken {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "username or email already registered")
	}

	hash, err := security.HashPassword(req.Password, s.pwCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	studentID := ""
	if role == enums.RoleStudent {
		studentID, err = codes.StudentID()
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "generate student id")
		}
	}

	user, err := s.repo.Create(ctx, users.CreateUserDTO{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		StudentID:    studentID,
	})
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "username or email already registered")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create user")
	}

	return s.issueTokens(ctx, user)
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	role, ok := enums.ParseRole(req.Role)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "role must be student or owner")
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))
	user, err := s.repo.FindByUsernameRole(ctx, username, role)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid username or password")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user")
	}

	match, err := security.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !match {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid username or password")
	}

	return s.issueTokens(ctx, user)
}

func (s *service) Refresh(ctx context.Context, req RefreshRequest) (*TokenPairResponse, error) {
	claims, err := pkgauth.ParseAccessTokenAllowExpired(s.jwtCfg, req.AccessToken)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token")
	}
	if claims.ID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing session id")
	}

	newAccessID, newRefresh, err := s.sessions.Rotate(ctx, claims.ID, req.RefreshToken)
	if err != nil {
		if errors.Is(err, session.ErrInvalidRefreshToken) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid refresh token")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "rotate session")
	}

	access, err := pkgauth.MintAccessToken(s.jwtCfg, s.now(), pkgauth.AccessTokenPayload{
		UserID: claims.UserID,
		Role:   claims.Role,
		JTI:    newAccessID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint access token")
	}

	return &TokenPairResponse{AccessToken: access, RefreshToken: newRefresh}, nil
}

func (s *service) Logout(ctx context.Context, accessToken string) error {
	claims, err := pkgauth.ParseAccessTokenAllowExpired(s.jwtCfg, accessToken)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token")
	}
	if claims.ID == "" {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "missing session id")
	}
	if err := s.sessions.Revoke(ctx, claims.ID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "revoke session")
	}
	return nil
}

func (s *service) issueTokens(ctx context.Context, user *models.User) (*AuthResponse, error) {
	accessID := session.NewAccessID()

	refresh, err := s.sessions.Generate(ctx, accessID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create session")
	}

	access, err := pkgauth.MintAccessToken(s.jwtCfg, s.now(), pkgauth.AccessTokenPayload{
		UserID: user.ID,
		Role:   user.Role,
		JTI:    accessID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint access token")
	}

	return &AuthResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         users.FromModel(user),
	}, nil
}
