package user

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"medlink/internal/common"
	"medlink/internal/config"
	"medlink/internal/dbmysql"
	"medlink/pkg/errors"
)

type UserService interface {
	RegisterUser(ctx context.Context, handle, email, password, specialty string) (*dbmysql.User, string, error)
	LoginUser(ctx context.Context, handle, password string) (*dbmysql.User, string, error)
	GetProfile(ctx context.Context, userID string) (*dbmysql.User, error)
	UpdateProfile(ctx context.Context, userID, email, specialty, bio string) error
}

type userService struct {
	userRepo UserRepository
	verCfg   config.VerificationConfig
	logger   *zap.Logger
}

func NewUserService(userRepo UserRepository, verCfg config.VerificationConfig, logger *zap.Logger) UserService {
	return &userService{userRepo: userRepo, verCfg: verCfg, logger: logger}
}

func (s *userService) RegisterUser(ctx context.Context, handle, email, password, specialty string) (*dbmysql.User, string, error) {
	if err := common.ValidateHandle(handle); err != nil {
		return nil, "", errors.InvalidArg(err.Error())
	}
	if err := common.ValidateEmail(email); err != nil {
		return nil, "", errors.InvalidArg(err.Error())
	}
	if err := common.ValidatePassword(password); err != nil {
		return nil, "", errors.InvalidArg(err.Error())
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if !common.DomainAllowed(email, s.verCfg.AllowedDomains) {
		return nil, "", errors.Forbidden("email domain is not on the allowed institution list")
	}

	exists, err := s.userRepo.CheckUserExists(ctx, handle)
	if err != nil {
		return nil, "", errors.Wrap(errors.CodeInternal, "failed to check handle", err)
	}
	if exists {
		return nil, "", errors.AlreadyExists("handle already exists")
	}

	hashed, err := common.HashPassword(password)
	if err != nil {
		return nil, "", errors.Wrap(errors.CodeInternal, "failed to hash password", err)
	}

	user := &dbmysql.User{
		UserID:       uuid.NewString(),
		Handle:       handle,
		Email:        email,
		PasswordHash: hashed,
		Specialty:    specialty,
		Status:       "active",
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, "", errors.Wrap(errors.CodeInternal, "failed to create user", err)
	}

	token, err := common.GenerateToken(user.UserID, user.Handle)
	if err != nil {
		return nil, "", errors.Wrap(errors.CodeInternal, "failed to issue token", err)
	}

	s.logger.Info("user registered",
		zap.String("user_id", user.UserID), zap.String("handle", user.Handle))
	return user, token, nil
}

func (s *userService) LoginUser(ctx context.Context, handle, password string) (*dbmysql.User, string, error) {
	if handle == "" || password == "" {
		return nil, "", errors.InvalidArg("handle and password required")
	}

	user, err := s.userRepo.GetUserByHandle(ctx, handle)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", errors.Unauthorized("invalid credentials")
		}
		return nil, "", errors.Wrap(errors.CodeInternal, "failed to look up user", err)
	}
	if user.Status != "active" {
		return nil, "", errors.Unauthorized("user is not active")
	}
	if err := common.CheckPassword(password, user.PasswordHash); err != nil {
		return nil, "", errors.Unauthorized("invalid credentials")
	}

	token, err := common.GenerateToken(user.UserID, user.Handle)
	if err != nil {
		return nil, "", errors.Wrap(errors.CodeInternal, "failed to issue token", err)
	}
	return user, token, nil
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*dbmysql.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NotFound("user not found")
		}
		return nil, errors.Wrap(errors.CodeInternal, "failed to load profile", err)
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID, email, specialty, bio string) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.NotFound("user not found")
		}
		return errors.Wrap(errors.CodeInternal, "failed to load profile", err)
	}

	if email != "" {
		if err := common.ValidateEmail(email); err != nil {
			return errors.InvalidArg(err.Error())
		}
		email = strings.ToLower(strings.TrimSpace(email))
		if !common.DomainAllowed(email, s.verCfg.AllowedDomains) {
			return errors.Forbidden("email domain is not on the allowed institution list")
		}
		// A changed address needs a fresh verification pass.
		user.Email = email
		user.Verified = false
	}
	if specialty != "" {
		user.Specialty = specialty
	}
	if bio != "" {
		user.Bio = bio
	}

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return errors.Wrap(errors.CodeInternal, "failed to update profile", err)
	}
	return nil
}
