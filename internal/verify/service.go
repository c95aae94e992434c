package verify

import (
	"context"
	"crypto/rand"
	stderrors "errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"medlink/internal/assistant"
	"medlink/internal/common"
	"medlink/internal/config"
	"medlink/internal/dbmysql"
	"medlink/internal/user"
	"medlink/pkg/errors"
)

// Service implements the verification edge operations: OTP issue/verify,
// the institutional-domain check, and the abstract summarizer placeholder.
type Service interface {
	IssueCode(ctx context.Context, email string) error
	VerifyCode(ctx context.Context, email, code string) error
	CheckDomain(email string) bool
	Summarize(ctx context.Context, abstract string) (string, error)
}

type service struct {
	repo     VerificationRepository
	users    user.UserRepository
	email    common.EmailService
	gw       assistant.Gateway
	cfg      config.VerificationConfig
	logger   *zap.Logger
	now      func() time.Time
	randCode func() (string, error)
}

func NewService(repo VerificationRepository, users user.UserRepository, email common.EmailService, gw assistant.Gateway, cfg config.VerificationConfig, logger *zap.Logger) Service {
	return &service{
		repo:     repo,
		users:    users,
		email:    email,
		gw:       gw,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
		randCode: randomCode,
	}
}

func randomCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func (s *service) IssueCode(ctx context.Context, email string) error {
	if err := common.ValidateEmail(email); err != nil {
		return errors.InvalidArg(err.Error())
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if !common.DomainAllowed(email, s.cfg.AllowedDomains) {
		return errors.Forbidden("email domain is not on the allowed institution list")
	}

	code, err := s.randCode()
	if err != nil {
		return errors.Wrap(errors.CodeInternal, "failed to generate code", err)
	}
	hash, err := common.HashPassword(code)
	if err != nil {
		return errors.Wrap(errors.CodeInternal, "failed to hash code", err)
	}

	rec := &dbmysql.EmailVerification{
		Email:     email,
		CodeHash:  hash,
		ExpiresAt: s.now().Add(s.cfg.CodeTTL),
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return errors.Wrap(errors.CodeInternal, "failed to store verification code", err)
	}

	body := fmt.Sprintf("Your verification code is %s. It expires in %d minutes.",
		code, int(s.cfg.CodeTTL.Minutes()))
	if err := s.email.SendEmail(email, "Verify your email", body); err != nil {
		return errors.Wrap(errors.CodeInternal, "failed to send verification email", err)
	}

	s.logger.Info("verification code issued", zap.String("email", email))
	return nil
}

func (s *service) VerifyCode(ctx context.Context, email, code string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || code == "" {
		return errors.InvalidArg("email and code required")
	}

	rec, err := s.repo.LatestActive(ctx, email, s.now())
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.NotFound("no active verification code for this address")
		}
		return errors.Wrap(errors.CodeInternal, "failed to look up code", err)
	}

	if err := common.CheckPassword(code, rec.CodeHash); err != nil {
		return errors.InvalidArg("incorrect verification code")
	}

	if err := s.repo.MarkConsumed(ctx, rec.ID, s.now()); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			// Somebody spent it between our read and write.
			return errors.NotFound("verification code already used")
		}
		return errors.Wrap(errors.CodeInternal, "failed to consume code", err)
	}

	u, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			// Pre-registration verification. The code is still spent.
			s.logger.Info("verified address has no account yet", zap.String("email", email))
			return nil
		}
		return errors.Wrap(errors.CodeInternal, "failed to look up user", err)
	}
	if err := s.users.MarkVerified(ctx, u.UserID); err != nil {
		return errors.Wrap(errors.CodeInternal, "failed to mark user verified", err)
	}

	s.logger.Info("user verified",
		zap.String("user_id", u.UserID), zap.String("email", email))
	return nil
}

func (s *service) CheckDomain(email string) bool {
	return common.DomainAllowed(email, s.cfg.AllowedDomains)
}

// Summarize routes a research abstract through the assistant gateway.
func (s *service) Summarize(ctx context.Context, abstract string) (string, error) {
	abstract = strings.TrimSpace(abstract)
	if abstract == "" {
		return "", errors.InvalidArg("abstract cannot be empty")
	}
	summary, err := s.gw.Reply(ctx, []assistant.Turn{
		{Role: assistant.RoleUser, Content: "Summarize this research abstract in two sentences:\n\n" + abstract},
	})
	if err != nil {
		return "", errors.Wrap(errors.CodeInternal, "summarizer is unavailable", err)
	}
	return summary, nil
}
