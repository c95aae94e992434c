package verify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"gorm.io/gorm"

	amocks "medlink/internal/assistant/mocks"
	"medlink/internal/common"
	"medlink/internal/config"
	"medlink/internal/dbmysql"
	umocks "medlink/internal/user/mocks"
	"medlink/internal/verify/mocks"
	"medlink/pkg/errors"
)

type capturedEmail struct {
	to, subject, body string
}

type fakeEmailService struct {
	sent []capturedEmail
	err  error
}

func (f *fakeEmailService) SendEmail(to, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, capturedEmail{to, subject, body})
	return nil
}

type fixture struct {
	svc   *service
	repo  *mocks.MockVerificationRepository
	users *umocks.MockUserRepository
	gw    *amocks.MockGateway
	email *fakeEmailService
	now   time.Time
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockVerificationRepository(ctrl)
	users := umocks.NewMockUserRepository(ctrl)
	gw := amocks.NewMockGateway(ctrl)
	email := &fakeEmailService{}

	cfg := config.VerificationConfig{
		AllowedDomains: []string{"hospital.org", "medschool.edu"},
		CodeTTL:        10 * time.Minute,
		FromEmail:      "noreply@medlink.example",
	}

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := NewService(repo, users, email, gw, cfg, zap.NewNop()).(*service)
	svc.now = func() time.Time { return now }
	svc.randCode = func() (string, error) { return "123456", nil }

	return &fixture{svc: svc, repo: repo, users: users, gw: gw, email: email, now: now}
}

func TestIssueCode(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, rec *dbmysql.EmailVerification) error {
			assert.Equal(t, "ayesha@hospital.org", rec.Email)
			assert.Equal(t, f.now.Add(10*time.Minute), rec.ExpiresAt)
			assert.NotEqual(t, "123456", rec.CodeHash)
			assert.NoError(t, common.CheckPassword("123456", rec.CodeHash))
			return nil
		})

	err := f.svc.IssueCode(ctx, "Ayesha@Hospital.org")
	require.NoError(t, err)

	require.Len(t, f.email.sent, 1)
	assert.Equal(t, "ayesha@hospital.org", f.email.sent[0].to)
	assert.Contains(t, f.email.sent[0].body, "123456")
}

func TestIssueCodeRejectsOutsideDomain(t *testing.T) {
	f := newFixture(t)

	err := f.svc.IssueCode(context.Background(), "someone@gmail.com")
	require.Error(t, err)
	assert.Equal(t, errors.CodePermissionDenied, errors.CodeOf(err))
	assert.Empty(t, f.email.sent)
}

func TestVerifyCode(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	hash, err := common.HashPassword("123456")
	require.NoError(t, err)

	f.repo.EXPECT().LatestActive(ctx, "ayesha@hospital.org", f.now).Return(&dbmysql.EmailVerification{
		ID:        7,
		Email:     "ayesha@hospital.org",
		CodeHash:  hash,
		ExpiresAt: f.now.Add(5 * time.Minute),
	}, nil)
	f.repo.EXPECT().MarkConsumed(ctx, uint(7), f.now).Return(nil)
	f.users.EXPECT().GetUserByEmail(ctx, "ayesha@hospital.org").Return(&dbmysql.User{
		UserID: "user-1",
		Email:  "ayesha@hospital.org",
	}, nil)
	f.users.EXPECT().MarkVerified(ctx, "user-1").Return(nil)

	err = f.svc.VerifyCode(ctx, "ayesha@hospital.org", "123456")
	require.NoError(t, err)
}

func TestVerifyCodeWrongCode(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	hash, err := common.HashPassword("123456")
	require.NoError(t, err)

	f.repo.EXPECT().LatestActive(ctx, "ayesha@hospital.org", f.now).Return(&dbmysql.EmailVerification{
		ID:       7,
		CodeHash: hash,
	}, nil)

	err = f.svc.VerifyCode(ctx, "ayesha@hospital.org", "000000")
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidArgument, errors.CodeOf(err))
}

func TestVerifyCodeSingleUse(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// No unconsumed row left means a second attempt gets NOT_FOUND.
	f.repo.EXPECT().LatestActive(ctx, "ayesha@hospital.org", f.now).
		Return(nil, gorm.ErrRecordNotFound)

	err := f.svc.VerifyCode(ctx, "ayesha@hospital.org", "123456")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestVerifyCodeNoAccountYet(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	hash, err := common.HashPassword("123456")
	require.NoError(t, err)

	f.repo.EXPECT().LatestActive(ctx, "new@hospital.org", f.now).Return(&dbmysql.EmailVerification{
		ID:       9,
		CodeHash: hash,
	}, nil)
	f.repo.EXPECT().MarkConsumed(ctx, uint(9), f.now).Return(nil)
	f.users.EXPECT().GetUserByEmail(ctx, "new@hospital.org").Return(nil, gorm.ErrRecordNotFound)

	err = f.svc.VerifyCode(ctx, "new@hospital.org", "123456")
	require.NoError(t, err)
}

func TestCheckDomain(t *testing.T) {
	f := newFixture(t)

	assert.True(t, f.svc.CheckDomain("a@hospital.org"))
	assert.True(t, f.svc.CheckDomain("a@icu.hospital.org"))
	assert.False(t, f.svc.CheckDomain("a@nothospital.org"))
	assert.False(t, f.svc.CheckDomain("a@gmail.com"))
}

func TestSummarize(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.gw.EXPECT().Reply(ctx, gomock.Any()).Return("Two sentence summary.", nil)

	out, err := f.svc.Summarize(ctx, "Background: sleep deprivation in residents...")
	require.NoError(t, err)
	assert.Equal(t, "Two sentence summary.", out)

	_, err = f.svc.Summarize(ctx, "  ")
	assert.Equal(t, errors.CodeInvalidArgument, errors.CodeOf(err))
}

func TestRandomCodeShape(t *testing.T) {
	code, err := randomCode()
	require.NoError(t, err)
	assert.Len(t, code, 6)
	for _, c := range code {
		assert.GreaterOrEqual(t, c, '0')
		assert.LessOrEqual(t, c, '9')
	}
}
