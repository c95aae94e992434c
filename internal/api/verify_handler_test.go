package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"medlink/pkg/errors"
)

type fakeVerifyService struct {
	issued   []string
	verified map[string]string
	issueErr error
}

func (f *fakeVerifyService) IssueCode(_ context.Context, email string) error {
	if f.issueErr != nil {
		return f.issueErr
	}
	f.issued = append(f.issued, email)
	return nil
}

func (f *fakeVerifyService) VerifyCode(_ context.Context, email, code string) error {
	if f.verified[email] != code {
		return errors.InvalidArg("incorrect verification code")
	}
	return nil
}

func (f *fakeVerifyService) CheckDomain(email string) bool {
	return strings.HasSuffix(email, "@hospital.org")
}

func (f *fakeVerifyService) Summarize(_ context.Context, abstract string) (string, error) {
	return "summary of: " + abstract, nil
}

func newVerifyRouter(svc *fakeVerifyService) http.Handler {
	r := NewRouter(zap.NewNop())
	h := NewVerifyHandler(svc, zap.NewNop())
	h.Register(Public(r))
	return r
}

func TestVerifyHandlerSendCode(t *testing.T) {
	svc := &fakeVerifyService{}
	router := newVerifyRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/verify/send-code",
		strings.NewReader(`{"email":"a@hospital.org"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"a@hospital.org"}, svc.issued)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestVerifyHandlerSendCodeForbiddenDomain(t *testing.T) {
	svc := &fakeVerifyService{issueErr: errors.Forbidden("domain not allowed")}
	router := newVerifyRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/verify/send-code",
		strings.NewReader(`{"email":"a@gmail.com"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestVerifyHandlerCheckCode(t *testing.T) {
	svc := &fakeVerifyService{verified: map[string]string{"a@hospital.org": "123456"}}
	router := newVerifyRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/verify/check-code",
		strings.NewReader(`{"email":"a@hospital.org","code":"123456"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/verify/check-code",
		strings.NewReader(`{"email":"a@hospital.org","code":"000000"}`))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerifyHandlerCheckDomain(t *testing.T) {
	router := newVerifyRouter(&fakeVerifyService{})

	req := httptest.NewRequest(http.MethodPost, "/verify/check-domain",
		strings.NewReader(`{"email":"a@hospital.org"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"allowed":true`)
}

func TestVerifyHandlerPreflight(t *testing.T) {
	router := newVerifyRouter(&fakeVerifyService{})

	req := httptest.NewRequest(http.MethodOptions, "/verify/send-code", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestVerifyHandlerBadBody(t *testing.T) {
	router := newVerifyRouter(&fakeVerifyService{})

	req := httptest.NewRequest(http.MethodPost, "/verify/send-code",
		strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
