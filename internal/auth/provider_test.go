package auth

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rogerio-castellano/resto-dashboard/internal/models"
	"github.com/rogerio-castellano/resto-dashboard/internal/repo"
)

type fakeMailer struct {
	sent []string
	err  error
}

func (m *fakeMailer) Send(to, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, body)
	return nil
}

func newTestProvider(mailer *fakeMailer) (*LocalProvider, models.User) {
	users := repo.NewInMemoryUserRepository()
	user, _ := users.CreateUser(models.User{
		Username: "maria",
		Email:    "maria@example.com",
		Role:     "manager",
	})
	return NewLocalProvider(users, mailer, "https://app.example.com"), user
}

func TestSendPasswordReset_InvalidEmail(t *testing.T) {
	provider, _ := newTestProvider(&fakeMailer{})

	err := provider.SendPasswordReset(context.Background(), "bad@@x")
	if CodeOf(err) != CodeInvalidEmail {
		t.Fatalf("expected %s, got %v", CodeInvalidEmail, err)
	}
	if msg := MessageFor(err); msg != "Invalid email address" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestSendPasswordReset_UnknownAccount(t *testing.T) {
	provider, _ := newTestProvider(&fakeMailer{})

	err := provider.SendPasswordReset(context.Background(), "nobody@example.com")
	if CodeOf(err) != CodeUserNotFound {
		t.Fatalf("expected %s, got %v", CodeUserNotFound, err)
	}
	if msg := MessageFor(err); msg != "No account found for this email" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestSendPasswordReset_RateLimited(t *testing.T) {
	mailer := &fakeMailer{}
	provider, user := newTestProvider(mailer)

	for i := 0; i < 3; i++ {
		if err := provider.SendPasswordReset(context.Background(), user.Email); err != nil {
			t.Fatalf("request %d failed: %v", i+1, err)
		}
	}

	err := provider.SendPasswordReset(context.Background(), user.Email)
	if CodeOf(err) != CodeTooManyRequests {
		t.Fatalf("expected %s, got %v", CodeTooManyRequests, err)
	}
	if msg := MessageFor(err); msg != "Too many reset attempts. Try again later." {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestSendPasswordReset_MailFailure(t *testing.T) {
	mailer := &fakeMailer{err: errors.New("connection refused")}
	provider, user := newTestProvider(mailer)

	err := provider.SendPasswordReset(context.Background(), user.Email)
	if CodeOf(err) != CodeNetworkFailure {
		t.Fatalf("expected %s, got %v", CodeNetworkFailure, err)
	}
	if msg := MessageFor(err); msg != "Network error. Check your connection and try again." {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestSendPasswordReset_SendsUsableToken(t *testing.T) {
	mailer := &fakeMailer{}
	provider, user := newTestProvider(mailer)

	if err := provider.SendPasswordReset(context.Background(), user.Email); err != nil {
		t.Fatalf("reset request failed: %v", err)
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("expected 1 mail, got %d", len(mailer.sent))
	}

	body := mailer.sent[0]
	i := strings.Index(body, "token=")
	if i < 0 {
		t.Fatalf("no token in mail body: %q", body)
	}
	token := strings.TrimSpace(body[i+len("token="):])

	email, jti, err := ParseResetToken(token)
	if err != nil {
		t.Fatalf("mailed token does not parse: %v", err)
	}
	if email != user.Email {
		t.Fatalf("token issued for %q, want %q", email, user.Email)
	}
	if jti == "" {
		t.Fatal("token missing jti")
	}
}

func TestParseResetToken_RejectsGarbage(t *testing.T) {
	if _, _, err := ParseResetToken("not-a-token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestParseResetToken_RejectsUnsignedAlg(t *testing.T) {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"none","typ":"JWT"}`))
	claims := base64.RawURLEncoding.EncodeToString([]byte(
		`{"email":"maria@example.com","jti":"abc","purpose":"password_reset","exp":4102444800}`))
	forged := header + "." + claims + "."

	if _, _, err := ParseResetToken(forged); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for alg=none token, got %v", err)
	}
}

func TestMessageForCode_UnrecognizedCodeFallsBack(t *testing.T) {
	if msg := MessageForCode("auth/something-new"); msg != "Could not send reset email. Please try again." {
		t.Fatalf("unexpected fallback: %q", msg)
	}
	if msg := MessageFor(fmt.Errorf("plain error")); msg != "Could not send reset email. Please try again." {
		t.Fatalf("unexpected fallback for plain error: %q", msg)
	}
}
