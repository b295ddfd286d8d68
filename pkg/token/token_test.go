package token

import (
	"errors"
	"testing"
	"time"
)

func TestIssueAndVerify(t *testing.T) {
	svc := New("test-secret")

	tok, err := svc.Issue("a@b.com", time.Hour)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	email, err := svc.Verify(tok)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if email != "a@b.com" {
		t.Errorf("email = %q, want %q", email, "a@b.com")
	}
}

func TestVerifyExpired(t *testing.T) {
	svc := New("test-secret")

	tok, err := svc.Issue("a@b.com", -time.Minute)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := svc.Verify(tok); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify expired token: err = %v, want ErrInvalidToken", err)
	}
}

func TestIssueWithoutTTLNeverExpires(t *testing.T) {
	svc := New("test-secret")

	tok, err := svc.Issue("a@b.com", 0)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	email, err := svc.Verify(tok)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if email != "a@b.com" {
		t.Errorf("email = %q, want %q", email, "a@b.com")
	}
}

func TestVerifyFailuresAreGeneric(t *testing.T) {
	svc := New("test-secret")
	other := New("other-secret")

	forged, err := other.Issue("a@b.com", time.Hour)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	cases := map[string]string{
		"malformed":    "not-a-token",
		"empty":        "",
		"wrong secret": forged,
	}
	for name, tok := range cases {
		if _, err := svc.Verify(tok); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("%s: err = %v, want ErrInvalidToken", name, err)
		}
	}
}
