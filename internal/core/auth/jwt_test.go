package auth

import (
	"errors"
	"testing"
	"time"
)

const testKey = "0123456789abcdef0123456789abcdef"

func TestNewRejectsShortKey(t *testing.T) {
	if _, err := New("too-short", "iss", "aud", time.Hour); !errors.Is(err, ErrWeakKey) {
		t.Fatalf("err = %v, want ErrWeakKey", err)
	}
	if _, err := New(testKey, "iss", "aud", time.Hour); err != nil {
		t.Fatalf("unexpected error for a long key: %v", err)
	}
}

func TestIssueParseRoundtrip(t *testing.T) {
	j, err := New(testKey, "teadiary", "teadiary-web", time.Hour)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	token, err := j.Issue("user-1", "anna@example.com", "Admin")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	claims, err := j.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.Subject != "user-1" {
		t.Fatalf("subject = %q", claims.Subject)
	}
	if claims.Email != "anna@example.com" || claims.Role != "Admin" {
		t.Fatalf("email/role = %q/%q", claims.Email, claims.Role)
	}
	if claims.Issuer != "teadiary" {
		t.Fatalf("issuer = %q", claims.Issuer)
	}
}

// A zero TTL means exp == iat; with no leeway such a token is already dead.
func TestZeroTTLTokenRejected(t *testing.T) {
	j, err := New(testKey, "teadiary", "teadiary-web", 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	token, err := j.Issue("user-1", "a@b.c", "")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := j.Parse(token); err == nil {
		t.Fatal("expired-at-birth token was accepted")
	}
}

func TestParseRejectsForeignIssuerAndAudience(t *testing.T) {
	issuerA, _ := New(testKey, "teadiary", "teadiary-web", time.Hour)
	issuerB, _ := New(testKey, "someone-else", "teadiary-web", time.Hour)
	otherAud, _ := New(testKey, "teadiary", "other-app", time.Hour)

	fromB, err := issuerB.Issue("user-1", "a@b.c", "")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := issuerA.Parse(fromB); err == nil {
		t.Fatal("token with a foreign issuer was accepted")
	}

	forOther, err := otherAud.Issue("user-1", "a@b.c", "")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := issuerA.Parse(forOther); err == nil {
		t.Fatal("token for a foreign audience was accepted")
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	a, _ := New(testKey, "teadiary", "teadiary-web", time.Hour)
	b, _ := New("ffffffffffffffffffffffffffffffff", "teadiary", "teadiary-web", time.Hour)

	token, err := b.Issue("user-1", "a@b.c", "")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := a.Parse(token); err == nil {
		t.Fatal("token signed with a different secret was accepted")
	}
}

func TestParseRequiresSubject(t *testing.T) {
	j, _ := New(testKey, "teadiary", "teadiary-web", time.Hour)
	token, err := j.Issue("", "a@b.c", "")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := j.Parse(token); err == nil {
		t.Fatal("token without a subject was accepted")
	}
}
