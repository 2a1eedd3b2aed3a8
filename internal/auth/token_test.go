package auth

import (
	"testing"
	"time"
)

func TestSignAndVerifyToken(t *testing.T) {
	secret := []byte("super-secret")

	token, err := SignToken(42, secret, time.Hour)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	userID, err := VerifyToken(token, secret)
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}
	if userID != 42 {
		t.Fatalf("expected user id 42 got %d", userID)
	}
}

func TestVerifyTokenExpired(t *testing.T) {
	secret := []byte("super-secret")

	token, err := SignToken(42, secret, -time.Minute)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := VerifyToken(token, secret); err == nil {
		t.Fatal("expected error for expired token with valid signature")
	}
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	token, err := SignToken(42, []byte("right-secret"), time.Hour)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := VerifyToken(token, []byte("wrong-secret")); err == nil {
		t.Fatal("expected error for token signed with a different secret")
	}
}

func TestVerifyTokenMalformed(t *testing.T) {
	if _, err := VerifyToken("not.a.token", []byte("secret")); err == nil {
		t.Fatal("expected error for malformed token")
	}
}
