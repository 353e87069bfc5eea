package auth

import "testing"

func TestHashAndVerifyPassword(t *testing.T) {
	digest, err := HashPassword("welcome123")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if digest == "welcome123" {
		t.Fatal("digest must not equal the plaintext password")
	}

	if !VerifyPassword("welcome123", digest) {
		t.Error("correct password should verify")
	}
	if VerifyPassword("wrong-password", digest) {
		t.Error("wrong password should not verify")
	}
}

func TestHashPasswordProducesDistinctDigests(t *testing.T) {
	first, err := HashPassword("welcome123")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	second, err := HashPassword("welcome123")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if first == second {
		t.Error("bcrypt digests should be salted and differ between calls")
	}
}

func TestNewAuthenticationToken(t *testing.T) {
	first := NewAuthenticationToken()
	second := NewAuthenticationToken()

	if first == "" {
		t.Fatal("token should not be empty")
	}
	if first == second {
		t.Error("tokens should be unique per call")
	}
}

func TestTokenMatches(t *testing.T) {
	token := NewAuthenticationToken()
	if !TokenMatches(token, token) {
		t.Error("identical tokens should match")
	}
	if TokenMatches(token, NewAuthenticationToken()) {
		t.Error("different tokens should not match")
	}
	if TokenMatches("", token) {
		t.Error("empty token should not match")
	}
}
