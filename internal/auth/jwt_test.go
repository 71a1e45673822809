package auth

import (
	"testing"
	"time"
)

func TestGenerateAndParseToken(t *testing.T) {
	secret := "test-secret"

	tok, err := GenerateToken(secret, 42, "CLIENT", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	claims, err := ParseToken(secret, tok)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Role != "CLIENT" {
		t.Errorf("Role = %q, want CLIENT", claims.Role)
	}
}

func TestParseTokenRejects(t *testing.T) {
	secret := "test-secret"

	t.Run("wrong secret", func(t *testing.T) {
		tok, err := GenerateToken(secret, 1, "CLIENT", time.Hour)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := ParseToken("other-secret", tok); err == nil {
			t.Fatal("ParseToken() accepted a token signed with a different secret")
		}
	})

	t.Run("expired", func(t *testing.T) {
		tok, err := GenerateToken(secret, 1, "CLIENT", -time.Minute)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := ParseToken(secret, tok); err == nil {
			t.Fatal("ParseToken() accepted an expired token")
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := ParseToken(secret, "not.a.token"); err == nil {
			t.Fatal("ParseToken() accepted garbage")
		}
	})

	t.Run("missing user id", func(t *testing.T) {
		tok, err := GenerateToken(secret, 0, "CLIENT", time.Hour)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := ParseToken(secret, tok); err == nil {
			t.Fatal("ParseToken() accepted a token without a user id")
		}
	})
}
