package utils

import (
    "testing"
    "time"

    "github.com/golang-jwt/jwt/v5"
)

func TestNewAccessTokenClaims(t *testing.T) {
    secret := "test-secret"
    at, err := NewAccessToken(secret, 123, "CLIENT", 15)
    if err != nil {
        t.Fatalf("NewAccessToken: %v", err)
    }
    tok, err := jwt.Parse(at.Token, func(tk *jwt.Token) (interface{}, error) {
        if _, ok := tk.Method.(*jwt.SigningMethodHMAC); !ok {
            t.Fatalf("unexpected signing method %v", tk.Method)
        }
        return []byte(secret), nil
    })
    if err != nil || !tok.Valid {
        t.Fatalf("parse: %v valid=%v", err, tok.Valid)
    }
    claims := tok.Claims.(jwt.MapClaims)
    if sub, _ := claims["sub"].(float64); uint64(sub) != 123 {
        t.Errorf("sub = %v, want 123", claims["sub"])
    }
    if role, _ := claims["role"].(string); role != "CLIENT" {
        t.Errorf("role = %v, want CLIENT", claims["role"])
    }
    if until := time.Until(at.Exp); until < 14*time.Minute || until > 16*time.Minute {
        t.Errorf("expiry %v not ~15m out", until)
    }
}

func TestNewAccessTokenWrongSecret(t *testing.T) {
    at, err := NewAccessToken("secret-a", 1, "ADMIN", 5)
    if err != nil {
        t.Fatalf("NewAccessToken: %v", err)
    }
    _, err = jwt.Parse(at.Token, func(tk *jwt.Token) (interface{}, error) {
        return []byte("secret-b"), nil
    })
    if err == nil {
        t.Error("token verified with the wrong secret")
    }
}

func TestNewRefreshToken(t *testing.T) {
    r1, err := NewRefreshToken(30)
    if err != nil {
        t.Fatalf("NewRefreshToken: %v", err)
    }
    r2, err := NewRefreshToken(30)
    if err != nil {
        t.Fatalf("NewRefreshToken: %v", err)
    }
    if len(r1.Raw) != 96 { // 48 random bytes hex-encoded
        t.Errorf("raw length = %d, want 96", len(r1.Raw))
    }
    if r1.Raw == r2.Raw {
        t.Error("two refresh tokens collided")
    }
    if until := time.Until(r1.Exp); until < 29*24*time.Hour {
        t.Errorf("expiry %v too soon for 30 days", until)
    }
}

func TestHashRefreshRaw(t *testing.T) {
    h1 := HashRefreshRaw("token-one")
    h2 := HashRefreshRaw("token-one")
    h3 := HashRefreshRaw("token-two")
    if h1 != h2 {
        t.Error("hash is not deterministic")
    }
    if h1 == h3 {
        t.Error("distinct tokens produced the same hash")
    }
    if len(h1) != 64 { // sha256 hex
        t.Errorf("hash length = %d, want 64", len(h1))
    }
    if h1 == "token-one" {
        t.Error("hash leaked the raw token")
    }
}
