package utils

import "testing"

func TestHashAndVerifyPassword(t *testing.T) {
    hash, err := HashPassword("hunter2!", 4) // low cost keeps the test fast
    if err != nil {
        t.Fatalf("HashPassword: %v", err)
    }
    if hash == "hunter2!" {
        t.Fatal("hash equals the plain password")
    }
    if !VerifyPassword(hash, "hunter2!") {
        t.Error("correct password rejected")
    }
    if VerifyPassword(hash, "hunter3!") {
        t.Error("wrong password accepted")
    }
    if VerifyPassword(hash, "") {
        t.Error("empty password accepted")
    }
}

func TestHashPasswordSalted(t *testing.T) {
    h1, err := HashPassword("same-password", 4)
    if err != nil {
        t.Fatalf("HashPassword: %v", err)
    }
    h2, err := HashPassword("same-password", 4)
    if err != nil {
        t.Fatalf("HashPassword: %v", err)
    }
    if h1 == h2 {
        t.Error("two hashes of the same password are identical")
    }
}

func TestVerifyPasswordGarbageHash(t *testing.T) {
    if VerifyPassword("not-a-bcrypt-hash", "anything") {
        t.Error("garbage hash verified")
    }
}
