package tests

import (
	"strings"
	"testing"

	crypt "github.com/Sayceee/LoanSync1/internal/app/crypto"
)

func defaultParams() crypt.Argon2Params {
	return crypt.Argon2Params{
		Time:      1,
		MemoryKiB: 32 * 1024,
		Threads:   1,
		KeyLen:    32,
		SaltLen:   16,
	}
}

// Хэширование и успешная проверка
func TestHashAndVerifyPassword_OK(t *testing.T) {
	params := defaultParams()
	password := "super-secret-password"

	hash, err := crypt.HashPassword(password, params)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	ok, err := crypt.VerifyPassword(password, hash)
	if err != nil {
		t.Fatalf("VerifyPassword error: %v", err)
	}

	if !ok {
		t.Fatal("expected password to be valid")
	}
}

// Неверный пароль
func TestVerifyPassword_InvalidPassword(t *testing.T) {
	params := defaultParams()

	hash, err := crypt.HashPassword("correct-password", params)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	ok, err := crypt.VerifyPassword("wrong-password", hash)
	if err != nil {
		t.Fatalf("VerifyPassword error: %v", err)
	}

	if ok {
		t.Fatal("expected password to be invalid")
	}
}

// Пустой пароль
func TestHashPassword_EmptyPassword(t *testing.T) {
	_, err := crypt.HashPassword("", defaultParams())
	if err == nil {
		t.Fatal("expected error for empty password, got nil")
	}

	_, err = crypt.HashPassword("   ", defaultParams())
	if err == nil {
		t.Fatal("expected error for blank password, got nil")
	}
}

// Формат хэша: argon2id$v=19$m=...,t=...,p=...$salt$hash
func TestHashPassword_Format(t *testing.T) {
	hash, err := crypt.HashPassword("password123", defaultParams())
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if !strings.HasPrefix(hash, "argon2id$v=19$m=32768,t=1,p=1$") {
		t.Fatalf("unexpected hash prefix: %q", hash)
	}
	if parts := strings.Split(hash, "$"); len(parts) != 5 {
		t.Fatalf("expected 5 hash parts, got %d (%q)", len(parts), hash)
	}
}

// Соль генерируется каждый раз заново: два хэша одного пароля различаются
func TestHashPassword_UniqueSalt(t *testing.T) {
	h1, err := crypt.HashPassword("same-password", defaultParams())
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := crypt.HashPassword("same-password", defaultParams())
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if h1 == h2 {
		t.Fatal("expected different hashes for the same password")
	}
}

// Повреждённый хэш — ошибка, а не false
func TestVerifyPassword_MalformedHash(t *testing.T) {
	if _, err := crypt.VerifyPassword("password", "not-a-hash"); err == nil {
		t.Fatal("expected error for malformed hash, got nil")
	}

	if _, err := crypt.VerifyPassword("password", "argon2id$v=19$bad$salt$hash"); err == nil {
		t.Fatal("expected error for malformed params, got nil")
	}
}
