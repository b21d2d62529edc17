package cadastro

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestArgon2_Hash(t *testing.T) {
	h := Argon2()

	hash, err := h.Hash([]byte("52998224725"))
	if err != nil {
		t.Fatalf("Hash() error: %v", err)
	}

	if !strings.HasPrefix(hash, "$argon2id$v=19$m=65536,t=1,p=4$") {
		t.Errorf("Hash() = %q, want default-parameter argon2id prefix", hash)
	}
}

func TestArgon2_DifferentSalts(t *testing.T) {
	h := Argon2()
	plaintext := []byte("52998224725")

	hash1, _ := h.Hash(plaintext)
	hash2, _ := h.Hash(plaintext)

	if hash1 == hash2 {
		t.Error("same plaintext should produce different hashes (random salt)")
	}
}

func TestArgon2WithParams(t *testing.T) {
	h := Argon2WithParams(Argon2Params{Time: 2, Memory: 32 * 1024, Threads: 2, KeyLen: 16, SaltLen: 8})

	hash, err := h.Hash([]byte("test"))
	if err != nil {
		t.Fatalf("Hash() error: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$v=19$m=32768,t=2,p=2$") {
		t.Errorf("Hash() = %q, want custom parameters in prefix", hash)
	}
}

func TestBcrypt_Hash(t *testing.T) {
	h := BcryptWithCost(bcrypt.MinCost)
	plaintext := []byte("52998224725")

	hash, err := h.Hash(plaintext)
	if err != nil {
		t.Fatalf("Hash() error: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), plaintext); err != nil {
		t.Errorf("CompareHashAndPassword() error: %v", err)
	}
}

func TestBcrypt_TooLong(t *testing.T) {
	h := BcryptWithCost(bcrypt.MinCost)

	_, err := h.Hash([]byte(strings.Repeat("x", 73)))
	if !errors.Is(err, bcrypt.ErrPasswordTooLong) {
		t.Errorf("Hash(73 bytes) error = %v, want ErrPasswordTooLong", err)
	}
}

func TestHMACHasher(t *testing.T) {
	key := []byte("0123456789abcdef")
	h := HMACHasher(key)

	hash, err := h.Hash([]byte("52998224725"))
	if err != nil {
		t.Fatalf("Hash() error: %v", err)
	}

	mac := hmac.New(sha256.New, key)
	mac.Write([]byte("52998224725"))
	if want := hex.EncodeToString(mac.Sum(nil)); hash != want {
		t.Errorf("Hash() = %q, want %q", hash, want)
	}

	again, _ := h.Hash([]byte("52998224725"))
	if again != hash {
		t.Error("HMAC should be deterministic under one key")
	}

	sum := sha256.Sum256([]byte("52998224725"))
	if hash == hex.EncodeToString(sum[:]) {
		t.Error("HMAC should differ from the unkeyed digest")
	}
}

func TestHMACHasher_KeyChangesDigest(t *testing.T) {
	a, _ := HMACHasher([]byte("0123456789abcdef")).Hash([]byte("52998224725"))
	b, _ := HMACHasher([]byte("0123456789abcdeg")).Hash([]byte("52998224725"))

	if a == b {
		t.Error("different keys should produce different digests")
	}
}

func TestHMACHasher_CopiesKey(t *testing.T) {
	key := []byte("0123456789abcdef")
	h := HMACHasher(key)
	before, _ := h.Hash([]byte("x"))

	key[0] = 'X'
	after, _ := h.Hash([]byte("x"))
	if before != after {
		t.Error("HMACHasher should not observe caller changes to the key")
	}
}

func TestHMACHasher_ShortKey(t *testing.T) {
	for _, key := range [][]byte{nil, []byte("short")} {
		if _, err := HMACHasher(key).Hash([]byte("52998224725")); !errors.Is(err, ErrInvalidKey) {
			t.Errorf("HMACHasher(%q).Hash() error = %v, want ErrInvalidKey", key, err)
		}
	}
}

func TestBuiltinHashers_NoHMAC(t *testing.T) {
	if _, ok := builtinHashers()[HashHMAC]; ok {
		t.Error("builtin hashers must not carry an unkeyed hmac")
	}
}

func TestSHA256Hasher(t *testing.T) {
	h := SHA256Hasher()

	hash, err := h.Hash([]byte("52998224725"))
	if err != nil {
		t.Fatalf("Hash() error: %v", err)
	}

	sum := sha256.Sum256([]byte("52998224725"))
	if hash != hex.EncodeToString(sum[:]) {
		t.Errorf("Hash() = %q, want hex digest", hash)
	}

	again, _ := h.Hash([]byte("52998224725"))
	if hash != again {
		t.Error("SHA-256 should be deterministic")
	}
}

func TestSHA512Hasher(t *testing.T) {
	hash, err := SHA512Hasher().Hash([]byte("52998224725"))
	if err != nil {
		t.Fatalf("Hash() error: %v", err)
	}
	if len(hash) != 128 {
		t.Errorf("len(Hash()) = %d, want 128", len(hash))
	}
}

func TestIsValidHashAlgo(t *testing.T) {
	for _, algo := range []HashAlgo{HashHMAC, HashSHA256, HashSHA512, HashArgon2, HashBcrypt} {
		if !IsValidHashAlgo(algo) {
			t.Errorf("IsValidHashAlgo(%q) = false, want true", algo)
		}
	}
	if IsValidHashAlgo("md5") {
		t.Error(`IsValidHashAlgo("md5") = true, want false`)
	}
}
