package cadastro

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"hash"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

// HashAlgo represents a supported hashing algorithm.
// Use these constants in struct tags: `store.hash:"hmac"`
type HashAlgo string

const (
	// HashHMAC produces a keyed HMAC-SHA256 fingerprint. Equal inputs under
	// the same key hash equally, so it can index documents such as a CPF
	// without the digest being reversible by enumerating the document space.
	// It needs a key and is not registered by default; see HMACHasher.
	HashHMAC HashAlgo = "hmac"

	// HashSHA256 produces an unkeyed hex digest. Only suited to values with
	// a large input space, never to CPFs or phone numbers.
	HashSHA256 HashAlgo = "sha256"

	// HashSHA512 produces an unkeyed hex digest.
	HashSHA512 HashAlgo = "sha512"

	// HashArgon2 uses salted Argon2id for secrets that are verified, never
	// looked up. Equal inputs hash differently.
	HashArgon2 HashAlgo = "argon2"

	// HashBcrypt uses salted bcrypt. Input is limited to 72 bytes.
	HashBcrypt HashAlgo = "bcrypt"
)

var validHashAlgos = map[HashAlgo]bool{
	HashHMAC:   true,
	HashSHA256: true,
	HashSHA512: true,
	HashArgon2: true,
	HashBcrypt: true,
}

// IsValidHashAlgo returns true if the algorithm is a known hash algorithm.
func IsValidHashAlgo(algo HashAlgo) bool {
	return validHashAlgos[algo]
}

// MinHMACKeyLen is the shortest fingerprint key HMACHasher accepts.
const MinHMACKeyLen = 16

// Hasher performs one-way hashing.
type Hasher interface {
	// Hash returns the hash of plaintext as a string.
	Hash(plaintext []byte) (string, error)
}

// digestHasher hex-encodes a hash.Hash over the plaintext.
type digestHasher struct {
	newHash func() hash.Hash
}

func (h *digestHasher) Hash(plaintext []byte) (string, error) {
	d := h.newHash()
	d.Write(plaintext)
	return hex.EncodeToString(d.Sum(nil)), nil
}

// HMACHasher returns a keyed HMAC-SHA256 fingerprint hasher producing 64 hex
// characters. The key is copied. Hashing fails with ErrInvalidKey when the
// key is shorter than MinHMACKeyLen.
func HMACHasher(key []byte) Hasher {
	key = append([]byte(nil), key...)
	if len(key) < MinHMACKeyLen {
		return shortKeyHasher(len(key))
	}
	return &digestHasher{newHash: func() hash.Hash { return hmac.New(sha256.New, key) }}
}

type shortKeyHasher int

func (n shortKeyHasher) Hash([]byte) (string, error) {
	return "", fmt.Errorf("%w: hmac key has %d bytes, need %d", ErrInvalidKey, int(n), MinHMACKeyLen)
}

// SHA256Hasher returns an unkeyed SHA-256 hasher producing 64 hex characters.
func SHA256Hasher() Hasher {
	return &digestHasher{newHash: sha256.New}
}

// SHA512Hasher returns an unkeyed SHA-512 hasher producing 128 hex characters.
func SHA512Hasher() Hasher {
	return &digestHasher{newHash: sha512.New}
}

// Argon2Params configures Argon2id hashing.
type Argon2Params struct {
	Time    uint32 // Number of iterations
	Memory  uint32 // Memory usage in KiB
	Threads uint8  // Parallelism factor
	KeyLen  uint32 // Output key length
	SaltLen uint32 // Salt length
}

// DefaultArgon2Params returns the OWASP baseline for Argon2id.
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{Time: 1, Memory: 64 * 1024, Threads: 4, KeyLen: 32, SaltLen: 16}
}

type argon2Hasher Argon2Params

// Argon2 returns an Argon2id hasher with default parameters.
func Argon2() Hasher {
	return Argon2WithParams(DefaultArgon2Params())
}

// Argon2WithParams returns an Argon2id hasher with custom parameters.
func Argon2WithParams(params Argon2Params) Hasher {
	h := argon2Hasher(params)
	return &h
}

// Hash returns the PHC string $argon2id$v=19$m=<KiB>,t=<time>,p=<threads>$<salt>$<key>.
func (h *argon2Hasher) Hash(plaintext []byte) (string, error) {
	salt := make([]byte, h.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	key := argon2.IDKey(plaintext, salt, h.Time, h.Memory, h.Threads, h.KeyLen)

	enc := base64.RawStdEncoding
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, h.Memory, h.Time, h.Threads,
		enc.EncodeToString(salt), enc.EncodeToString(key)), nil
}

type bcryptHasher int

// Bcrypt returns a bcrypt hasher with the library default cost.
func Bcrypt() Hasher {
	return BcryptWithCost(bcrypt.DefaultCost)
}

// BcryptWithCost returns a bcrypt hasher with a specific cost factor.
func BcryptWithCost(cost int) Hasher {
	return bcryptHasher(cost)
}

func (cost bcryptHasher) Hash(plaintext []byte) (string, error) {
	out, err := bcrypt.GenerateFromPassword(plaintext, int(cost))
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(out), nil
}

// builtinHashers returns the default hasher registry. HashHMAC is absent
// because it needs a key.
func builtinHashers() map[HashAlgo]Hasher {
	return map[HashAlgo]Hasher{
		HashSHA256: SHA256Hasher(),
		HashSHA512: SHA512Hasher(),
		HashArgon2: Argon2(),
		HashBcrypt: Bcrypt(),
	}
}
