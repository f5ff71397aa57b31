package auth

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHasher_HashAndVerify(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "s3cret-password" {
		t.Fatalf("hash equals plaintext")
	}
	if !h.Verify("s3cret-password", hash) {
		t.Fatalf("Verify rejected the original password")
	}
	if h.Verify("wrong-password", hash) {
		t.Fatalf("Verify accepted a wrong password")
	}
}

func TestHasher_SaltRandomization(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	first, err := h.Hash("same-input")
	if err != nil {
		t.Fatalf("first Hash: %v", err)
	}
	second, err := h.Hash("same-input")
	if err != nil {
		t.Fatalf("second Hash: %v", err)
	}
	if first == second {
		t.Fatalf("two hashes of the same input are identical; salt not randomized")
	}
	if !h.Verify("same-input", first) || !h.Verify("same-input", second) {
		t.Fatalf("Verify failed against one of the hashes")
	}
}

func TestHasher_LongPasswords(t *testing.T) {
	// bcrypt truncates at 72 bytes; the sha256 pre-digest means passwords
	// differing only after that boundary must still be distinguished.
	h := NewHasher(bcrypt.MinCost)
	base := strings.Repeat("a", 80)

	hash, err := h.Hash(base)
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if h.Verify(base+"tail", hash) {
		t.Fatalf("password differing past 72 bytes was accepted")
	}
	if !h.Verify(base, hash) {
		t.Fatalf("original long password rejected")
	}
}

func TestHasher_MalformedHash(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	for _, malformed := range []string{"", "not-a-bcrypt-hash", "$2a$banana"} {
		if h.Verify("anything", malformed) {
			t.Fatalf("Verify accepted malformed hash %q", malformed)
		}
	}
}

func TestNewHasher_CostFallback(t *testing.T) {
	h := NewHasher(9999)
	hash, err := h.Hash("pw")
	if err != nil {
		t.Fatalf("Hash with fallback cost: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("Cost: %v", err)
	}
	if cost != bcrypt.DefaultCost {
		t.Fatalf("expected fallback to default cost, got %d", cost)
	}
}
