// Package identitytest generates valid Identity fixtures for tests.
package identitytest

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"

	"github.com/google/uuid"

	"github.com/Mindburn-Labs/ledgermark/pkg/identity"
)

// GenerateEd25519 returns an Identity backed by a fresh ed25519 public key.
func GenerateEd25519(t *testing.T) identity.Identity {
	t.Helper()
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generate ed25519 key: %v", err)
	}
	id, err := identity.NewEd25519(pub)
	if err != nil {
		t.Fatalf("build ed25519 identity: %v", err)
	}
	return id
}

// GenerateAccount returns an Identity backed by a fresh account identifier.
func GenerateAccount(t *testing.T) identity.Identity {
	t.Helper()
	id, err := identity.NewAccount("acct-" + uuid.New().String())
	if err != nil {
		t.Fatalf("build account identity: %v", err)
	}
	return id
}

// GenerateContract returns an Identity backed by a fresh contract address.
func GenerateContract(t *testing.T) identity.Identity {
	t.Helper()
	addr := make([]byte, identity.ContractAddressSize)
	if _, err := rand.Read(addr); err != nil {
		t.Fatalf("generate contract address: %v", err)
	}
	id, err := identity.NewContract(addr)
	if err != nil {
		t.Fatalf("build contract identity: %v", err)
	}
	return id
}

// Generate returns one fresh identity of every kind.
func Generate(t *testing.T) []identity.Identity {
	t.Helper()
	return []identity.Identity{
		GenerateEd25519(t),
		GenerateAccount(t),
		GenerateContract(t),
	}
}
