// Package identity models the principals a ledgermark contract can record.
//
// An Identity is a tagged variant over a closed set of principal kinds, each
// carrying its own key material. Values are immutable and can only be built
// through the validating constructors, so downstream code (the codec, the
// contract entrypoint) never has to re-check well-formedness.
package identity

import (
	"bytes"
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
)

// Kind identifies the principal kind of an Identity.
type Kind string

const (
	// KindEd25519 is a principal identified by a raw ed25519 public key.
	KindEd25519 Kind = "ed25519"
	// KindAccount is a principal identified by a ledger account identifier.
	KindAccount Kind = "account"
	// KindContract is a principal identified by a contract address.
	KindContract Kind = "contract"
)

// ContractAddressSize is the byte length of a contract address.
const ContractAddressSize = 32

// IsValid reports whether k is one of the recognized principal kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindEd25519, KindAccount, KindContract:
		return true
	}
	return false
}

// Identity is an opaque, variant-typed principal value.
//
// The zero Identity is not well-formed; use the constructors.
type Identity struct {
	kind Kind
	key  []byte
}

// NewEd25519 builds an Identity from a raw ed25519 public key.
func NewEd25519(pub []byte) (Identity, error) {
	if len(pub) != ed25519.PublicKeySize {
		return Identity{}, fmt.Errorf("ed25519 public key must be %d bytes, got %d", ed25519.PublicKeySize, len(pub))
	}
	return Identity{kind: KindEd25519, key: clone(pub)}, nil
}

// NewAccount builds an Identity from a ledger account identifier.
func NewAccount(accountID string) (Identity, error) {
	if accountID == "" {
		return Identity{}, fmt.Errorf("account identifier must not be empty")
	}
	return Identity{kind: KindAccount, key: []byte(accountID)}, nil
}

// NewContract builds an Identity from a contract address.
func NewContract(addr []byte) (Identity, error) {
	if len(addr) != ContractAddressSize {
		return Identity{}, fmt.Errorf("contract address must be %d bytes, got %d", ContractAddressSize, len(addr))
	}
	return Identity{kind: KindContract, key: clone(addr)}, nil
}

// Kind returns the principal kind.
func (i Identity) Kind() Kind { return i.kind }

// KeyMaterial returns a copy of the kind-specific key material.
func (i Identity) KeyMaterial() []byte { return clone(i.key) }

// IsZero reports whether i is the zero (not well-formed) Identity.
func (i Identity) IsZero() bool { return i.kind == "" }

// Equal reports whether two identities have the same kind and key material.
func (i Identity) Equal(other Identity) bool {
	return i.kind == other.kind && bytes.Equal(i.key, other.key)
}

// String renders the identity as "<kind>:<hex key material>" for logs.
func (i Identity) String() string {
	if i.IsZero() {
		return "identity:zero"
	}
	return string(i.kind) + ":" + hex.EncodeToString(i.key)
}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
