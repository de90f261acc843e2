package identity

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/gowebpki/jcs"
)

// FormatVersion is the codec format version stamped into every encoding.
// Bump only with a migration plan for off-chain observers.
const FormatVersion = 1

// wireIdentity is the stable wire shape of an encoded Identity.
type wireIdentity struct {
	Version int    `json:"v"`
	Kind    string `json:"kind"`
	Key     string `json:"key"` // lowercase hex of the key material
}

// Encode serializes an Identity to its canonical byte form.
//
// The result is the RFC 8785 canonical JSON of the versioned wire shape, so
// encoding is a pure function of the value and FormatVersion: the same
// Identity always yields the same bytes, and distinct identities yield
// distinct bytes. Encoding a well-formed Identity does not fail.
func Encode(id Identity) ([]byte, error) {
	if !id.kind.IsValid() {
		return nil, fmt.Errorf("encode identity: unrecognized kind %q", id.kind)
	}
	raw, err := json.Marshal(wireIdentity{
		Version: FormatVersion,
		Kind:    string(id.kind),
		Key:     hex.EncodeToString(id.key),
	})
	if err != nil {
		return nil, fmt.Errorf("encode identity: %w", err)
	}
	canonical, err := jcs.Transform(raw)
	if err != nil {
		return nil, fmt.Errorf("encode identity: canonicalize: %w", err)
	}
	return canonical, nil
}

// Decode reconstructs the Identity from bytes produced by Encode.
func Decode(data []byte) (Identity, error) {
	var wire wireIdentity
	if err := json.Unmarshal(data, &wire); err != nil {
		return Identity{}, fmt.Errorf("decode identity: %w", err)
	}
	if wire.Version != FormatVersion {
		return Identity{}, fmt.Errorf("decode identity: unsupported format version %d", wire.Version)
	}
	key, err := hex.DecodeString(wire.Key)
	if err != nil {
		return Identity{}, fmt.Errorf("decode identity: key material: %w", err)
	}
	switch Kind(wire.Kind) {
	case KindEd25519:
		return NewEd25519(key)
	case KindAccount:
		return NewAccount(string(key))
	case KindContract:
		return NewContract(key)
	default:
		return Identity{}, fmt.Errorf("decode identity: unrecognized kind %q", wire.Kind)
	}
}
