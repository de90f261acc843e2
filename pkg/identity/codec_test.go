package identity

import (
	"bytes"
	"crypto/ed25519"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEd25519(t *testing.T, fill byte) Identity {
	t.Helper()
	id, err := NewEd25519(bytes.Repeat([]byte{fill}, ed25519.PublicKeySize))
	require.NoError(t, err)
	return id
}

func TestEncode_Deterministic(t *testing.T) {
	id := mustEd25519(t, 0x7F)

	first, err := Encode(id)
	require.NoError(t, err)
	second, err := Encode(id)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEncode_DistinctIdentities(t *testing.T) {
	a := mustEd25519(t, 0x01)
	b := mustEd25519(t, 0x02)

	// Same key material under a different kind must also differ.
	c, err := NewContract(bytes.Repeat([]byte{0x01}, ContractAddressSize))
	require.NoError(t, err)

	encA, err := Encode(a)
	require.NoError(t, err)
	encB, err := Encode(b)
	require.NoError(t, err)
	encC, err := Encode(c)
	require.NoError(t, err)

	assert.NotEqual(t, encA, encB)
	assert.NotEqual(t, encA, encC)
	assert.NotEqual(t, encB, encC)
}

func TestEncode_VersionStamped(t *testing.T) {
	id := mustEd25519(t, 0x7F)

	enc, err := Encode(id)
	require.NoError(t, err)

	var wire struct {
		Version int    `json:"v"`
		Kind    string `json:"kind"`
	}
	require.NoError(t, json.Unmarshal(enc, &wire))
	assert.Equal(t, FormatVersion, wire.Version)
	assert.Equal(t, string(KindEd25519), wire.Kind)
}

func TestEncode_ZeroIdentityRejected(t *testing.T) {
	var zero Identity
	_, err := Encode(zero)
	assert.Error(t, err)
}

func TestDecode_RoundTrip(t *testing.T) {
	account, err := NewAccount("acct-roundtrip")
	require.NoError(t, err)
	contract, err := NewContract(bytes.Repeat([]byte{0x33}, ContractAddressSize))
	require.NoError(t, err)

	tests := []struct {
		name string
		id   Identity
	}{
		{"ed25519", mustEd25519(t, 0x55)},
		{"account", account},
		{"contract", contract},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := Encode(tt.id)
			require.NoError(t, err)

			got, err := Decode(enc)
			require.NoError(t, err)
			assert.True(t, tt.id.Equal(got))
		})
	}
}

func TestDecode_Rejections(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "not-json"},
		{"unsupported version", `{"v":2,"kind":"ed25519","key":""}`},
		{"unrecognized kind", `{"v":1,"kind":"rsa","key":"00"}`},
		{"bad hex", `{"v":1,"kind":"ed25519","key":"zz"}`},
		{"short key", `{"v":1,"kind":"ed25519","key":"00ff"}`},
		{"empty account", `{"v":1,"kind":"account","key":""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}
