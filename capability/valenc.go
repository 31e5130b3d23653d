package capability

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// ValueEncoder turns a caller-level value into the byte string stored
// in a Leaf or Branch. Implementations must be deterministic: equal
// values must encode identically.
type ValueEncoder interface {
	EncodeValue(value any) ([]byte, error)
}

// ValueDecoder is the inverse of ValueEncoder, used by callers that
// want their structured value back out of Trie.Get's raw bytes rather
// than handling encoding themselves. It is not required by spec.md's
// core API (Get returns bytes) but both adapters below provide it.
type ValueDecoder interface {
	DecodeValue(encoded []byte, out any) error
}

// IdentityValueEncoder requires values to already be []byte and passes
// them through unchanged — the teacher's trie assumes exactly this.
type IdentityValueEncoder struct{}

// EncodeValue requires value to be a []byte and returns it unchanged.
func (IdentityValueEncoder) EncodeValue(value any) ([]byte, error) {
	b, ok := value.([]byte)
	if !ok {
		return nil, fmt.Errorf("capability: IdentityValueEncoder requires []byte, got %T", value)
	}
	return b, nil
}

// DecodeValue copies encoded into *out, where out must be a *[]byte.
func (IdentityValueEncoder) DecodeValue(encoded []byte, out any) error {
	ptr, ok := out.(*[]byte)
	if !ok {
		return fmt.Errorf("capability: IdentityValueEncoder.DecodeValue requires *[]byte, got %T", out)
	}
	*ptr = append([]byte(nil), encoded...)
	return nil
}

// CBORValueEncoder serializes structured Go values (structs, maps,
// slices of primitives — anything cbor.Marshal accepts) to their
// canonical CBOR encoding, for callers whose values are not already
// flat byte strings.
type CBORValueEncoder struct{}

// EncodeValue marshals value to CBOR.
func (CBORValueEncoder) EncodeValue(value any) ([]byte, error) {
	b, err := cbor.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("capability: cbor encode failed: %w", err)
	}
	return b, nil
}

// DecodeValue unmarshals a CBOR encoding produced by EncodeValue into
// out, which must be a pointer to a value compatible with the
// original encoded type.
func (CBORValueEncoder) DecodeValue(encoded []byte, out any) error {
	if err := cbor.Unmarshal(encoded, out); err != nil {
		return fmt.Errorf("capability: cbor decode failed: %w", err)
	}
	return nil
}
