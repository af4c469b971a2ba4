package codec

import (
	"fmt"

	"github.com/joeydtaylor/splunklogger/pkg/internal/types"
)

// BodyEncoder turns an event into a request body and the headers describing it.
type BodyEncoder struct {
	json        *JSONEncoder[types.Event]
	compression Compression
}

// NewBodyEncoder returns an encoder for the named compression.
func NewBodyEncoder(compression string) (*BodyEncoder, error) {
	c, err := ParseCompression(compression)
	if err != nil {
		return nil, err
	}
	return &BodyEncoder{json: NewJSONEncoder[types.Event](), compression: c}, nil
}

// Compression returns the encoder's body compression.
func (b *BodyEncoder) Compression() Compression {
	return b.compression
}

// Encode returns the body for event and its Content-Encoding, empty when uncompressed.
func (b *BodyEncoder) Encode(event types.Event) ([]byte, string, error) {
	data, err := b.json.Marshal(event)
	if err != nil {
		return nil, "", fmt.Errorf("encoding event: %w", err)
	}
	if b.compression == CompressNone {
		return data, "", nil
	}
	body, err := Compress(data, b.compression)
	if err != nil {
		return nil, "", fmt.Errorf("compressing event (%s): %w", b.compression, err)
	}
	return body, b.compression.ContentEncoding(), nil
}
