// Package codec encodes events into request bodies: JSON, optionally compressed.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"
)

// Compression names a request body encoding.
type Compression string

const (
	CompressNone   Compression = "none"
	CompressGzip   Compression = "gzip"
	CompressZstd   Compression = "zstd"
	CompressSnappy Compression = "snappy"
	CompressLZ4    Compression = "lz4"
	CompressBrotli Compression = "brotli"
)

// ParseCompression resolves a configured name. Empty means none.
func ParseCompression(name string) (Compression, error) {
	switch c := Compression(strings.ToLower(strings.TrimSpace(name))); c {
	case "", CompressNone:
		return CompressNone, nil
	case CompressGzip, CompressZstd, CompressSnappy, CompressLZ4, CompressBrotli:
		return c, nil
	default:
		return CompressNone, fmt.Errorf("unsupported compression: %q", name)
	}
}

// ContentEncoding returns the Content-Encoding header value, empty for none.
func (c Compression) ContentEncoding() string {
	switch c {
	case CompressGzip:
		return "gzip"
	case CompressZstd:
		return "zstd"
	case CompressBrotli:
		return "br"
	case CompressSnappy:
		return "x-snappy-framed"
	case CompressLZ4:
		return "x-lz4"
	default:
		return ""
	}
}

// JSONEncoder writes values as compact JSON without HTML escaping or a trailing newline.
type JSONEncoder[T any] struct{}

func NewJSONEncoder[T any]() *JSONEncoder[T] {
	return &JSONEncoder[T]{}
}

// Encode writes the JSON encoding of elem to w.
func (e *JSONEncoder[T]) Encode(w io.Writer, elem T) error {
	data, err := e.Marshal(elem)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Marshal returns the JSON encoding of elem.
func (e *JSONEncoder[T]) Marshal(elem T) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(elem); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Compress encodes data with algorithm. CompressNone returns data unchanged.
func Compress(data []byte, algorithm Compression) ([]byte, error) {
	var b bytes.Buffer
	var w io.WriteCloser

	switch algorithm {
	case CompressGzip:
		w = gzip.NewWriter(&b)
	case CompressSnappy:
		w = snappy.NewBufferedWriter(&b)
	case CompressZstd:
		var err error
		w, err = zstd.NewWriter(&b)
		if err != nil {
			return nil, err
		}
	case CompressBrotli:
		w = brotli.NewWriterLevel(&b, brotli.DefaultCompression)
	case CompressLZ4:
		w = lz4.NewWriter(&b)
	default:
		return data, nil
	}

	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// Decompress reverses Compress.
func Decompress(data []byte, algorithm Compression) ([]byte, error) {
	var r io.Reader
	src := bytes.NewReader(data)

	switch algorithm {
	case CompressGzip:
		gz, err := gzip.NewReader(src)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		r = gz
	case CompressSnappy:
		r = snappy.NewReader(src)
	case CompressZstd:
		zr, err := zstd.NewReader(src)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		r = zr
	case CompressBrotli:
		r = brotli.NewReader(src)
	case CompressLZ4:
		r = lz4.NewReader(src)
	default:
		return data, nil
	}

	return io.ReadAll(r)
}
