// Package compress produces precompressed copies of exported objects.
package compress

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Encoding is a content encoding for exported objects.
type Encoding uint8

const (
	// None stores objects as-is.
	None Encoding = iota
	// Gzip stores a gzip sibling (".gz"), understood by every browser.
	Gzip
	// Zstd stores a zstd sibling (".zst"), better ratio at similar speed.
	Zstd
	// LZ4 stores an lz4 frame sibling (".lz4"), fastest to decode.
	LZ4
)

// ErrUnknownEncoding is returned by ParseEncoding.
var ErrUnknownEncoding = errors.New("compress: unknown encoding")

var encodingNames = [...]string{None: "none", Gzip: "gzip", Zstd: "zstd", LZ4: "lz4"}

// ParseEncoding parses "none", "gzip", "zstd" or "lz4". Empty means none.
func ParseEncoding(s string) (Encoding, error) {
	if s == "" {
		return None, nil
	}
	for i, name := range encodingNames {
		if strings.EqualFold(s, name) {
			return Encoding(i), nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownEncoding, s)
}

func (e Encoding) String() string {
	if int(e) < len(encodingNames) {
		return encodingNames[e]
	}
	return fmt.Sprintf("Encoding(%d)", uint8(e))
}

// Suffix returns the file name suffix of the compressed sibling.
func (e Encoding) Suffix() string {
	switch e {
	case Gzip:
		return ".gz"
	case Zstd:
		return ".zst"
	case LZ4:
		return ".lz4"
	default:
		return ""
	}
}

// ContentEncoding returns the HTTP Content-Encoding token.
func (e Encoding) ContentEncoding() string {
	switch e {
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	default:
		return ""
	}
}

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	return enc
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

// Compress encodes data. None returns data unchanged.
func Compress(e Encoding, data []byte) ([]byte, error) {
	switch e {
	case None:
		return data, nil
	case Gzip:
		var buf bytes.Buffer
		w, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(data); err != nil {
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case Zstd:
		enc := getZstdEncoder()
		defer zstdEncoderPool.Put(enc)
		return enc.EncodeAll(data, nil), nil
	case LZ4:
		var buf bytes.Buffer
		w := lz4.NewWriter(&buf)
		if err := w.Apply(lz4.CompressionLevelOption(lz4.Level9)); err != nil {
			return nil, err
		}
		if _, err := w.Write(data); err != nil {
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownEncoding, uint8(e))
	}
}

// Decompress reverses Compress.
func Decompress(e Encoding, data []byte) ([]byte, error) {
	switch e {
	case None:
		return data, nil
	case Gzip:
		r, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return io.ReadAll(r)
	case Zstd:
		dec := getZstdDecoder()
		defer zstdDecoderPool.Put(dec)
		return dec.DecodeAll(data, nil)
	case LZ4:
		return io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownEncoding, uint8(e))
	}
}
