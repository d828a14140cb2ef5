package blobstore

import (
	"context"
	"encoding/binary"
	"errors"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// CompressionType selects the at-rest compression applied by a
// CompressedStore. It wraps the stored bytes only; the BARCH layout inside
// is untouched.
type CompressionType uint8

const (
	// CompressionNone stores blobs verbatim.
	CompressionNone CompressionType = 0
	// CompressionLZ4 uses LZ4 block compression (fast).
	CompressionLZ4 CompressionType = 1
	// CompressionZSTD uses ZSTD compression (better ratio).
	CompressionZSTD CompressionType = 2
)

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// Envelope format: [UncompressedSize uint32][CompressedSize uint32][Data].
// CompressedSize == 0 means the payload is stored uncompressed, which also
// covers incompressible inputs.
const envelopeHeaderSize = 8

var (
	errEnvelopeTooSmall  = errors.New("compressed blob too small for envelope header")
	errEnvelopeTruncated = errors.New("compressed blob truncated")
	errSizeMismatch      = errors.New("decompressed size mismatch")
)

func compressEnvelope(data []byte, compressionType CompressionType) ([]byte, error) {
	var compressed []byte

	switch compressionType {
	case CompressionLZ4:
		bound := lz4.CompressBlockBound(len(data))
		buf := make([]byte, bound)
		n, err := lz4.CompressBlock(data, buf, nil)
		if err != nil {
			return nil, err
		}
		if n > 0 {
			compressed = buf[:n]
		}
	case CompressionZSTD:
		enc := getZstdEncoder()
		defer putZstdEncoder(enc)
		compressed = enc.EncodeAll(data, nil)
	}

	// Store uncompressed when compression does not pay for itself.
	if len(compressed) == 0 || len(compressed) >= len(data) {
		result := make([]byte, envelopeHeaderSize+len(data))
		binary.LittleEndian.PutUint32(result[0:], uint32(len(data)))
		binary.LittleEndian.PutUint32(result[4:], 0)
		copy(result[envelopeHeaderSize:], data)
		return result, nil
	}

	result := make([]byte, envelopeHeaderSize+len(compressed))
	binary.LittleEndian.PutUint32(result[0:], uint32(len(data)))
	binary.LittleEndian.PutUint32(result[4:], uint32(len(compressed)))
	copy(result[envelopeHeaderSize:], compressed)
	return result, nil
}

func decompressEnvelope(data []byte, compressionType CompressionType) ([]byte, error) {
	if len(data) < envelopeHeaderSize {
		return nil, errEnvelopeTooSmall
	}

	uncompressedSize := binary.LittleEndian.Uint32(data[0:])
	compressedSize := binary.LittleEndian.Uint32(data[4:])

	if compressedSize == 0 {
		if uint32(len(data)-envelopeHeaderSize) < uncompressedSize {
			return nil, errEnvelopeTruncated
		}
		return data[envelopeHeaderSize : envelopeHeaderSize+uncompressedSize], nil
	}

	if uint32(len(data)-envelopeHeaderSize) < compressedSize {
		return nil, errEnvelopeTruncated
	}
	payload := data[envelopeHeaderSize : envelopeHeaderSize+compressedSize]
	result := make([]byte, uncompressedSize)

	switch compressionType {
	case CompressionZSTD:
		dec := getZstdDecoder()
		defer putZstdDecoder(dec)

		decoded, err := dec.DecodeAll(payload, result[:0])
		if err != nil {
			return nil, err
		}
		if uint32(len(decoded)) != uncompressedSize {
			return nil, errSizeMismatch
		}
		return decoded, nil

	default: // LZ4, also the fallback for unknown types
		n, err := lz4.UncompressBlock(payload, result)
		if err != nil {
			return nil, err
		}
		if uint32(n) != uncompressedSize {
			return nil, errSizeMismatch
		}
		return result, nil
	}
}

// CompressedStore wraps a BlobStore and compresses blobs at rest. Because
// the envelope destroys random access, Open materializes the decompressed
// payload in memory; archives are read whole anyway.
type CompressedStore struct {
	inner           BlobStore
	compressionType CompressionType
}

// NewCompressedStore wraps inner with at-rest compression.
func NewCompressedStore(inner BlobStore, compressionType CompressionType) *CompressedStore {
	return &CompressedStore{
		inner:           inner,
		compressionType: compressionType,
	}
}

// Open opens and decompresses a blob.
func (s *CompressedStore) Open(ctx context.Context, name string) (Blob, error) {
	if s.compressionType == CompressionNone {
		return s.inner.Open(ctx, name)
	}

	data, err := ReadAll(ctx, s.inner, name)
	if err != nil {
		return nil, err
	}
	decoded, err := decompressEnvelope(data, s.compressionType)
	if err != nil {
		return nil, err
	}
	return &memoryBlob{data: decoded}, nil
}

// Put compresses and stores a blob.
func (s *CompressedStore) Put(ctx context.Context, name string, data []byte) error {
	if s.compressionType == CompressionNone {
		return s.inner.Put(ctx, name, data)
	}

	encoded, err := compressEnvelope(data, s.compressionType)
	if err != nil {
		return err
	}
	return s.inner.Put(ctx, name, encoded)
}

// Delete removes a blob.
func (s *CompressedStore) Delete(ctx context.Context, name string) error {
	return s.inner.Delete(ctx, name)
}

// List returns all blob names with the given prefix.
func (s *CompressedStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}
