package barch

import (
	"bytes"
	"context"
	"errors"
	"time"

	"github.com/hupe1980/barch/blobstore"
)

// ErrNoBlobStore is returned by archive storage operations when the
// Archiver was constructed without a blob store.
var ErrNoBlobStore = errors.New("no blob store configured")

// Archiver wraps the pure codec with logging, metrics and archive storage.
// The zero-configuration Archiver behaves exactly like the package-level
// functions.
//
// An Archiver is safe for concurrent use as long as each call operates on
// disjoint Bitmap/CompressedBitmap instances; the codec itself is
// single-threaded per operation.
type Archiver struct {
	logger   *Logger
	metrics  MetricsCollector
	store    blobstore.BlobStore
	catalog  Catalog
	progress ProgressFunc
}

// NewArchiver creates an Archiver with the given options.
func NewArchiver(optFns ...Option) *Archiver {
	opts := options{
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Archiver{
		logger:   opts.logger,
		metrics:  opts.metrics,
		store:    opts.store,
		catalog:  opts.catalog,
		progress: opts.progress,
	}
}

// Compress encodes source, recording metrics and logging the outcome.
func (a *Archiver) Compress(ctx context.Context, source *Bitmap) (*CompressedBitmap, error) {
	start := time.Now()
	result, err := Compress(source, a.progress)
	duration := time.Since(start)

	a.metrics.RecordCompress(duration, err)
	var words uint
	if result != nil {
		words = result.PixelDataWordCount()
	}
	a.logger.LogCompress(ctx, source.Width(), source.Height(), words, duration, err)
	return result, err
}

// Uncompress decodes source, recording metrics and logging the outcome.
func (a *Archiver) Uncompress(ctx context.Context, source *CompressedBitmap) (*Bitmap, error) {
	start := time.Now()
	result, err := Uncompress(source, a.progress)
	duration := time.Since(start)

	a.metrics.RecordUncompress(duration, err)
	a.logger.LogUncompress(ctx, source.Width(), source.Height(), duration, err)
	return result, err
}

// PutArchive serializes c and stores it under name in the configured blob
// store, updating the catalog when one is configured.
func (a *Archiver) PutArchive(ctx context.Context, name string, c *CompressedBitmap) error {
	if a.store == nil {
		return ErrNoBlobStore
	}

	var buf bytes.Buffer
	if err := Save(&buf, c); err != nil {
		return err
	}

	start := time.Now()
	err := a.store.Put(ctx, name, buf.Bytes())
	duration := time.Since(start)

	a.metrics.RecordPut(buf.Len(), duration, err)
	a.logger.LogPut(ctx, name, buf.Len(), err)
	if err != nil {
		return err
	}

	if a.catalog != nil {
		if err := a.catalog.PutEntry(ctx, name, c.Width(), c.Height(), int64(buf.Len())); err != nil {
			return err
		}
	}
	return nil
}

// OpenArchive fetches and deserializes the archive stored under name.
func (a *Archiver) OpenArchive(ctx context.Context, name string) (*CompressedBitmap, error) {
	if a.store == nil {
		return nil, ErrNoBlobStore
	}

	start := time.Now()
	data, err := blobstore.ReadAll(ctx, a.store, name)
	duration := time.Since(start)

	a.metrics.RecordOpen(duration, err)
	a.logger.LogOpen(ctx, name, err)
	if err != nil {
		return nil, err
	}

	return Load(bytes.NewReader(data))
}
