package barch

import (
	"context"

	"github.com/hupe1980/barch/blobstore"
)

// Catalog records metadata about stored archives. Implementations live
// next to the blob store backends; see blobstore/s3.Catalog.
type Catalog interface {
	// PutEntry records the dimensions and stored byte size of an archive.
	PutEntry(ctx context.Context, name string, width, height uint, bytes int64) error
}

type options struct {
	logger   *Logger
	metrics  MetricsCollector
	store    blobstore.BlobStore
	catalog  Catalog
	progress ProgressFunc
}

// Option configures an Archiver.
type Option func(*options)

// WithLogger configures structured logging. If nil is passed, logging is
// disabled.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithMetrics configures a metrics collector. If nil is passed, metrics
// are disabled.
func WithMetrics(collector MetricsCollector) Option {
	return func(o *options) {
		if collector == nil {
			collector = NoopMetricsCollector{}
		}
		o.metrics = collector
	}
}

// WithBlobStore configures the store used by PutArchive and OpenArchive.
// Wrap the store with blobstore.NewCompressedStore for at-rest compression.
func WithBlobStore(store blobstore.BlobStore) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithCatalog configures an archive catalog updated on every PutArchive.
func WithCatalog(catalog Catalog) Option {
	return func(o *options) {
		o.catalog = catalog
	}
}

// WithProgress configures the progress callback passed to Compress and
// Uncompress calls made through the Archiver.
func WithProgress(progress ProgressFunc) Option {
	return func(o *options) {
		o.progress = progress
	}
}
