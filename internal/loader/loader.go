// Package loader reads UI documents from files, an fs.FS or HTTP URLs. Every
// source shares the same size cap so an oversized fixture fails the same way
// wherever it comes from.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/goliatone/go-insightui/pkg/schema"
)

// DefaultMaxBytes caps a single document.
const DefaultMaxBytes int64 = 4 << 20

var (
	ErrTooLarge     = errors.New("loader: document too large")
	ErrHTTPDisabled = errors.New("loader: http support disabled")
	ErrNotAFile     = errors.New("loader: not a regular file")
)

// Options configures a Loader.
type Options struct {
	FileSystem     fs.FS
	HTTPClient     *http.Client
	AllowHTTP      bool
	RequestTimeout time.Duration
	MaxBytes       int64
}

// Loader resolves a schema.Source into a schema.Document.
type Loader struct {
	fs       fs.FS
	http     *http.Client
	timeout  time.Duration
	maxBytes int64
}

// New constructs a Loader. HTTP sources stay disabled unless AllowHTTP is set
// or an HTTPClient is supplied.
func New(options Options) *Loader {
	l := &Loader{
		fs:       options.FileSystem,
		timeout:  options.RequestTimeout,
		maxBytes: options.MaxBytes,
	}
	if l.maxBytes <= 0 {
		l.maxBytes = DefaultMaxBytes
	}

	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if l.timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = l.timeout
		}
		l.http = &clone
	case options.AllowHTTP:
		l.http = &http.Client{Timeout: l.timeout}
	}
	return l
}

// Load fetches the raw document behind src.
func (l *Loader) Load(ctx context.Context, src schema.Source) (schema.Document, error) {
	if src == nil {
		return schema.Document{}, errors.New("loader: source is nil")
	}
	if err := ctx.Err(); err != nil {
		return schema.Document{}, err
	}
	if src.Location() == "" {
		return schema.Document{}, fmt.Errorf("loader: %s location is required", src.Kind())
	}

	var (
		data []byte
		err  error
	)
	switch src.Kind() {
	case schema.SourceKindFile:
		data, err = l.readFile(src.Location())
	case schema.SourceKindFS:
		data, err = l.readFS(src.Location())
	case schema.SourceKindURL:
		data, err = l.readURL(ctx, src.Location())
	default:
		err = fmt.Errorf("loader: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return schema.Document{}, fmt.Errorf("loader: read %s: %w", src.Location(), err)
	}

	return schema.NewDocument(src, data)
}

// LoadPayload loads and decodes src in one step.
func (l *Loader) LoadPayload(ctx context.Context, src schema.Source) (schema.Payload, error) {
	doc, err := l.Load(ctx, src)
	if err != nil {
		return schema.Payload{}, err
	}
	return schema.DecodeDocument(doc)
}
