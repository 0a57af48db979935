package display

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	_ "golang.org/x/image/webp"
)

const DefaultMaxImageBytes = 8 << 20

var errNoMaterializer = errors.New("no materializer configured")

// Materializer turns an image reference into a decoded image.
type Materializer interface {
	Materialize(ctx context.Context, ref string) (image.Image, error)
}

// RenderError means the bytes were fetched but could not be decoded.
type RenderError struct {
	Ref string
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Ref, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

type HTTPMaterializer struct {
	Client   *http.Client
	MaxBytes int64
}

func NewHTTPMaterializer(timeout time.Duration, maxBytes int64) *HTTPMaterializer {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxImageBytes
	}
	return &HTTPMaterializer{Client: &http.Client{Timeout: timeout}, MaxBytes: maxBytes}
}

func (m *HTTPMaterializer) Materialize(ctx context.Context, ref string) (image.Image, error) {
	u, err := url.Parse(ref)
	if err != nil || ref == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, errors.Errorf("invalid image reference %q", ref)
	}

	client := m.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build image request")
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetch image")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Errorf("fetch image: unexpected status %d", resp.StatusCode)
	}

	maxBytes := m.MaxBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxImageBytes
	}
	img, _, err := image.Decode(io.LimitReader(resp.Body, maxBytes))
	if err != nil {
		return nil, &RenderError{Ref: ref, Err: err}
	}
	return img, nil
}
