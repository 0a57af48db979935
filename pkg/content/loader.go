package content

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/buger/jsonparser"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	DefaultCatFactURL  = "https://catfact.ninja/fact"
	DefaultDogImageURL = "https://dog.ceo/api/breeds/image/random"

	catFactField  = "fact"
	dogImageField = "message"

	maxBodyBytes = 1 << 20
)

// Loader fetches one piece of content for a loadable category. It never
// returns an error: failures are folded into a Failure result.
type Loader interface {
	Fetch(ctx context.Context, c Category) Result
}

type Endpoints struct {
	CatFactURL  string
	DogImageURL string
}

func DefaultEndpoints() Endpoints {
	return Endpoints{CatFactURL: DefaultCatFactURL, DogImageURL: DefaultDogImageURL}
}

type HTTPLoader struct {
	Endpoints Endpoints
	Client    *http.Client
}

func NewHTTPLoader(endpoints Endpoints, timeout time.Duration) *HTTPLoader {
	return &HTTPLoader{
		Endpoints: endpoints,
		Client:    &http.Client{Timeout: timeout},
	}
}

func (l *HTTPLoader) Fetch(ctx context.Context, c Category) Result {
	var url, field string
	switch c {
	case Cats:
		url, field = l.Endpoints.CatFactURL, catFactField
	case Dogs:
		url, field = l.Endpoints.DogImageURL, dogImageField
	default:
		return Failure(errors.Errorf("fetch called for category %s", c))
	}

	value, err := l.fetchField(ctx, url, field)
	if err != nil {
		log.Warn().Err(err).Str("category", c.String()).Msg("content load failed")
		return Failure(err)
	}
	log.Debug().Str("category", c.String()).Int("len", len(value)).Msg("content loaded")

	if c == Dogs {
		return Image(value)
	}
	return Text(value)
}

func (l *HTTPLoader) fetchField(ctx context.Context, url, field string) (string, error) {
	body, err := l.get(ctx, url)
	if err != nil {
		return "", err
	}

	value, err := jsonparser.GetString(body, field)
	if err != nil {
		return "", &DecodeError{Field: field, Err: err}
	}
	if strings.TrimSpace(value) == "" {
		return "", &DecodeError{Field: field, Err: errors.New("empty value")}
	}
	return value, nil
}

func (l *HTTPLoader) get(ctx context.Context, url string) ([]byte, error) {
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &TransportError{URL: url, Err: errors.Wrap(err, "build request")}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{URL: url, Status: resp.StatusCode}
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &TransportError{URL: url, Err: errors.Wrap(err, "read body")}
	}
	return b, nil
}
