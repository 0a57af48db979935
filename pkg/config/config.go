package config

import (
	"net/url"
	"os"
	"time"

	"github.com/go-go-golems/catsdogs/pkg/content"
	"github.com/go-go-golems/catsdogs/pkg/coordinator"
	"github.com/go-go-golems/catsdogs/pkg/display"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

type Config struct {
	CatFactURL    string        `yaml:"cat_fact_url"`
	DogImageURL   string        `yaml:"dog_image_url"`
	HTTPTimeout   time.Duration `yaml:"http_timeout"`
	ImageMaxBytes int64         `yaml:"image_max_bytes"`
	StaleResults  string        `yaml:"stale_results"`
	LogLevel      string        `yaml:"log_level"`
	LogFile       string        `yaml:"log_file"`
}

func Default() Config {
	return Config{
		CatFactURL:    content.DefaultCatFactURL,
		DogImageURL:   content.DefaultDogImageURL,
		HTTPTimeout:   10 * time.Second,
		ImageMaxBytes: display.DefaultMaxImageBytes,
		StaleResults:  string(coordinator.StaleDiscard),
		LogLevel:      "info",
	}
}

// Load returns the defaults overlaid with the YAML file at path. An empty
// path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

const (
	flagCatURL        = "cat-url"
	flagDogURL        = "dog-url"
	flagTimeout       = "timeout"
	flagImageMaxBytes = "image-max-bytes"
	flagStale         = "stale-results"
	flagLogLevel      = "log-level"
	flagLogFile       = "log-file"
)

func AddFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String(flagCatURL, d.CatFactURL, "Cat fact endpoint")
	fs.String(flagDogURL, d.DogImageURL, "Dog image endpoint")
	fs.Duration(flagTimeout, d.HTTPTimeout, "HTTP timeout for loads and images")
	fs.Int64(flagImageMaxBytes, d.ImageMaxBytes, "Maximum image size in bytes")
	fs.String(flagStale, d.StaleResults, "What to do with results of superseded loads (discard|apply)")
	fs.String(flagLogLevel, d.LogLevel, "Log level (trace, debug, info, warn, error)")
	fs.String(flagLogFile, d.LogFile, "Log file (logs are discarded when empty)")
}

// ApplyFlags copies every flag the user set explicitly onto c.
func (c *Config) ApplyFlags(fs *pflag.FlagSet) error {
	var err error
	set := func(name string, apply func() error) {
		if err != nil || !fs.Changed(name) {
			return
		}
		err = errors.Wrapf(apply(), "flag --%s", name)
	}
	set(flagCatURL, func() (e error) { c.CatFactURL, e = fs.GetString(flagCatURL); return })
	set(flagDogURL, func() (e error) { c.DogImageURL, e = fs.GetString(flagDogURL); return })
	set(flagTimeout, func() (e error) { c.HTTPTimeout, e = fs.GetDuration(flagTimeout); return })
	set(flagImageMaxBytes, func() (e error) { c.ImageMaxBytes, e = fs.GetInt64(flagImageMaxBytes); return })
	set(flagStale, func() (e error) { c.StaleResults, e = fs.GetString(flagStale); return })
	set(flagLogLevel, func() (e error) { c.LogLevel, e = fs.GetString(flagLogLevel); return })
	set(flagLogFile, func() (e error) { c.LogFile, e = fs.GetString(flagLogFile); return })
	return err
}

func (c Config) Validate() error {
	for name, raw := range map[string]string{"cat_fact_url": c.CatFactURL, "dog_image_url": c.DogImageURL} {
		u, err := url.Parse(raw)
		if err != nil || raw == "" || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return errors.Errorf("%s: invalid URL %q", name, raw)
		}
	}
	if c.HTTPTimeout <= 0 {
		return errors.Errorf("http_timeout must be positive, got %s", c.HTTPTimeout)
	}
	if c.ImageMaxBytes <= 0 {
		return errors.Errorf("image_max_bytes must be positive, got %d", c.ImageMaxBytes)
	}
	if _, err := coordinator.ParseStalePolicy(c.StaleResults); err != nil {
		return err
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log_level")
	}
	return nil
}

func (c Config) Endpoints() content.Endpoints {
	return content.Endpoints{CatFactURL: c.CatFactURL, DogImageURL: c.DogImageURL}
}

func (c Config) StalePolicy() coordinator.StalePolicy {
	p, err := coordinator.ParseStalePolicy(c.StaleResults)
	if err != nil {
		return coordinator.StaleDiscard
	}
	return p
}
