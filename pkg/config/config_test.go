package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-go-golems/catsdogs/pkg/coordinator"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, "https://catfact.ninja/fact", cfg.Endpoints().CatFactURL)
	require.Equal(t, "https://dog.ceo/api/breeds/image/random", cfg.Endpoints().DogImageURL)
	require.Equal(t, coordinator.StaleDiscard, cfg.StalePolicy())
}

func TestLoad_OverlaysYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catsdogs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cat_fact_url: http://localhost:9000/fact\nhttp_timeout: 3s\nstale_results: apply\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "http://localhost:9000/fact", cfg.CatFactURL)
	require.Equal(t, Default().DogImageURL, cfg.DogImageURL)
	require.Equal(t, 3*time.Second, cfg.HTTPTimeout)
	require.Equal(t, coordinator.StaleApply, cfg.StalePolicy())
	require.NoError(t, cfg.Validate())
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http_timeout: [1,2"), 0o644))
	_, err = Load(path)
	require.Error(t, err)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestApplyFlags_OnlyChanged(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddFlags(fs)
	require.NoError(t, fs.Parse([]string{"--dog-url", "http://dogs.local/random", "--timeout", "2s"}))

	cfg := Default()
	cfg.CatFactURL = "http://from-file/fact"
	require.NoError(t, cfg.ApplyFlags(fs))
	require.Equal(t, "http://from-file/fact", cfg.CatFactURL)
	require.Equal(t, "http://dogs.local/random", cfg.DogImageURL)
	require.Equal(t, 2*time.Second, cfg.HTTPTimeout)
}

func TestValidate_Rejects(t *testing.T) {
	cases := map[string]func(*Config){
		"empty url":      func(c *Config) { c.CatFactURL = "" },
		"relative url":   func(c *Config) { c.DogImageURL = "/random" },
		"zero timeout":   func(c *Config) { c.HTTPTimeout = 0 },
		"zero max bytes": func(c *Config) { c.ImageMaxBytes = 0 },
		"bad policy":     func(c *Config) { c.StaleResults = "keep" },
		"bad level":      func(c *Config) { c.LogLevel = "loud" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}
