package testsupport

import (
	"path/filepath"
	"testing"

	"spdxdiff/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with a unique temp cache directory per
// test. It applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Cache.Dir = filepath.Join(base, "licenses_texts")
	cfgVal.Report.Color = false

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithSPDXServer points the config's endpoints at a fake SPDX server.
func WithSPDXServer(server *SPDXServer) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.SPDX.CatalogURL = server.CatalogURL()
		b.cfg.SPDX.TextBaseURL = server.TextBaseURL()
	}
}

// WithInclude sets report include patterns on the test config.
func WithInclude(patterns ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Report.Include = patterns
	}
}
