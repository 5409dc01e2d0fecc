package textcache

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"spdxdiff/internal/fileutil"
	"spdxdiff/internal/logging"
)

const textExt = ".txt"

// ErrInvalidID reports an identifier that cannot name a cache file.
var ErrInvalidID = errors.New("invalid license identifier")

// Cache maps license identifiers to their plain-text bodies.
type Cache struct {
	dir        string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Cache.
type Option func(*Cache)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Cache) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout sets the request timeout on the default HTTP client. Zero
// leaves requests unbounded.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Cache) {
		c.httpClient = &http.Client{Timeout: timeout}
	}
}

// WithLogger attaches a logger; the default discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cache) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a cache rooted at dir that fetches misses from
// <baseURL>/<id>.txt. The directory is created when absent.
func New(dir, baseURL string, opts ...Option) (*Cache, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errors.New("cache directory required")
	}
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("text base url required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	c := &Cache{
		dir:        dir,
		baseURL:    baseURL,
		httpClient: &http.Client{},
		logger:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = logging.NewComponentLogger(c.logger, "textcache")
	return c, nil
}

// Dir returns the cache directory.
func (c *Cache) Dir() string {
	return c.dir
}

// Path returns the cache file location for id.
func (c *Cache) Path(id string) (string, error) {
	if err := validateID(id); err != nil {
		return "", err
	}
	return filepath.Join(c.dir, id+textExt), nil
}

// Get returns the text for id, reading the local file first and fetching on
// a miss. It returns "" when the text is unavailable.
func (c *Cache) Get(ctx context.Context, id string) string {
	path, err := c.Path(id)
	if err != nil {
		c.logger.Debug("skipping license text",
			logging.String(logging.FieldLicenseID, id),
			logging.Error(err))
		return ""
	}

	data, err := os.ReadFile(path)
	if err == nil {
		return strings.TrimSpace(string(data))
	}
	if !errors.Is(err, fs.ErrNotExist) {
		c.logger.Debug("cached license text unreadable, refetching",
			logging.String(logging.FieldLicenseID, id),
			logging.Error(err))
	}

	text, err := c.fetch(ctx, id)
	if err != nil {
		c.logger.Debug("license text unavailable",
			logging.String(logging.FieldLicenseID, id),
			logging.Error(err))
		return ""
	}

	if err := fileutil.WriteFileAtomic(path, []byte(text), 0o644); err != nil {
		logging.WarnWithContext(c.logger, "failed to cache license text", "textcache_write_failed",
			logging.String(logging.FieldLicenseID, id),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check permissions on "+c.dir),
			logging.String(logging.FieldImpact, "text will be downloaded again next run"))
		return text
	}

	c.logger.Debug("cached license text",
		logging.String(logging.FieldLicenseID, id),
		logging.Int("bytes", len(text)))
	return text
}

func (c *Cache) fetch(ctx context.Context, id string) (string, error) {
	endpoint := c.baseURL + "/" + url.PathEscape(id) + textExt
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return "", fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("license text returned %d (latency=%v)", resp.StatusCode, latency)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}
	return strings.TrimSpace(string(body)), nil
}

func validateID(id string) error {
	switch {
	case strings.TrimSpace(id) == "":
		return fmt.Errorf("%w: empty", ErrInvalidID)
	case id == "." || id == "..":
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	case strings.ContainsAny(id, `/\`+"\x00"):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidID, id)
	}
	return nil
}
