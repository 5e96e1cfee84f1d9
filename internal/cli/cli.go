package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dominosheet/pkg/buildinfo"
	"github.com/matzehuels/dominosheet/pkg/cache"
	"github.com/matzehuels/dominosheet/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "dominosheet"

	// envRedisURL selects the Redis artifact cache when --cache-url is unset.
	envRedisURL = "DOMINOSHEET_REDIS_URL"

	// defaultAddr is the listen address of the serve command.
	defaultAddr = ":8080"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// CacheURL is a redis:// URL. Empty means the file cache.
	CacheURL string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	cache, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache, versionKeyer(), c.Logger), nil
}

// versionKeyer scopes artifact keys to the running build so a new renderer
// never serves bytes cached by an older one.
func versionKeyer() cache.Keyer {
	return cache.NewScopedKeyer(cache.NewDefaultKeyer(), appName+":"+buildinfo.Version+":")
}

// newCache opens the configured artifact cache. A missing home directory
// silently disables caching; an unreachable Redis server does not.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if url := c.cacheURL(); url != "" {
		c.Logger.Debug("using redis cache", "url", url)
		return cache.NewRedisCache(ctx, url)
	}
	dir, err := cache.DefaultDir()
	if err != nil {
		c.Logger.Debug("cache disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheURL returns the --cache-url flag, falling back to the environment.
func (c *CLI) cacheURL() string {
	if c.CacheURL != "" {
		return c.CacheURL
	}
	return os.Getenv(envRedisURL)
}
