// internal/config/config.go
//
// Process-wide settings resolved once at startup from the environment.
// Nothing here is read again after Load; the rest of the program only sees
// the Config value.

package config

import (
	"os"
	"strconv"
	"time"
)

const (
	// DefaultRegistry is the public push registry used when
	// IMGFORGE_REGISTRY is unset.
	DefaultRegistry = "docker.io"

	// DefaultNamespace is the image namespace under the registry.
	DefaultNamespace = "imgforge"
)

// Config captures the environment-derived settings for a single run.
type Config struct {
	RegistryHost string        // push-registry host images are mirrored to
	Namespace    string        // image namespace, e.g. "imgforge" in imgforge/server
	DryRun       bool          // print external commands instead of running them
	HTTPTimeout  time.Duration // registry lookup timeout
}

// Load reads the environment and returns a fully-populated Config.
func Load() Config {
	timeout := 10 * time.Second
	if s := os.Getenv("IMGFORGE_REGISTRY_TIMEOUT_SECONDS"); s != "" {
		if seconds, err := strconv.Atoi(s); err == nil && seconds > 0 {
			timeout = time.Duration(seconds) * time.Second
		}
	}

	return Config{
		RegistryHost: getenv("IMGFORGE_REGISTRY", DefaultRegistry),
		Namespace:    getenv("IMGFORGE_NAMESPACE", DefaultNamespace),
		DryRun:       os.Getenv("IMGFORGE_DRY_RUN") == "true",
		HTTPTimeout:  timeout,
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
