// internal/variant/variant.go
//
// Variant resolution: maps a requested image name onto one of the three
// build strategies. The set is closed, so it is modeled as a Kind enum with
// one resolver instead of string matching scattered across the pipeline.
//
//   - server   → multi-version variant, fanned out over base-OS versions
//   - console  → aliased variant building from the web-console directory
//   - <name>   → generic variant when <name>/Dockerfile exists

package variant

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

type Kind string

const (
	KindMultiVersion Kind = "multi-version"
	KindAliased      Kind = "aliased"
	KindDirectory    Kind = "directory"
)

const (
	// ManifestName is the build manifest expected in every variant directory.
	ManifestName = "Dockerfile"

	// PlaceholderToken is replaced with the sub-version in the multi-version
	// variant's manifest before each build.
	PlaceholderToken = "%%OSVERSION%%"

	// VersionPinVar is the manifest variable rewritten on release.
	VersionPinVar = "FORGE_VERSION"
)

// ErrUnknown marks a variant name that is neither specially handled nor a
// directory with a build manifest. Callers treat it as invalid invocation.
var ErrUnknown = errors.New("unknown variant")

// Variant is a resolved, buildable image definition.
type Variant struct {
	Name string // image name, last path segment of the repository
	Dir  string // build context directory
	Kind Kind

	// Multi-version only.
	SubVersions       []string
	DefaultSubVersion string
}

// Resolve maps name onto a Variant, rooted at root (usually ".").
func Resolve(root, name string) (Variant, error) {
	switch name {
	case "server":
		return Variant{
			Name:              name,
			Dir:               filepath.Join(root, "server"),
			Kind:              KindMultiVersion,
			SubVersions:       []string{"7", "6"},
			DefaultSubVersion: "7",
		}, nil
	case "console":
		return Variant{
			Name: name,
			Dir:  filepath.Join(root, "web-console"),
			Kind: KindAliased,
		}, nil
	}

	dir := filepath.Join(root, name)
	if st, err := os.Stat(filepath.Join(dir, ManifestName)); err == nil && !st.IsDir() {
		return Variant{Name: name, Dir: dir, Kind: KindDirectory}, nil
	}
	return Variant{}, fmt.Errorf("%w: %q (no %s)", ErrUnknown, name, filepath.Join(name, ManifestName))
}

// Manifest returns the path of the variant's build manifest.
func (v Variant) Manifest() string {
	return filepath.Join(v.Dir, ManifestName)
}

// Repository returns the image repository path under the given namespace.
func (v Variant) Repository(namespace string) string {
	return namespace + "/" + v.Name
}
