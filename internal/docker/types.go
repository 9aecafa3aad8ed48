// internal/docker/types.go
package docker

import "imgforge/internal/variant"

type BuildOptions struct {
	Variant variant.Variant

	Tags      []string // cleaned, deduplicated requested tags; never empty
	BuildArgs []string // opaque words appended to docker build

	Registry  string // push-registry host mirrors are tagged into
	Namespace string // image namespace, e.g. "imgforge"

	Push   bool // push mirror refs after build
	DryRun bool // suppress side effects outside the runner (manifest render)
}
