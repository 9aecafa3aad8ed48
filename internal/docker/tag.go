// internal/docker/tag.go
package docker

import "imgforge/internal/executil"

// applyTags applies a step's derived references. A local reference equal to
// the canonical build ref is already correct and is skipped; the
// push-registry mirror tags are always reapplied, matching the observed
// behavior of the original workflow.
func applyTags(r executil.Runner, step Step) error {
	for _, ref := range step.Locals {
		if ref == step.BuildRef {
			continue
		}
		if err := r.Run("docker", "tag", step.BuildRef, ref); err != nil {
			return err
		}
	}
	for _, ref := range step.Mirrors {
		if err := r.Run("docker", "tag", step.BuildRef, ref); err != nil {
			return err
		}
	}
	return nil
}
