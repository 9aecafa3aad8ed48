// internal/docker/push.go
//
// Pushing is limited to the mirror refs: local references stay local, the
// push registry receives exactly what the planner derived. Authentication
// against the registry is handled outside the tool (docker login).

package docker

import (
	"fmt"

	"imgforge/internal/executil"
)

func pushStep(r executil.Runner, step Step) error {
	for _, ref := range step.Mirrors {
		fmt.Printf("Pushing image: %s\n", ref)
		if err := r.Run("docker", "push", ref); err != nil {
			return err
		}
	}
	return nil
}
