// internal/docker/plan.go
//
// The planner converts a resolved variant plus the requested tag set into
// build steps: one docker build per requested tag, fanned out per
// sub-version for the multi-version variant. This is the "brains" of tag
// derivation.
//
// Rules per requested tag T (and sub-version V where applicable):
//   - plain variant → :<T>
//   - multi-version → :<V>-<T> always
//                     :<T> when V is the default sub-version
//                     :<V> when T is the literal "latest"
//
// Every local reference gets a push-registry mirror. Policy stays isolated
// and testable here; execution lives in build.go.

package docker

import (
	"strings"

	"imgforge/internal/variant"
)

// Step is one docker build plus the references derived for it.
type Step struct {
	SubVersion string   // empty for single-version variants
	BuildRef   string   // canonical local repo:tag passed to docker build -t
	Locals     []string // all local refs for this step, BuildRef first
	Mirrors    []string // push-registry refs, always (re)tagged
}

// Plan is the full build matrix for one invocation.
type Plan struct {
	Steps []Step
	Push  bool
}

// PlanBuild turns BuildOptions into a Plan.
func PlanBuild(opts *BuildOptions) Plan {
	repo := opts.Variant.Repository(opts.Namespace)
	mirror := strings.TrimRight(opts.Registry, "/") + "/" + repo

	var steps []Step
	for _, tag := range opts.Tags {
		if opts.Variant.Kind != variant.KindMultiVersion {
			steps = append(steps, newStep(repo, mirror, "", []string{tag}))
			continue
		}
		for _, sub := range opts.Variant.SubVersions {
			tags := []string{sub + "-" + tag}
			if sub == opts.Variant.DefaultSubVersion {
				tags = append(tags, tag)
			}
			if tag == "latest" {
				tags = append(tags, sub)
			}
			steps = append(steps, newStep(repo, mirror, sub, DedupTags(tags)))
		}
	}
	return Plan{Steps: steps, Push: opts.Push}
}

func newStep(repo, mirror, sub string, tags []string) Step {
	s := Step{SubVersion: sub}
	for _, t := range tags {
		s.Locals = append(s.Locals, repo+":"+t)
		s.Mirrors = append(s.Mirrors, mirror+":"+t)
	}
	s.BuildRef = s.Locals[0]
	return s
}
