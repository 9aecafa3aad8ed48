// internal/docker/build.go
package docker

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"imgforge/internal/executil"
	"imgforge/internal/variant"
)

// Execute drives the full build matrix: for every step, build the image,
// apply the derived tag set, and push the mirror refs when enabled. The
// first failing external command aborts the pipeline.
func Execute(r executil.Runner, opts *BuildOptions) error {
	if opts == nil {
		return errors.New("Execute: opts is nil")
	}
	if len(opts.Tags) == 0 {
		return errors.New("Execute: Tags must have at least one entry")
	}

	// Only validate the filesystem when not in dry-run.
	if !opts.DryRun {
		if st, err := os.Stat(opts.Variant.Manifest()); err != nil || st.IsDir() {
			return fmt.Errorf("Execute: manifest %q not found or not a file", opts.Variant.Manifest())
		}
		if st, err := os.Stat(opts.Variant.Dir); err != nil || !st.IsDir() {
			return fmt.Errorf("Execute: context %q not found or not a directory", opts.Variant.Dir)
		}
	}

	plan := PlanBuild(opts)
	printPlan(plan, opts)

	for _, step := range plan.Steps {
		if err := buildStep(r, opts, step); err != nil {
			return err
		}
		if err := applyTags(r, step); err != nil {
			return err
		}
		if plan.Push {
			if err := pushStep(r, step); err != nil {
				return err
			}
		}
	}
	return nil
}

func buildStep(r executil.Runner, opts *BuildOptions, step Step) error {
	manifest := opts.Variant.Manifest()

	// Multi-version builds go through a rendered copy of the manifest with
	// the sub-version substituted for the placeholder token. Dry-run prints
	// the would-be path without writing anything.
	if step.SubVersion != "" {
		rendered := renderedManifestPath(opts.Variant, step.SubVersion)
		if !opts.DryRun {
			if err := renderManifest(manifest, rendered, step.SubVersion); err != nil {
				return err
			}
			defer os.Remove(rendered)
		}
		manifest = rendered
	}

	args := []string{"build", "-t", step.BuildRef, "-f", manifest}
	args = append(args, opts.BuildArgs...)
	args = append(args, opts.Variant.Dir)
	return r.Run("docker", args...)
}

// renderManifest writes a copy of the manifest with the placeholder token
// replaced by the sub-version. A manifest without the token renders
// unchanged.
func renderManifest(src, dst, sub string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("failed to read manifest %s: %w", src, err)
	}
	out := strings.ReplaceAll(string(data), variant.PlaceholderToken, sub)
	if err := os.WriteFile(dst, []byte(out), 0o644); err != nil {
		return fmt.Errorf("failed to render manifest for sub-version %s: %w", sub, err)
	}
	return nil
}

func renderedManifestPath(v variant.Variant, sub string) string {
	return filepath.Join(os.TempDir(), fmt.Sprintf("imgforge-%s-%s.Dockerfile", v.Name, sub))
}

func printPlan(plan Plan, opts *BuildOptions) {
	fmt.Println("— Build Plan —")
	fmt.Printf("Variant   : %s (%s)\n", opts.Variant.Name, opts.Variant.Kind)
	fmt.Printf("Context   : %s\n", absOr(opts.Variant.Dir, opts.Variant.Dir))
	for _, step := range plan.Steps {
		for _, ref := range step.Locals {
			fmt.Printf("  tag: %s\n", ref)
		}
		for _, ref := range step.Mirrors {
			fmt.Printf("  tag: %s\n", ref)
		}
	}
	fmt.Printf("Push      : %v\n", plan.Push)
	if opts.DryRun {
		fmt.Println("Dry Run   : true")
	}
}
