// internal/cli/cli.go
//
// Flag/argument declaration and the run sequence: resolve the variant,
// assemble the requested tag set, run the release preflight when asked, and
// hand the build matrix to the docker layer. Errors are mapped onto the
// shared exit-code convention here and nowhere else.

package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/alecthomas/kong"

	"imgforge/internal/config"
	"imgforge/internal/docker"
	"imgforge/internal/executil"
	"imgforge/internal/release"
	"imgforge/internal/variant"
	"imgforge/pkg/registry"
)

// Exit codes shared with the surrounding tooling.
const (
	ExitOK      = 0 // success
	ExitFailure = 1 // generic failure
	ExitUsage   = 2 // invalid invocation
	ExitFalse   = 3 // condition already true/false (release preconditions)
)

// CLI defines the command-line surface parsed by Kong.
type CLI struct {
	BuildOptions string   `short:"o" name:"build-options" placeholder:"OPTS" help:"Extra options passed through to docker build (whitespace separated)."`
	IgnoreError  bool     `short:"i" name:"ignore-error" help:"Continue when a release precondition is already satisfied."`
	DryRun       bool     `short:"n" name:"dry-run" help:"Print every external command instead of running it."`
	Tags         []string `short:"t" name:"tag" placeholder:"TAG" help:"Tag to apply (repeatable; default: latest)."`
	Push         bool     `short:"p" help:"Push images to the push registry after building."`
	Release      string   `short:"r" placeholder:"TAG" help:"Release tag: check the registry for a collision, rewrite the version pin and commit it, then build."`

	Variant string `arg:"" help:"Image variant to build (server, console, or any directory containing a Dockerfile)."`
}

// Run parses args and executes the pipeline. It returns the process exit
// code; all human-readable output goes to out.
func Run(args []string, out io.Writer) int {
	var c CLI
	exited := false
	parser, err := kong.New(&c,
		kong.Name("imgforge"),
		kong.Description("Build, tag and push forge container images."),
		kong.Writers(out, out),
		kong.Exit(func(int) { exited = true }),
	)
	if err != nil {
		fmt.Fprintf(out, "imgforge: %v\n", err)
		return ExitFailure
	}

	if _, err := parser.Parse(args); err != nil {
		if exited {
			// --help was rendered; kong's exit hook fired.
			return ExitOK
		}
		fmt.Fprintf(out, "imgforge: %v\n", err)
		return ExitUsage
	}
	if exited {
		return ExitOK
	}

	return run(&c, out)
}

func run(c *CLI, out io.Writer) int {
	cfg := config.Load()
	if c.DryRun {
		cfg.DryRun = true
	}

	v, err := variant.Resolve(".", c.Variant)
	if err != nil {
		fmt.Fprintf(out, "imgforge: %v\n", err)
		return ExitUsage
	}
	log.Printf("[imgforge] resolved variant: %s (%s)", v.Name, v.Kind)

	push := c.Push
	var rel *release.Release
	if c.Release != "" {
		rr := release.Classify(c.Release)
		rel = &rr
		// A release always pushes what it builds.
		push = true
		log.Printf("[release] tag=%s artifact=%s pre-release=%v", rr.Tag, rr.ArtifactVersion, rr.PreRelease)
	}

	tags, err := requestedTags(c.Tags, rel)
	if err != nil {
		fmt.Fprintf(out, "imgforge: %v\n", err)
		return ExitUsage
	}

	runner := executil.New(cfg.DryRun, out)
	repo := v.Repository(cfg.Namespace)

	if rel != nil {
		client, err := registry.NewClient(cfg.RegistryHost, cfg.HTTPTimeout)
		if err != nil {
			fmt.Fprintf(out, "imgforge: %v\n", err)
			return ExitFailure
		}
		if err := release.Run(runner, client.Tags, v, *rel, repo, c.IgnoreError, cfg.DryRun); err != nil {
			fmt.Fprintf(out, "imgforge: %v\n", err)
			if errors.Is(err, release.ErrAlreadySatisfied) {
				return ExitFalse
			}
			return exitFor(err)
		}
	}

	opts := &docker.BuildOptions{
		Variant:   v,
		Tags:      tags,
		BuildArgs: strings.Fields(c.BuildOptions),
		Registry:  cfg.RegistryHost,
		Namespace: cfg.Namespace,
		Push:      push,
		DryRun:    cfg.DryRun,
	}
	if err := docker.Execute(runner, opts); err != nil {
		fmt.Fprintf(out, "imgforge: %v\n", err)
		return exitFor(err)
	}
	return ExitOK
}

// requestedTags assembles the effective tag set: the cleaned user tags, plus
// the release tag and (for normal releases) "latest", defaulting to
// {latest}. The result is deduplicated preserving order.
func requestedTags(raw []string, rel *release.Release) ([]string, error) {
	var tags []string
	for _, t := range raw {
		ct := docker.CleanTag(t)
		if !docker.ValidTag(ct) {
			return nil, fmt.Errorf("invalid tag %q", t)
		}
		tags = append(tags, ct)
	}
	if rel != nil {
		rt := docker.CleanTag(rel.Tag)
		if !docker.ValidTag(rt) {
			return nil, fmt.Errorf("invalid release tag %q", rel.Tag)
		}
		tags = append(tags, rt)
		if !rel.PreRelease {
			tags = append(tags, "latest")
		}
	}
	if len(tags) == 0 {
		tags = []string{"latest"}
	}
	return docker.DedupTags(tags), nil
}

// exitFor mirrors a failing external tool's status when one is available.
func exitFor(err error) int {
	if code, ok := executil.ExitStatus(err); ok {
		return code
	}
	return ExitFailure
}
