// internal/release/release.go
//
// Release preflight: classify the release tag, check the push registry for
// a collision, rewrite the version pin in the variant's manifest, and commit
// the change locally. The commit is never pushed; publishing the version
// bump stays a manual, reviewed step.

package release

import (
	"errors"
	"fmt"
	"log"
	"os"
	"regexp"
	"slices"
	"strings"

	"imgforge/internal/executil"
	"imgforge/internal/variant"
	"imgforge/internal/version"
	"imgforge/pkg/registry"
)

// ErrAlreadySatisfied marks the "condition already true/false" outcomes:
// the release tag is already published, or the version pin is already
// current. The CLI maps it to its own exit code; --ignore-error downgrades
// it to a warning.
var ErrAlreadySatisfied = errors.New("already satisfied")

// Release captures the classification of a release tag.
type Release struct {
	Tag             string // the tag as supplied, e.g. "4.4.0-alpha-2"
	Base            string // portion before the first hyphen
	Qualifier       string // portion after the first hyphen, may be empty
	PreRelease      bool   // qualifier starts with one of a, b, r, m
	ArtifactVersion string // version pinned in the manifest
}

// Classify splits a release tag at the first hyphen and decides whether it
// is a pre-release. Pre-release qualifiers (alpha, beta, rc, milestone, ...)
// start with one of {a, b, r, m}, case-insensitively; anything else (e.g. a
// rebuild counter like "4.3.0-1") is a normal release.
func Classify(tag string) Release {
	base, qualifier, _ := strings.Cut(tag, "-")
	pre := qualifier != "" && strings.ContainsRune("abrm", unicodeLower(qualifier[0]))

	artifact := base
	if pre {
		artifact = base + "-" + qualifier
	}
	return Release{
		Tag:             tag,
		Base:            base,
		Qualifier:       qualifier,
		PreRelease:      pre,
		ArtifactVersion: artifact,
	}
}

func unicodeLower(b byte) rune {
	if b >= 'A' && b <= 'Z' {
		b += 'a' - 'A'
	}
	return rune(b)
}

// Run executes the release preflight for a classified release against one
// variant. repository is the registry-side repository path
// (e.g. "imgforge/server").
func Run(r executil.Runner, tags registry.TagsService, v variant.Variant, rel Release, repository string, ignoreError, dryRun bool) error {
	published, err := tags.List(repository)
	if err != nil {
		return fmt.Errorf("registry lookup for %s failed: %w", repository, err)
	}
	if latest, ok := version.Latest(published); ok {
		log.Printf("[release] latest published version for %s: %s", repository, latest)
	}

	if slices.Contains(published, rel.Tag) {
		if !ignoreError {
			return fmt.Errorf("tag %q already published to %s: %w", rel.Tag, repository, ErrAlreadySatisfied)
		}
		log.Printf("[release] tag %q already published to %s; continuing (--ignore-error)", rel.Tag, repository)
	}

	changed, err := RewritePin(v.Manifest(), rel.ArtifactVersion, dryRun)
	if err != nil {
		return err
	}
	if !changed {
		if !ignoreError {
			return fmt.Errorf("version pin in %s is already %s: %w", v.Manifest(), rel.ArtifactVersion, ErrAlreadySatisfied)
		}
		log.Printf("[release] version pin already %s; skipping commit (--ignore-error)", rel.ArtifactVersion)
		return nil
	}

	log.Printf("[release] pinned %s=%s in %s", variant.VersionPinVar, rel.ArtifactVersion, v.Manifest())
	return r.Run("git", "commit", "-m", fmt.Sprintf("Release %s", rel.Tag), "--", v.Manifest())
}

// The separator is captured so "ENV FORGE_VERSION 1.2.3" and
// "ENV FORGE_VERSION=1.2.3" each keep their style.
var pinPattern = regexp.MustCompile(`(?m)^(ENV[ \t]+` + variant.VersionPinVar + `[= \t])[ \t]*\S*[ \t]*$`)

// RewritePin updates the version-pin line in the manifest to the artifact
// version and reports whether the file content changed. In dry-run the file
// is left untouched and only the would-be change is computed.
func RewritePin(path, artifact string, dryRun bool) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	content := string(data)

	if !pinPattern.MatchString(content) {
		return false, fmt.Errorf("no %s pin found in %s", variant.VersionPinVar, path)
	}

	rewritten := pinPattern.ReplaceAllString(content, "${1}"+artifact)
	if rewritten == content {
		return false, nil
	}
	if dryRun {
		return true, nil
	}

	st, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	if err := os.WriteFile(path, []byte(rewritten), st.Mode()); err != nil {
		return false, fmt.Errorf("failed to rewrite %s: %w", path, err)
	}
	return true, nil
}
