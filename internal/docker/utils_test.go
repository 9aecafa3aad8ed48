package docker

import (
	"reflect"
	"testing"
)

func TestCleanTag(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"latest", "latest"},
		{"  V1.2.3  ", "v1.2.3"},
		{"feature/foo bar", "feature-foo-bar"},
		{"a--b---c", "a-b-c"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CleanTag(tt.in); got != tt.want {
			t.Errorf("CleanTag(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidTag(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"latest", true},
		{"7-latest", true},
		{"4.4.0-alpha-2", true},
		{"", false},
		{"UPPER", false},
		{"has space", false},
	}
	for _, tt := range tests {
		if got := ValidTag(tt.in); got != tt.want {
			t.Errorf("ValidTag(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDedupTagsPreservesOrder(t *testing.T) {
	got := DedupTags([]string{"v1", "v1", "v2", "v1", "latest", "v2"})
	want := []string{"v1", "v2", "latest"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DedupTags = %v, want %v", got, want)
	}
}
