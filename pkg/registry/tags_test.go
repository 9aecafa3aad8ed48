package registry

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func TestTagsList(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/imgforge/server/tags/list" {
			t.Errorf("unexpected path %q", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name":"imgforge/server","tags":["4.3.0","7-latest","latest"]}`))
	}))
	defer ts.Close()

	c, err := NewClient(ts.URL, 0)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	tags, err := c.Tags.List("imgforge/server")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"4.3.0", "7-latest", "latest"}
	if !reflect.DeepEqual(tags, want) {
		t.Errorf("List = %v, want %v", tags, want)
	}
}

func TestTagsListUnknownRepository(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer ts.Close()

	c, err := NewClient(ts.URL, 0)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	// A never-pushed repository has nothing to collide with.
	tags, err := c.Tags.List("imgforge/brand-new")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(tags) != 0 {
		t.Errorf("List = %v, want empty", tags)
	}
}

func TestTagsListServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	c, err := NewClient(ts.URL, 0)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if _, err := c.Tags.List("imgforge/server"); err == nil {
		t.Error("expected error on 500")
	}
}

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient("", 0); err == nil {
		t.Error("expected error for empty host")
	}

	c, err := NewClient("registry.example.com", 0)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if c.baseURL != "https://registry.example.com" {
		t.Errorf("baseURL = %q, want https scheme added", c.baseURL)
	}
}
