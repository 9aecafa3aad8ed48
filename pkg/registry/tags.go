package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

type TagsService interface {
	List(repository string) ([]string, error)
}

type tagsService struct {
	client *Client
}

type tagList struct {
	Name string   `json:"name"`
	Tags []string `json:"tags"`
}

// List returns every tag published for the repository. A repository the
// registry has never seen has nothing to collide with, so a 404 yields an
// empty list rather than an error.
func (s *tagsService) List(repository string) ([]string, error) {
	path := fmt.Sprintf("/%s/tags/list", repository)
	respData, err := s.client.DoRequest(http.MethodGet, path)
	if err != nil {
		var rerr *RegistryError
		if errors.As(err, &rerr) && rerr.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch tags for %s: %w", repository, err)
	}

	var list tagList
	if err := json.Unmarshal(respData, &list); err != nil {
		return nil, fmt.Errorf("failed to parse tag list: %w", err)
	}
	return list.Tags, nil
}
