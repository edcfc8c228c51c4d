package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/termdock/termdock/internal/version"
)

// DefaultReleaseURL is the endpoint queried for the latest release tag.
const DefaultReleaseURL = "https://api.github.com/repos/termdock/termdock/releases/latest"

// UpdateCheck is the outcome of a release check.
type UpdateCheck struct {
	Current string
	Latest  string
	Newer   bool
}

// UpdateService checks whether a newer release is available.
type UpdateService struct {
	client     *http.Client
	releaseURL string
}

// NewUpdateService creates an update checker. An empty releaseURL uses
// the default endpoint.
func NewUpdateService(releaseURL string) *UpdateService {
	if releaseURL == "" {
		releaseURL = DefaultReleaseURL
	}
	return &UpdateService{
		client:     &http.Client{Timeout: 10 * time.Second},
		releaseURL: releaseURL,
	}
}

// Check fetches the latest release tag and compares it to the running
// build. Tags come back in forms like "v1.4.0"; the comparator tolerates
// the prefix and any malformed segments.
func (s *UpdateService) Check(ctx context.Context) (*UpdateCheck, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.releaseURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("release check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("release check failed: %s", resp.Status)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("release check failed: %w", err)
	}

	return &UpdateCheck{
		Current: version.Version,
		Latest:  release.TagName,
		Newer:   version.IsNewer(version.Version, release.TagName),
	}, nil
}
