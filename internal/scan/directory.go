package scan

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/traittune/sharing/internal/adapter"
)

// UserDirectory decides whether a scanning user is a known, registered user
//
//go:generate mockgen -source=directory.go -destination=../mocks/directory.go -package=mocks -mock_names=UserDirectory=MockUserDirectory
type UserDirectory interface {
	// IsExistingUser reports whether userID belongs to a registered user
	IsExistingUser(ctx context.Context, userID string) (bool, error)
}

type trustingDirectory struct{}

// NewTrustingDirectory returns a directory that treats every non-blank user ID as existing
func NewTrustingDirectory() UserDirectory {
	return trustingDirectory{}
}

func (trustingDirectory) IsExistingUser(_ context.Context, userID string) (bool, error) {
	return strings.TrimSpace(userID) != "", nil
}

// userResponse is the identity service payload for GET <base>/users/<id>
type userResponse struct {
	ID         string `json:"id"`
	Registered bool   `json:"registered"`
}

type httpDirectory struct {
	baseURL string
	client  adapter.HTTPClient
}

// NewHTTPDirectory returns a directory backed by an identity service.
// A 404 from the service means the user does not exist.
func NewHTTPDirectory(baseURL string, client adapter.HTTPClient) UserDirectory {
	return &httpDirectory{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

func (d *httpDirectory) IsExistingUser(ctx context.Context, userID string) (bool, error) {
	if strings.TrimSpace(userID) == "" {
		return false, nil
	}

	var resp userResponse
	err := d.client.Get(ctx, fmt.Sprintf("%s/users/%s", d.baseURL, url.PathEscape(userID)), &resp)
	if errors.Is(err, adapter.ErrHTTPNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up user: %w", err)
	}

	return resp.Registered && resp.ID == userID, nil
}
