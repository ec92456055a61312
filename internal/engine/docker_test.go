// Where: internal/engine/docker_test.go
// What: Tests for Docker SDK image queries.
// Why: Local tag reporting backs the declined-push message.
package engine

import (
	"context"
	"fmt"
	"testing"

	"github.com/docker/docker/api/types/image"
)

type fakeDockerClient struct {
	images []image.Summary
	err    error
}

func (f *fakeDockerClient) ImageList(_ context.Context, _ image.ListOptions) ([]image.Summary, error) {
	return f.images, f.err
}

func TestHasImageTagMatchesExactTag(t *testing.T) {
	client := &fakeDockerClient{images: []image.Summary{
		{RepoTags: []string{"<none>:<none>"}},
		{RepoTags: []string{"registry.example.com/team/models:v1"}},
	}}

	found, err := HasImageTag(context.Background(), client, "registry.example.com/team/models:v1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !found {
		t.Fatal("expected tag to be found")
	}
}

func TestHasImageTagNoMatch(t *testing.T) {
	client := &fakeDockerClient{images: []image.Summary{
		{RepoTags: []string{"registry.example.com/team/models:v2"}},
	}}

	found, err := HasImageTag(context.Background(), client, "registry.example.com/team/models:v1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if found {
		t.Fatal("expected tag to be absent")
	}
}

func TestHasImageTagPropagatesError(t *testing.T) {
	client := &fakeDockerClient{err: fmt.Errorf("daemon unavailable")}
	if _, err := HasImageTag(context.Background(), client, "img:tag"); err == nil {
		t.Fatal("expected error")
	}
}
