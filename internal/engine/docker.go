// Where: internal/engine/docker.go
// What: Docker SDK helpers for local image queries.
// Why: Report whether the baked image is tagged locally without shelling out.
package engine

import (
	"context"

	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
)

// DockerClient defines the subset of Docker SDK methods used by this
// package. This interface enables mocking the Docker client in tests.
type DockerClient interface {
	ImageList(ctx context.Context, options image.ListOptions) ([]image.Summary, error)
}

// NewDockerClient constructs a Docker SDK client using environment defaults.
func NewDockerClient() (DockerClient, error) {
	return client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
}

// HasImageTag checks whether an image with exactly the given tag exists in
// the local image store.
func HasImageTag(ctx context.Context, client DockerClient, ref string) (bool, error) {
	images, err := client.ImageList(ctx, image.ListOptions{All: true})
	if err != nil {
		return false, err
	}

	for _, img := range images {
		for _, tag := range img.RepoTags {
			if tag == "<none>:<none>" {
				continue
			}
			if tag == ref {
				return true, nil
			}
		}
	}
	return false, nil
}
