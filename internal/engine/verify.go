// Where: internal/engine/verify.go
// What: Post-build sanity check.
// Why: Confirm each model's artifact directory exists inside the built image.
package engine

import (
	"context"
	"fmt"
)

// VerifyArtifactDir instantiates the image and lists the expected artifact
// directory, discarding output. A non-zero exit means the directory is
// missing from the image.
func VerifyArtifactDir(ctx context.Context, runner CommandRunner, engine, image, dir string) error {
	if runner == nil {
		return fmt.Errorf("command runner is nil")
	}
	args := []string{"run", "--rm", image, "ls", dir}
	if err := runner.RunQuiet(ctx, "", engine, args...); err != nil {
		return fmt.Errorf("directory %s missing from image: %w", dir, err)
	}
	return nil
}
