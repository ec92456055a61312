// Where: internal/engine/push.go
// What: Image push invocation.
// Why: Publish the baked image through the engine's own registry auth.
package engine

import (
	"context"
	"fmt"
)

// PushImage pushes the target image reference. Output streams to the
// operator; a non-zero exit propagates fail-fast.
func PushImage(ctx context.Context, runner CommandRunner, engine, image string) error {
	if runner == nil {
		return fmt.Errorf("command runner is nil")
	}
	if err := runner.Run(ctx, "", engine, "push", image); err != nil {
		return fmt.Errorf("image push failed: %w", err)
	}
	return nil
}
