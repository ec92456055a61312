// Where: internal/engine/build.go
// What: Image build invocation.
// Why: Build the baked image from the generated descriptor in one place.
package engine

import (
	"context"
	"fmt"
	"os"
)

// BuildOptions contains configuration for a single image build.
type BuildOptions struct {
	Engine     string // engine binary, e.g. "docker"
	Descriptor string // path to the generated build descriptor
	Image      string // target image reference (registry/name:tag)
	ContextDir string // build context, defaults to "."
	NoCache    bool
	Pull       bool
	SecretEnv  string // env var forwarded as the hf_token build secret
	Verbose    bool   // stream engine output instead of capturing it
}

// BuildImage invokes the engine's build operation against the descriptor,
// tagging the result with the target image reference. Any non-zero exit
// aborts the run; captured output is surfaced on failure.
func BuildImage(ctx context.Context, runner CommandRunner, opts BuildOptions) error {
	if runner == nil {
		return fmt.Errorf("command runner is nil")
	}

	contextDir := opts.ContextDir
	if contextDir == "" {
		contextDir = "."
	}

	args := []string{"build", "-f", opts.Descriptor, "-t", opts.Image}
	if opts.NoCache {
		args = append(args, "--no-cache")
	}
	if opts.Pull {
		args = append(args, "--pull")
	}
	if opts.SecretEnv != "" {
		args = append(args, "--secret", fmt.Sprintf("id=hf_token,env=%s", opts.SecretEnv))
	}
	args = append(args, contextDir)

	if opts.Verbose {
		return runner.Run(ctx, contextDir, opts.Engine, args...)
	}
	output, err := runner.RunOutput(ctx, contextDir, opts.Engine, args...)
	if err != nil {
		if len(output) > 0 {
			_, _ = os.Stderr.Write(output)
		}
		return fmt.Errorf("image build failed: %w", err)
	}
	return nil
}
