// Where: internal/app/app.go
// What: CLI definition and entrypoint logic.
// Why: Provide a testable command dispatcher for the bake pipeline.
package app

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/modelbake/modelbake/internal/config"
	"github.com/modelbake/modelbake/internal/engine"
	"github.com/modelbake/modelbake/internal/version"
)

// Dependencies holds all injected dependencies required for command
// execution. This structure enables dependency injection for testing and
// allows swapping the container engine implementation.
type Dependencies struct {
	WorkDir  string
	Out      io.Writer
	Runner   engine.CommandRunner
	Docker   engine.DockerClient // nil when the daemon is unreachable
	Settings config.Settings
}

// CLI defines the command-line interface structure parsed by Kong.
// Positional form:
//
//	modelbake <comma_separated_model_list> <image_ref:tag>
type CLI struct {
	Models string `arg:"" optional:"" help:"Comma-separated model references (org/name)"`
	Image  string `arg:"" optional:"" help:"Target image reference (registry/name:tag)"`

	File    string           `short:"f" help:"Read models and image from a YAML manifest"`
	Yes     bool             `short:"y" help:"Skip the pre-build confirmation prompt"`
	Push    bool             `help:"Push without prompting after a successful build"`
	NoPush  bool             `name:"no-push" help:"Never push; skip the push prompt"`
	NoCache bool             `name:"no-cache" help:"Do not use cache when building the image"`
	Pull    bool             `help:"Always attempt to pull newer base images"`
	DryRun  bool             `name:"dry-run" help:"Print the generated descriptor and exit"`
	Keep    bool             `help:"Keep the generated descriptor after exit"`
	Verbose bool             `short:"v" help:"Stream engine output"`
	Version kong.VersionFlag `help:"Show version information"`
}

// Run is the main entry point for CLI execution. It parses the arguments
// and runs the bake pipeline. Returns 0 on success or a declined push,
// 1 on usage errors and failures.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}

	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name("modelbake"),
		kong.Description("Bake downloaded model artifacts into a container image."),
		kong.Vars{"version": version.GetVersion()},
	)
	if err != nil {
		return exitWithError(out, err)
	}

	if _, err := parser.Parse(args); err != nil {
		return exitWithError(out, err)
	}

	return runBake(cli, deps, out)
}

func exitWithError(out io.Writer, err error) int {
	fmt.Fprintln(out, err)
	return 1
}
