// Where: internal/app/bake.go
// What: The bake pipeline handler.
// Why: Orchestrate render, build, sanity check, and push as one sequence.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/modelbake/modelbake/internal/config"
	"github.com/modelbake/modelbake/internal/descriptor"
	"github.com/modelbake/modelbake/internal/engine"
	"github.com/modelbake/modelbake/internal/manifest"
	"github.com/modelbake/modelbake/internal/model"
	"github.com/modelbake/modelbake/internal/ui"
)

const usageHint = "usage: modelbake <comma_separated_model_list> <image_ref:tag>"

type bakeInputs struct {
	Models          []model.Ref
	Image           string
	DownloaderImage string
	RuntimeImage    string
}

// resolveInputs merges positional arguments or a manifest file into one
// input set. The two forms are mutually exclusive.
func resolveInputs(cli CLI) (bakeInputs, error) {
	if cli.File != "" {
		if cli.Models != "" || cli.Image != "" {
			return bakeInputs{}, fmt.Errorf("positional arguments and --file are mutually exclusive")
		}
		m, err := manifest.Load(cli.File)
		if err != nil {
			return bakeInputs{}, err
		}
		refs := make([]model.Ref, len(m.Models))
		for i, name := range m.Models {
			refs[i] = model.Ref(name)
		}
		return bakeInputs{
			Models:          refs,
			Image:           m.Image,
			DownloaderImage: m.DownloaderImage,
			RuntimeImage:    m.RuntimeImage,
		}, nil
	}

	if cli.Models == "" || cli.Image == "" {
		return bakeInputs{}, fmt.Errorf("%s", usageHint)
	}
	return bakeInputs{
		Models: model.SplitList(cli.Models),
		Image:  cli.Image,
	}, nil
}

// runBake executes the whole pipeline. The generated descriptor is removed
// exactly once on every exit path unless --keep is set.
func runBake(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)
	ctx := context.Background()

	inputs, err := resolveInputs(cli)
	if err != nil {
		return exitWithError(out, err)
	}

	settings := deps.Settings
	spec := descriptor.Spec{
		Models:          inputs.Models,
		Image:           inputs.Image,
		DownloaderImage: firstNonEmpty(inputs.DownloaderImage, settings.DownloaderImage),
		RuntimeImage:    firstNonEmpty(inputs.RuntimeImage, settings.RuntimeImage),
		WithHubToken:    settings.HubToken != "",
	}

	content, err := descriptor.Render(spec)
	if err != nil {
		return exitWithError(out, err)
	}

	if cli.DryRun {
		fmt.Fprint(out, content)
		return 0
	}

	printPlan(console, spec, settings.Engine)
	if !cli.Yes {
		if !isTerminal(os.Stdin) {
			return exitWithError(out, fmt.Errorf("confirmation requires --yes in non-interactive mode"))
		}
		confirmed, err := promptYesNo("Proceed with the build?")
		if err != nil {
			return exitWithError(out, err)
		}
		if !confirmed {
			fmt.Fprintln(out, "Aborted.")
			return 1
		}
	}

	file, err := descriptor.Write(deps.WorkDir, content)
	if err != nil {
		return exitWithError(out, err)
	}
	defer func() {
		if cli.Keep {
			return
		}
		if err := file.Remove(); err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(out, "warning: could not remove %s: %v\n", file.Path(), err)
		}
	}()

	buildOpts := engine.BuildOptions{
		Engine:     settings.Engine,
		Descriptor: file.Path(),
		Image:      spec.Image,
		ContextDir: deps.WorkDir,
		NoCache:    cli.NoCache,
		Pull:       cli.Pull,
		Verbose:    cli.Verbose,
	}
	if settings.HubToken != "" {
		buildOpts.SecretEnv = config.HubTokenEnv
	}
	if err := engine.BuildImage(ctx, deps.Runner, buildOpts); err != nil {
		return exitWithError(out, err)
	}
	console.Success("image built: " + spec.Image)

	for _, ref := range spec.Models {
		dir := path.Join(descriptor.ArtifactRoot, ref.Dir())
		if err := engine.VerifyArtifactDir(ctx, deps.Runner, settings.Engine, spec.Image, dir); err != nil {
			console.Error(fmt.Sprintf("sanity check failed for model %s: %v", ref, err))
			return 1
		}
	}
	console.Success("sanity check passed for all models")

	if !shouldPush(cli, out) {
		reportLocalImage(ctx, deps, console, spec.Image)
		return 0
	}

	if err := engine.PushImage(ctx, deps.Runner, settings.Engine, spec.Image); err != nil {
		return exitWithError(out, err)
	}
	console.Success("image pushed: " + spec.Image)
	return 0
}

// shouldPush resolves the push decision: --push forces it, --no-push and a
// non-interactive stdin skip it, otherwise the operator is asked. The gate
// accepts only an affirmative answer.
func shouldPush(cli CLI, out io.Writer) bool {
	if cli.NoPush {
		return false
	}
	if cli.Push {
		return true
	}
	if !isTerminal(os.Stdin) {
		return false
	}
	confirmed, err := promptYesNo("Push the image to the registry?")
	if err != nil {
		fmt.Fprintf(out, "warning: push prompt failed: %v\n", err)
		return false
	}
	return confirmed
}

func reportLocalImage(ctx context.Context, deps Dependencies, console *ui.Console, image string) {
	if deps.Docker != nil {
		if found, err := engine.HasImageTag(ctx, deps.Docker, image); err == nil && found {
			console.Info("push skipped; image is available locally: " + image)
			return
		}
	}
	console.Info("push skipped; image remains local: " + image)
}

func printPlan(console *ui.Console, spec descriptor.Spec, engineName string) {
	console.Header("Bake plan")
	console.Item("Engine", engineName)
	console.Item("Image", spec.Image)
	console.Item("Downloader base", firstNonEmpty(spec.DownloaderImage, descriptor.DefaultDownloaderImage))
	console.Item("Runtime base", firstNonEmpty(spec.RuntimeImage, descriptor.DefaultRuntimeImage))
	console.Header("Models")
	for _, ref := range spec.Models {
		console.ItemPlain(ref.String() + " -> " + path.Join(descriptor.ArtifactRoot, ref.Dir()))
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
