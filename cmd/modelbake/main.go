// Where: cmd/modelbake/main.go
// What: CLI entrypoint.
// Why: Execute the bake pipeline with configured dependencies.
package main

import (
	"fmt"
	"os"

	"github.com/modelbake/modelbake/internal/app"
)

func main() {
	deps, err := buildDependencies()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	os.Exit(app.Run(os.Args[1:], deps))
}
