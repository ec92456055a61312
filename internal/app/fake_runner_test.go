package app

import (
	"context"
	"fmt"
	"strings"
)

var errExit = fmt.Errorf("exit status 1")

type call struct {
	dir  string
	name string
	args []string
}

// fakeRunner records engine invocations and can fail selectively: quiet
// runs whose argv contains failQuietOn fail (sanity check), outputErr
// fails captured runs (build), and runErr fails streaming runs (push).
type fakeRunner struct {
	calls       []call
	failQuietOn string
	outputErr   error
	runErr      error
}

func (f *fakeRunner) record(dir, name string, args []string) {
	f.calls = append(f.calls, call{dir: dir, name: name, args: args})
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) error {
	f.record(dir, name, args)
	return f.runErr
}

func (f *fakeRunner) RunOutput(_ context.Context, dir, name string, args ...string) ([]byte, error) {
	f.record(dir, name, args)
	return nil, f.outputErr
}

func (f *fakeRunner) RunQuiet(_ context.Context, dir, name string, args ...string) error {
	f.record(dir, name, args)
	if f.failQuietOn != "" && strings.Contains(strings.Join(args, " "), f.failQuietOn) {
		return fmt.Errorf("exit status 1")
	}
	return nil
}

func (f *fakeRunner) commands() []string {
	var names []string
	for _, c := range f.calls {
		if len(c.args) > 0 {
			names = append(names, c.args[0])
		}
	}
	return names
}
