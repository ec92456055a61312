package engine

import (
	"context"
	"fmt"
)

type call struct {
	dir  string
	name string
	args []string
}

type fakeRunner struct {
	calls  []call
	err    error
	output []byte
}

func (f *fakeRunner) record(dir, name string, args []string) {
	f.calls = append(f.calls, call{dir: dir, name: name, args: args})
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) error {
	f.record(dir, name, args)
	return f.err
}

func (f *fakeRunner) RunOutput(_ context.Context, dir, name string, args ...string) ([]byte, error) {
	f.record(dir, name, args)
	return f.output, f.err
}

func (f *fakeRunner) RunQuiet(ctx context.Context, dir, name string, args ...string) error {
	return f.Run(ctx, dir, name, args...)
}

func (f *fakeRunner) last() call {
	if len(f.calls) == 0 {
		return call{}
	}
	return f.calls[len(f.calls)-1]
}

var errExit = fmt.Errorf("exit status 1")
