package pipeline

import (
	"fmt"

	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/hasbyte1/go-seqs/logs"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
}

// script holds the frozen globals of a pipeline's Starlark source. Calls
// share one thread; a pipeline is drained by a single goroutine.
type script struct {
	thread  *starlark.Thread
	globals starlark.StringDict
}

func predeclared() starlark.StringDict {
	return starlark.StringDict{
		"digest": starlarkutil.MakeFunc("digest", func(s string) string {
			return Digest([]byte(s))
		}),
	}
}

func compileScript(name, src string, logger logs.Logger) (*script, error) {
	thread := &starlark.Thread{
		Name: name,
		Print: func(_ *starlark.Thread, msg string) {
			logger.Debug("script print", "script", name, "msg", msg)
		},
	}
	s := &script{thread: thread}
	if src == "" {
		return s, nil
	}
	globals, err := starlark.ExecFileOptions(fileOptions, thread, name, src, predeclared())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScript, err)
	}
	globals.Freeze()
	s.globals = globals
	return s, nil
}

// function looks up a callable global.
func (s *script) function(name string) (starlark.Callable, error) {
	v, ok := s.globals[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingFunc, name)
	}
	fn, ok := v.(starlark.Callable)
	if !ok {
		return nil, fmt.Errorf("%w: %q is a %s", ErrMissingFunc, name, v.Type())
	}
	return fn, nil
}

func (s *script) call(fn starlark.Callable, args ...any) (starlark.Value, error) {
	tuple := make(starlark.Tuple, len(args))
	for i, arg := range args {
		v, err := toStarlarkValue(arg)
		if err != nil {
			return nil, err
		}
		tuple[i] = v
	}
	ret, err := starlark.Call(s.thread, fn, tuple, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrScript, fn.Name(), err)
	}
	return ret, nil
}

// callValue calls fn and converts its result.
func (s *script) callValue(fn starlark.Callable, args ...any) (any, error) {
	ret, err := s.call(fn, args...)
	if err != nil {
		return nil, err
	}
	return fromStarlarkValue(ret)
}

// callTruth calls fn and reports the truth of its result.
func (s *script) callTruth(fn starlark.Callable, args ...any) (bool, error) {
	ret, err := s.call(fn, args...)
	if err != nil {
		return false, err
	}
	return bool(ret.Truth()), nil
}
