package logs

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestHandler(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		logger Logger,
	) {
		logger.Info("test", "hello", "world!")
	})
}

func TestRunAttribute(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := New(buf, false)

	ctx, id := WithRun(context.Background())
	logger.InfoContext(ctx, "first")
	logger.With("stage", 1).InfoContext(ctx, "second")
	logger.Info("third")

	lines := strings.Split(buf.String(), "\n")
	if !strings.Contains(lines[0], "run="+string(id)) {
		t.Fatalf("got %v", lines[0])
	}
	if !strings.Contains(lines[1], "run="+string(id)) || !strings.Contains(lines[1], "stage=1") {
		t.Fatalf("got %v", lines[1])
	}
	if strings.Contains(lines[2], "run=") {
		t.Fatalf("got %v", lines[2])
	}

	got, ok := RunOf(ctx)
	if !ok || got != id {
		t.Fatalf("got %v", got)
	}
}

func TestWriterOverride(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		writer Writer,
	) {
		if writer != Writer(buf) {
			t.Fatal("writer not overridden")
		}
	})
}

func TestLevel(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := New(buf, false)

	l, err := ParseLevel("warn")
	if err != nil {
		t.Fatal(err)
	}
	SetLevel(l)
	defer SetLevel(slog.LevelInfo)

	logger.Info("hidden")
	logger.Warn("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Fatalf("got %v", buf.String())
	}

	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("should error")
	}
}

func TestToJournalKey(t *testing.T) {
	if got := toJournalKey("run.id-x"); got != "RUN_ID_X" {
		t.Fatalf("got %v", got)
	}
}
