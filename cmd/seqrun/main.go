// Command seqrun runs the pipelines defined in CUE files and prints their
// results as JSON, one line per pipeline.
//
//	seqrun [-log-level debug|info|warn|error] [-digest] FILE.cue...
//
// A file may also hold a seqrun block with defaults for the flags.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	jsoniter "github.com/json-iterator/go"
	"github.com/reusee/dscope"

	"github.com/hasbyte1/go-seqs/configs"
	"github.com/hasbyte1/go-seqs/logs"
	"github.com/hasbyte1/go-seqs/pipeline"
)

func init() {
	defineFlags(flag.CommandLine)
}

func defineFlags(flags *flag.FlagSet) {
	flags.String("log-level", "info", "minimum log level: debug, info, warn or error")
	flags.Bool("digest", false, "print the digest of each result after its values")
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: seqrun [flags] FILE.cue...\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	loader := newLoader(flag.Args())
	if err := loader.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	settings, err := loadSettings(loader, flag.CommandLine)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	level, err := logs.ParseLevel(settings.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logs.SetLevel(level)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	ok := true
	dscope.New(new(Module)).Call(func(
		logger logs.Logger,
		runner *pipeline.Runner,
	) {
		out := bufio.NewWriter(os.Stdout)
		defer out.Flush()
		if err := runAll(ctx, runner, loader, settings, out); err != nil {
			logger.Error("seqrun failed", "error", err)
			ok = false
		}
	})
	if !ok {
		os.Exit(1)
	}
}

func newLoader(files []string) configs.Loader {
	return configs.NewLoader(files, pipeline.Schema+settingsSchema)
}

func runAll(ctx context.Context, runner *pipeline.Runner, loader configs.Loader, settings Settings, out *bufio.Writer) error {
	for doc, err := range pipeline.Load(loader) {
		if err != nil {
			return err
		}
		res, err := runner.Run(ctx, doc)
		if err != nil {
			return err
		}
		b, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(res.Values)
		if err != nil {
			return err
		}
		out.Write(b)
		out.WriteByte('\n')
		if settings.Digest {
			fmt.Fprintln(out, res.Digest)
		}
	}
	return nil
}
