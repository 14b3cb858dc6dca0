package main

import (
	"flag"

	"github.com/hasbyte1/go-seqs/configs"
)

// settingsSchema lets pipeline files carry defaults for the command line
// flags:
//
//	seqrun: {log_level: "debug", digest: true}
const settingsSchema = `
seqrun?: {
	log_level?: "debug" | "info" | "warn" | "error"
	digest?:    bool
}
`

type Settings struct {
	LogLevel string `json:"log_level"`
	Digest   bool   `json:"digest"`
}

// loadSettings reads the first seqrun block of loader. Flags set on the
// command line win over it.
func loadSettings(loader configs.Loader, flags *flag.FlagSet) (Settings, error) {
	settings, _, err := configs.First[Settings](loader, "seqrun")
	if err != nil {
		return settings, err
	}
	if settings.LogLevel == "" {
		settings.LogLevel = "info"
	}
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			settings.LogLevel = f.Value.String()
		case "digest":
			settings.Digest = f.Value.(flag.Getter).Get().(bool)
		}
	})
	return settings, nil
}
