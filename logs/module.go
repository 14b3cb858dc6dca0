// Package logs provides the slog logger shared by the pipeline runner and
// the command line tool.
package logs

import "github.com/reusee/dscope"

// Module provides Writer and Logger.
type Module struct {
	dscope.Module
}
