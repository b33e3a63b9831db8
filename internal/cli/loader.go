package cli

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/seqwalk/pattern"
	"github.com/roach88/seqwalk/quant"
	"github.com/roach88/seqwalk/trace"
	"github.com/roach88/seqwalk/walk"
)

// loadPatterns reads and parses a pattern file, mapping failures onto the
// CLI's exit codes.
func loadPatterns(formatter *OutputFormatter, path string) (*pattern.File, []quant.Item[string], []quant.Item[string], error) {
	f, err := pattern.LoadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			_ = formatter.Error(ErrCodeLoad, "pattern file not found: "+path, nil)
			return nil, nil, nil, WrapExitError(ExitCommandError, "pattern file not found", err)
		}
		_ = formatter.Error(ErrCodeLoad, err.Error(), nil)
		return nil, nil, nil, WrapExitError(ExitCommandError, "load pattern file", err)
	}

	dest, src, err := f.Sequences()
	if err != nil {
		_ = formatter.Error(ErrCodeParse, err.Error(), nil)
		return nil, nil, nil, WrapExitError(ExitCommandError, "parse patterns", err)
	}

	formatter.VerboseLog("Loaded %s: %d dest item(s), %d src item(s)", path, len(dest), len(src))
	return f, dest, src, nil
}

// walkOptions assembles walker options for one command run. Verbose mode
// attaches a step tracer on the diagnostic writer: indented plain text for
// text output, slog JSON records stamped with a run token for JSON output.
func walkOptions(formatter *OutputFormatter) []walk.Option[string, string] {
	if !formatter.Verbose {
		return nil
	}

	var sink trace.Sink
	if formatter.Format == "json" {
		logger := slog.New(slog.NewJSONHandler(formatter.GetErrWriter(), &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		sink = trace.NewSlogSink(logger, trace.UUIDv7Generator{})
	} else {
		sink = trace.WriterSink{W: formatter.GetErrWriter()}
	}

	render := func(s string) string { return s }
	return []walk.Option[string, string]{
		walk.WithTracer[string, string](sink),
		walk.WithRenderers[string, string](render, render),
	}
}

// newFormatter builds the formatter for one command invocation.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}
