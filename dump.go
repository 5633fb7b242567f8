package statebuffer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hyp3rd/ewrap"
	"github.com/mattn/go-isatty"

	"github.com/hyp3rd/statebuffer/internal/utils"
)

// DumpFilePermissions are the default file permissions for dump files.
const DumpFilePermissions = 0o666

// String renders the buffer contents as one line per entry in timestamp
// order, uncolored. Intended for diagnostics and test failure output.
func (b *Buffer) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "buffer length=%d max=%d\n", len(b.entries), b.maxBufferSize)

	for i := range b.entries {
		fmt.Fprintf(&sb, "[%d] %s\n", i, b.entries[i])
	}

	return sb.String()
}

// Dump writes the buffer contents to w, one entry per line, colorizing each
// line by its metadata tag when the configured palette is enabled and w is a
// terminal (or ForceTTY is set). Returns an error only when the write fails.
func (b *Buffer) Dump(w io.Writer) error {
	colorize := b.color.Enable && (b.color.ForceTTY || isTerminal(w))

	_, err := fmt.Fprintf(w, "buffer length=%d max=%d\n", len(b.entries), b.maxBufferSize)
	if err != nil {
		return ewrap.Wrap(err, "failed to write buffer dump header")
	}

	for i := range b.entries {
		line := fmt.Sprintf("[%d] %s", i, b.entries[i])

		if colorize {
			if color, ok := b.color.MetadataColors[b.entries[i].Metadata]; ok {
				line = color + line + Reset
			}
		}

		_, err = fmt.Fprintln(w, line)
		if err != nil {
			return ewrap.Wrap(err, "failed to write buffer dump entry").
				WithMetadata("index", i)
		}
	}

	return nil
}

// DumpOutput resolves a dump destination for Dump. It accepts "stdout",
// "stderr", or a file path as input. If a file path is provided, the file is
// created if it doesn't exist and opened in append mode. Relative paths are
// confined to the system's temporary directory.
func DumpOutput(output string) (io.Writer, error) {
	switch strings.ToLower(output) {
	case "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		path := filepath.Clean(output)

		if path == "" {
			return nil, ewrap.New("output path cannot be empty")
		}

		if !filepath.IsAbs(path) {
			securePath, err := utils.SecurePath(path)
			if err != nil {
				return nil, ewrap.Wrap(err, "invalid output path")
			}

			path = securePath
		}

		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, DumpFilePermissions)
		if err != nil {
			return nil, ewrap.Wrapf(err, "failed to open dump file %s", path)
		}

		return file, nil
	}
}

// isTerminal reports whether the writer is attached to a terminal.
func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
