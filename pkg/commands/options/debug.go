package options

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// DebugOptions route editor diagnostics to a log file.
type DebugOptions struct {
	Debug bool
}

func AddDebugArgs(cmd *cobra.Command, o *DebugOptions) {
	cmd.Flags().BoolVar(&o.Debug, "debug", false,
		"Write editor diagnostics to debug.log in the journal directory.")
}

// Logger opens dir/debug.log for appending. Without --debug it returns a nil
// logger and a no-op closer.
func (o *DebugOptions) Logger(dir string) (*log.Logger, io.Closer, error) {
	if !o.Debug {
		return nil, io.NopCloser(nil), nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("debug log: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "debug.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("debug log: %w", err)
	}
	return log.New(f, "diary ", log.LstdFlags|log.Lmicroseconds), f, nil
}
