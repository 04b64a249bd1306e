// Package logging wires up the ambient logging sink shared by the CLI and
// HTTP façade: plain slog call sites, same as the teacher's direct `log`
// usage, backed by a rotating file sink when a log path is configured (the
// pack's lawnchairsociety-OpenTowerMUD server idiom), and stderr otherwise.
package logging

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// New returns a slog.Logger writing text-formatted records to path if
// non-empty (rotated via lumberjack at 10MB/3 backups/28 days), or to
// stderr if path is empty.
func New(path string) *slog.Logger {
	var w io.Writer = os.Stderr
	if path != "" {
		w = &lumberjack.Logger{
			Filename:   path,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
	}
	return slog.New(slog.NewTextHandler(w, nil))
}
