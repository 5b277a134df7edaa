package logger

import (
	"io"
	"log/slog"
	"os"
)

// Log is a global, exported variable that the rest of the program can access.
var Log *slog.Logger

// init() runs automatically when the 'logger' package is imported.
func init() {
	var writer io.Writer = os.Stdout

	// Optionally mirror everything into a log file next to the binary.
	if path := os.Getenv("LOG_FILE"); path != "" {
		file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
		if err != nil {
			// We can't use our logger here, so plain stderr has to do.
			os.Stderr.WriteString("Failed to open log file: " + err.Error() + "\n")
		} else {
			writer = io.MultiWriter(os.Stdout, file)
		}
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})

	Log = slog.New(handler)
}
