package logger

import (
	"log/slog"
	"os"
)

// Init configures the global slog logger. Production gets JSON output at
// info level, everything else human readable text with debug enabled.
func Init(environment string) {
	var handler slog.Handler
	if environment == "production" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}
	slog.SetDefault(slog.New(handler))
}

// normalize tolerates a trailing unpaired value (usually an error) by giving
// it an explicit key, so callers can write logger.Error("msg", err).
func normalize(args []any) []any {
	if len(args)%2 == 1 {
		last := args[len(args)-1]
		args = append(args[:len(args)-1], slog.Any("error", last))
	}
	return args
}

func Debug(msg string, args ...any) {
	slog.Debug(msg, normalize(args)...)
}

func Info(msg string, args ...any) {
	slog.Info(msg, normalize(args)...)
}

func Warn(msg string, args ...any) {
	slog.Warn(msg, normalize(args)...)
}

func Error(msg string, args ...any) {
	slog.Error(msg, normalize(args)...)
}

func Fatal(msg string, args ...any) {
	slog.Error(msg, normalize(args)...)
	os.Exit(1)
}
