package utils

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var Logger zerolog.Logger

func init() {
	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	console.FormatLevel = func(i interface{}) string {
		level := strings.ToUpper(i.(string))
		switch level {
		case "DEBUG":
			return "\033[36m[" + level + "]\033[0m"
		case "INFO":
			return "\033[32m[" + level + "]\033[0m"
		case "WARN":
			return "\033[33m[" + level + "]\033[0m"
		case "ERROR":
			return "\033[31m[" + level + "]\033[0m"
		default:
			return "[" + level + "]"
		}
	}

	var out io.Writer = console
	// LOG_FILE mirrors the console stream into a file for later inspection.
	if path := os.Getenv("LOG_FILE"); path != "" {
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
			out = io.MultiWriter(console, f)
		}
	}

	level := zerolog.InfoLevel
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if parsed, err := zerolog.ParseLevel(raw); err == nil {
			level = parsed
		}
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	Logger = zerolog.New(out).Level(level).With().Timestamp().Logger()

	// Replace the global logger so log.Info().Msg() works everywhere too.
	log.Logger = Logger
}
