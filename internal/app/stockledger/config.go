package stockledger

import (
	"fmt"
	"strings"
)

// Config carries the resolved invocation settings for the stockledger
// process. Observability knobs (LOG_LEVEL, ENVIRONMENT, TRACE_STDOUT,
// OTEL_EXPORTER_OTLP_ENDPOINT) are read by the platform layer.
type Config struct {
	// InputPath names the instruction file; empty means read stdin.
	InputPath string
}

// LoadConfig interprets the command line: at most one positional argument
// naming the instruction file.
func LoadConfig(args []string) (Config, error) {
	switch len(args) {
	case 0:
		return Config{}, nil
	case 1:
		path := strings.TrimSpace(args[0])
		if path == "" {
			return Config{}, fmt.Errorf("instruction file path is empty")
		}
		return Config{InputPath: path}, nil
	default:
		return Config{}, fmt.Errorf("expected at most one instruction file, got %d arguments", len(args))
	}
}

// Input names the configured line source for logs.
func (c Config) Input() string {
	if c.InputPath == "" {
		return "stdin"
	}
	return c.InputPath
}
