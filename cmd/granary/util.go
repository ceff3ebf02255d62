package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

const stdIOPath = "-"

func getFileOrStdin(path string) (io.ReadCloser, error) {
	if path == stdIOPath {
		return io.NopCloser(os.Stdin), nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return file, nil
}

// readDocument reads the JSON or YAML object named by the first argument,
// or stdin when there is none.
func readDocument(cctx *cli.Context) (map[string]any, error) {
	path := cctx.Args().First()
	if path == "" {
		path = stdIOPath
	}
	r, err := getFileOrStdin(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return decodeDocument(b, cctx.String("format"))
}

func decodeDocument(b []byte, format string) (map[string]any, error) {
	var doc map[string]any
	switch strings.ToLower(format) {
	case "", "json":
		if err := json.Unmarshal(b, &doc); err != nil {
			return nil, fmt.Errorf("parsing JSON input: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(b, &doc); err != nil {
			return nil, fmt.Errorf("parsing YAML input: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported input format: %q", format)
	}
	return doc, nil
}

func printJSON(cctx *cli.Context, v any) error {
	var b []byte
	var err error
	if cctx.Bool("pretty") {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

func configLogger(cctx *cli.Context, writer io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cctx.String("log-level")) {
	case "error":
		level = slog.LevelError
	case "warn":
		level = slog.LevelWarn
	case "info":
		level = slog.LevelInfo
	case "debug":
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}
