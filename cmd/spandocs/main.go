// Command spandocs generates AsciiDoc tables of the span tag keys and events declared in a
// Go project.
//
// Usage:
//
//	spandocs <project-root> <inclusion-pattern> <output-dir>
//
// The inclusion pattern is a regular expression matched against the whole slash-separated
// path of every file below the project root. The command writes _tags.adoc and
// _events.adoc into the output directory. When SPANDOCS_MINIO_ENDPOINT is set, both files
// are also uploaded to the configured MinIO bucket.
package main

import (
	"fmt"
	"os"

	"github.com/Aleph-Alpha/spandocs/pkg/logger"
)

func main() {
	level, ok := os.LookupEnv("ZAP_LOGGER_LEVEL")
	if !ok {
		level = logger.Info
	}
	log := logger.NewLoggerClient(logger.Config{
		Level:       level,
		ServiceName: "spandocs",
		Encoding:    "console",
	})

	err := newRootCmd(log, os.LookupEnv).Execute()
	_ = log.Zap.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
