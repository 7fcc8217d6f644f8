package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Aleph-Alpha/spandocs/pkg/docgen"
	"github.com/Aleph-Alpha/spandocs/pkg/minio"
	"github.com/spf13/cobra"
)

// Logger is the logging surface shared by the generator and the publisher.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

type publisher interface {
	PublishFile(ctx context.Context, filePath string) (string, error)
}

type lookupEnvFunc func(key string) (string, bool)

// targets are generated in this order.
var targets = []docgen.Target{docgen.TagKeyTarget, docgen.EventTarget}

type runner struct {
	log          Logger
	lookupEnv    lookupEnvFunc
	newPublisher func(cfg minio.Config, log minio.Logger) (publisher, error)
}

func newRootCmd(log Logger, lookupEnv lookupEnvFunc) *cobra.Command {
	r := &runner{
		log:       log,
		lookupEnv: lookupEnv,
		newPublisher: func(cfg minio.Config, log minio.Logger) (publisher, error) {
			return minio.NewClient(cfg, log)
		},
	}
	return r.command()
}

func (r *runner) command() *cobra.Command {
	return &cobra.Command{
		Use:           "spandocs <project-root> <inclusion-pattern> <output-dir>",
		Short:         "Generate AsciiDoc tables of span tag keys and events",
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd.Context(), docgen.Config{
				ProjectRoot:      args[0],
				InclusionPattern: args[1],
				OutputDir:        args[2],
			})
		},
	}
}

func (r *runner) run(ctx context.Context, cfg docgen.Config) error {
	paths := make([]string, 0, len(targets))
	for _, target := range targets {
		gen, err := docgen.NewGenerator(cfg, target, r.log)
		if err != nil {
			return err
		}
		result, err := gen.Generate()
		if err != nil {
			return fmt.Errorf("generate %s: %w", target.FileName, err)
		}
		paths = append(paths, result.Path)
	}

	minioCfg, ok, err := minioConfigFromEnv(r.lookupEnv)
	if err != nil || !ok {
		return err
	}

	pub, err := r.newPublisher(minioCfg, r.log)
	if err != nil {
		return fmt.Errorf("connect to minio: %w", err)
	}
	for _, path := range paths {
		key, err := pub.PublishFile(ctx, path)
		if err != nil {
			return fmt.Errorf("publish %s: %w", path, err)
		}
		r.log.Info("span documentation published", nil, map[string]interface{}{
			"bucket": minioCfg.Connection.BucketName,
			"key":    key,
		})
	}
	return nil
}

// minioConfigFromEnv reads the publisher configuration. ok is false when no endpoint is set.
func minioConfigFromEnv(lookupEnv lookupEnvFunc) (cfg minio.Config, ok bool, err error) {
	endpoint, ok := lookupEnv("SPANDOCS_MINIO_ENDPOINT")
	if !ok || endpoint == "" {
		return minio.Config{}, false, nil
	}

	get := func(key string) string {
		v, _ := lookupEnv(key)
		return v
	}

	cfg = minio.Config{
		Connection: minio.ConnectionConfig{
			Endpoint:        endpoint,
			AccessKeyID:     get("SPANDOCS_MINIO_ACCESS_KEY_ID"),
			SecretAccessKey: get("SPANDOCS_MINIO_SECRET_ACCESS_KEY"),
			BucketName:      get("SPANDOCS_MINIO_BUCKET"),
			Region:          get("SPANDOCS_MINIO_REGION"),
		},
		Prefix: get("SPANDOCS_MINIO_PREFIX"),
	}
	if v := get("SPANDOCS_MINIO_USE_SSL"); v != "" {
		cfg.Connection.UseSSL, err = strconv.ParseBool(v)
		if err != nil {
			return minio.Config{}, false, fmt.Errorf("SPANDOCS_MINIO_USE_SSL: %w", err)
		}
	}
	return cfg, true, nil
}
