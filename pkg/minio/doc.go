// Package minio publishes generated span documentation to a MinIO (or any S3 compatible)
// bucket.
//
// Basic Usage:
//
//	client, err := minio.NewClient(minio.Config{
//		Connection: minio.ConnectionConfig{
//			Endpoint:        "localhost:9000",
//			AccessKeyID:     "minioadmin",
//			SecretAccessKey: "minioadmin",
//			BucketName:      "docs",
//		},
//		Prefix: "spans/",
//	}, log)
//	if err != nil {
//		return err
//	}
//
//	key, err := client.PublishFile(ctx, "docs/_tags.adoc") // "spans/_tags.adoc"
//
// NewClient validates the credentials and creates the bucket when it does not exist.
//
// FX Module Integration:
//
//	app := fx.New(
//		fx.Supply(minioConfig),
//		minio.FXModule,
//	)
package minio
