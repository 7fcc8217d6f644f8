// Package kafka publishes span schema violations to a Kafka topic.
//
// The ViolationPublisher is an assertion.Observer. It ignores passing checks and turns
// every violation into a JSON record keyed by the schema name pattern, so all violations
// of one schema land on the same partition. Writes are asynchronous: ObserveCheck never
// waits for the broker, delivery failures are logged.
//
// Example record:
//
//	{
//	  "kind": "tag_key",
//	  "schema": "http.request",
//	  "value": "http.methd",
//	  "descriptor": false,
//	  "allowed": ["http.method", "http.header.%s"],
//	  "observed_at": "2026-01-02T15:04:05Z"
//	}
//
// Usage with fx:
//
//	app := fx.New(
//	    fx.Supply(kafka.Config{Brokers: []string{"localhost:9092"}}),
//	    fx.Provide(fx.Annotate(logger.NewLoggerClient, fx.As(new(kafka.Logger)))),
//	    kafka.FXModule,
//	    assertion.FXModule,
//	)
package kafka
