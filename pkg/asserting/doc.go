// Package asserting wraps spans and span customizers so that every name, tag and event
// mutation is checked against a spanschema.Schema before it reaches the wrapped span.
//
// A rejected mutation returns the *assertion.ViolationError and leaves the wrapped span
// untouched. Lifecycle calls (Start, End, Abandon, Error, RemoteServiceName) and read-only
// queries are forwarded without any check.
//
//	ctx, otelSpan := tracerClient.StartSpan(ctx, "GET /orders")
//	span := asserting.NewSpan(checker, HTTPServerSpan, otelSpan)
//	defer span.End()
//
//	if err := span.TagKey(HTTPMethod, "GET"); err != nil {
//		return err
//	}
package asserting
