// Package docgen generates the AsciiDoc reference of documented span tags and events from
// Go sources.
//
// The generator walks a source tree and recognizes exactly one shape: an enumerated type
// that declares a descriptor capability and returns one string literal per variant.
//
//	// HTTPTags are the tags of HTTP client spans.
//	type HTTPTags int
//
//	var _ spanschema.TagKey = HTTPTags(0)
//
//	const (
//		// HTTP method of the request.
//		HTTPMethod HTTPTags = iota
//		// Resolved host of the request.
//		HTTPHost
//	)
//
//	func (t HTTPTags) Key() string {
//		switch t {
//		case HTTPMethod:
//			return "http.method"
//		case HTTPHost:
//			return "http.host"
//		}
//		return ""
//	}
//
// Recognition steps, each of which skips the file when it does not apply:
//
//   - the first type declared in the file is the primary type;
//   - it must be a named basic type with typed constants (the variants);
//   - it must declare the capability with a blank assignment "var _ <pkg>.TagKey = ...";
//   - it must have at least one variant.
//
// For every variant the case clause listing it in the switch that opens the capability
// method must start with "return <string literal>". When that is not the case the variant
// is still documented, with an empty name, and a warning is logged. The doc comment of the
// constant becomes the description.
//
// Entries are sorted by name and written as
//
//	.Span Tags
//	|===
//	|Name | Description
//	|http.host|Resolved host of the request.
//	|http.method|HTTP method of the request.
//	|===
//
// Files that cannot be read abort the run with an *ExtractionError. Everything else that
// does not fit the shape is skipped, so the document always covers what could be parsed.
package docgen
