package assertion

import (
	"regexp"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/Aleph-Alpha/spandocs/pkg/spanschema"
	"golang.org/x/sync/singleflight"
)

// DefaultPatternCache is the process-wide cache used by Matches and by checkers created
// without WithPatternCache.
var DefaultPatternCache = NewPatternCache()

// PatternCache memoizes compiled wildcard patterns keyed by their regular expression source.
//
// Lookups of cached patterns never block. Concurrent misses for the same source are
// collapsed into a single compilation, and exactly one compiled instance is ever published
// per source.
type PatternCache struct {
	patterns sync.Map // map[string]*regexp.Regexp
	group    singleflight.Group
	compiles atomic.Int64
}

// NewPatternCache returns an empty cache.
func NewPatternCache() *PatternCache {
	return &PatternCache{}
}

// Compile returns the compiled expression for source, compiling it on first use.
func (c *PatternCache) Compile(source string) (*regexp.Regexp, error) {
	if re, ok := c.patterns.Load(source); ok {
		return re.(*regexp.Regexp), nil
	}

	v, err, _ := c.group.Do(source, func() (interface{}, error) {
		if re, ok := c.patterns.Load(source); ok {
			return re, nil
		}
		re, err := regexp.Compile(source)
		if err != nil {
			return nil, err
		}
		c.compiles.Add(1)
		actual, _ := c.patterns.LoadOrStore(source, re)
		return actual, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*regexp.Regexp), nil
}

// Compiles returns how many expressions the cache has compiled.
func (c *PatternCache) Compiles() int64 {
	return c.compiles.Load()
}

// Matches reports whether candidate satisfies the allowed template. Templates containing
// the wildcard marker must match the whole candidate, the marker standing for any
// substring. Other templates must be equal to the candidate once "%%" is read as "%".
func (c *PatternCache) Matches(candidate, allowed string) bool {
	segments := spanschema.Segments(allowed)
	if len(segments) == 1 {
		return candidate == segments[0]
	}
	re, err := c.Compile(patternSource(segments))
	if err != nil {
		return false
	}
	return re.MatchString(candidate)
}

// Matches is PatternCache.Matches on DefaultPatternCache.
func Matches(candidate, allowed string) bool {
	return DefaultPatternCache.Matches(candidate, allowed)
}

// PatternSource translates a wildcard template to an anchored regular expression. Literal
// segments are quoted and every marker becomes a non-greedy "any substring".
func PatternSource(template string) string {
	return patternSource(spanschema.Segments(template))
}

func patternSource(parts []string) string {
	var b strings.Builder
	b.WriteString("^(?s:")
	for i, part := range parts {
		if i > 0 {
			b.WriteString(".*?")
		}
		b.WriteString(regexp.QuoteMeta(part))
	}
	b.WriteString(")$")
	return b.String()
}
