package docgen

import (
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recognizeSource(t *testing.T, src string) (recognition, error) {
	t.Helper()
	file, err := parser.ParseFile(token.NewFileSet(), "src.go", src, parser.ParseComments)
	require.NoError(t, err)
	return recognize(file, TagKeyTarget)
}

func TestRecognizeSkipReasons(t *testing.T) {
	cases := map[string]struct {
		src  string
		want error
	}{
		"no type": {
			src:  "package p\n\nfunc f() {}\n",
			want: errNoPrimaryType,
		},
		"struct": {
			src:  "package p\n\ntype S struct{}\n\nvar _ TagKey = S{}\n",
			want: errNotEnum,
		},
		"alias": {
			src:  "package p\n\ntype S = int\n",
			want: errNotEnum,
		},
		"other interface": {
			src:  "package p\n\ntype E int\n\nvar _ fmt.Stringer = E(0)\n\nconst A E = 1\n",
			want: errNoCapability,
		},
		"empty": {
			src:  "package p\n\ntype E int\n\nvar _ TagKey = E(0)\n",
			want: errNoVariants,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := recognizeSource(t, tc.src)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRecognizeUsesFirstTypeOnly(t *testing.T) {
	src := `package p

type Helper struct{}

type E int

var _ TagKey = E(0)

const A E = 0
`
	_, err := recognizeSource(t, src)
	assert.ErrorIs(t, err, errNotEnum)
}

func TestRecognizeVariantsAndDocs(t *testing.T) {
	src := `package p

type E string

var _ spanschema.TagKey = E("")

// Single declaration doc.
const Solo E = "solo"

const (
	First E = "first" // trailing comment
	_
	// Multi line
	// doc comment.
	Second
	Untyped = 3
	NotAVariant
)

func (e *E) Key() string {
	switch *e {
	case First, Second:
		return "shared"
	case Solo:
		return "solo.key"
	}
	return ""
}
`
	rec, err := recognizeSource(t, src)
	require.NoError(t, err)
	assert.Equal(t, "E", rec.typeName)
	assert.Empty(t, rec.warnings)
	assert.Equal(t, []Entry{
		{Name: "solo.key", Description: "Single declaration doc."},
		{Name: "shared", Description: "trailing comment"},
		{Name: "shared", Description: "Multi line doc comment."},
	}, rec.entries)
}

func TestRecognizeMethodWithoutSwitch(t *testing.T) {
	src := `package p

type E int

var _ TagKey = A

const (
	A E = iota
	B
)

func (e E) Key() string {
	return "always"
}
`
	rec, err := recognizeSource(t, src)
	require.NoError(t, err)
	assert.Equal(t, []Entry{{Name: ""}, {Name: ""}}, rec.entries)
	require.NotEmpty(t, rec.warnings)
	assert.Contains(t, rec.warnings[0], "does not start with a switch")
}

func TestRecognizeSingleVariantDirectReturn(t *testing.T) {
	src := `package p

type E int

var _ TagKey = Only

// Only is the one key.
const Only E = 0

func (E) Key() string {
	return "only.key"
}
`
	rec, err := recognizeSource(t, src)
	require.NoError(t, err)
	assert.Equal(t, []Entry{{Name: "only.key", Description: "Only is the one key."}}, rec.entries)
	assert.Empty(t, rec.warnings)
}

func TestRecognizeMissingMethod(t *testing.T) {
	src := `package p

type E int

var _ TagKey = E(0)

const A E = 0
`
	rec, err := recognizeSource(t, src)
	require.NoError(t, err)
	assert.Equal(t, []Entry{{Name: ""}}, rec.entries)
	assert.Contains(t, rec.warnings[0], "has no Key method")
}
