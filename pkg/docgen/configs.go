package docgen

const (
	// TagsFileName is the file the tag table is written to.
	TagsFileName = "_tags.adoc"

	// EventsFileName is the file the event table is written to.
	EventsFileName = "_events.adoc"

	sourceExtension = ".go"
)

// Config locates the sources to scan and where to write the document.
type Config struct {
	// ProjectRoot is the directory walked recursively.
	ProjectRoot string `yaml:"project_root" envconfig:"SPANDOCS_PROJECT_ROOT"`

	// InclusionPattern is a regular expression that has to match the whole
	// slash-separated path of a file for it to be scanned. Empty includes every file.
	InclusionPattern string `yaml:"inclusion_pattern" envconfig:"SPANDOCS_INCLUSION_PATTERN"`

	// OutputDir receives the generated document. It is created when missing.
	OutputDir string `yaml:"output_dir" envconfig:"SPANDOCS_OUTPUT_DIR"`
}

// Target names the descriptor capability to document.
type Target struct {
	// Interface is the name of the capability interface, without package qualifier.
	Interface string

	// Method is the capability method whose literal results are documented.
	Method string

	// Title is the caption of the generated table.
	Title string

	// FileName is the name of the generated file inside the output directory.
	FileName string
}

var (
	// TagKeyTarget documents spanschema.TagKey enums.
	TagKeyTarget = Target{
		Interface: "TagKey",
		Method:    "Key",
		Title:     "Span Tags",
		FileName:  TagsFileName,
	}

	// EventTarget documents spanschema.EventValue enums.
	EventTarget = Target{
		Interface: "EventValue",
		Method:    "Value",
		Title:     "Span Events",
		FileName:  EventsFileName,
	}
)
