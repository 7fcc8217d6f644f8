package docgen

import (
	"bytes"
	"sort"
	"strings"
)

const tableDelimiter = "|==="

// Entry is one documented name and its description.
type Entry struct {
	Name        string
	Description string
}

// cellEscaper keeps cell text from being read as a column separator.
var cellEscaper = strings.NewReplacer("|", `\|`)

// String renders the entry as a table row. A "|" inside a cell is written as "\|".
func (e Entry) String() string {
	return "|" + cellEscaper.Replace(e.Name) + "|" + cellEscaper.Replace(e.Description)
}

// SortEntries orders entries by name, keeping the discovery order of equal names.
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
}

// Render writes entries as an AsciiDoc table captioned with title.
func Render(title string, entries []Entry) []byte {
	var b bytes.Buffer
	b.WriteString("." + title + "\n")
	b.WriteString(tableDelimiter + "\n")
	b.WriteString("|Name | Description\n")
	for _, e := range entries {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	b.WriteString(tableDelimiter + "\n")
	return b.Bytes()
}
