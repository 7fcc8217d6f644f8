package instrument

// Color is an enum that is not a tag key.
type Color int

const (
	// red
	Red Color = iota
	// green
	Green
)

func (c Color) Key() string {
	switch c {
	case Red:
		return "color.red"
	}
	return "color.green"
}
