package malformed

type Broken int

const (
	X Broken = iota
