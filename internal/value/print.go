package value

// PrintMode selects between the readable form (re-readable by the reader)
// and the display form (human-facing, e.g. str/println).
type PrintMode int

const (
	ModeReadable PrintMode = iota
	ModeDisplay
)
