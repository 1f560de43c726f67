package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto keeps the stored path.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// PrettyOpts configures human-readable diagnostic output.
type PrettyOpts struct {
	Color      bool
	Context    int // code-frame context lines; < 0 disables frames
	PathMode   PathMode
	ShowHints  bool
	ShowFrames bool
}

// DefaultPretty is the CLI's standard pretty configuration.
func DefaultPretty(color bool) PrettyOpts {
	return PrettyOpts{
		Color:      color,
		Context:    2,
		ShowHints:  true,
		ShowFrames: true,
	}
}

// JSONOpts configures machine-readable diagnostic output.
type JSONOpts struct {
	IncludePositions bool
	PathMode         PathMode
	Max              int // 0 = no output truncation
}
