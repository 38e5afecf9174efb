package fontpref

// InspectOptions holds configuration for font inspection.
type InspectOptions struct {
	// Fall back to a name derived from the file name when the family name
	// cannot be read from the font.
	fallback bool
}

// defaultOptions returns the default inspection options.
func defaultOptions() InspectOptions {
	return InspectOptions{
		fallback: true,
	}
}

// clone creates a copy of InspectOptions.
func (o InspectOptions) clone() InspectOptions {
	return InspectOptions{
		fallback: o.fallback,
	}
}
