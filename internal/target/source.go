package target

// Source resolves the Location for one invocation.
type Source interface {
	Resolve() (Location, error)
	// Describe names the source for log lines.
	Describe() string
}

// Fixed is a Source for a bucket and key given directly.
type Fixed struct {
	Location Location
}

// Resolve implements Source.
func (f Fixed) Resolve() (Location, error) {
	return f.Location, nil
}

// Describe implements Source.
func (f Fixed) Describe() string {
	return "explicit bucket and key"
}

// URI is a Source parsed from an s3:// URI.
type URI struct {
	Raw string
}

// Resolve implements Source.
func (u URI) Resolve() (Location, error) {
	return ParseURI(u.Raw)
}

// Describe implements Source.
func (u URI) Describe() string {
	return "s3uri " + u.Raw
}
