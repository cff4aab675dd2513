package pkguid

// StringID generates unique string identifiers.
type StringID interface {
	// Generate generates a unique identifier as a string.
	Generate() string
}

// Func adapts a plain function to StringID.
type Func func() string

// Generate calls f.
func (f Func) Generate() string {
	return f()
}
