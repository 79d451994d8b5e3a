package strbuilder

import "github.com/rs/zerolog"

// Stats is a snapshot of a builder's diagnostics.
type Stats struct {
	Len      int
	Cap      int
	Reallocs int
}

// Stats returns the current length, capacity and reallocation count.
func (b *Builder) Stats() Stats {
	return Stats{Len: b.n, Cap: len(b.buf), Reallocs: b.reallocs}
}

// MarshalZerologObject writes the stats as zerolog fields.
func (s Stats) MarshalZerologObject(e *zerolog.Event) {
	e.Int("len", s.Len).Int("cap", s.Cap).Int("reallocs", s.Reallocs)
}
