package generation

// MapGenerator produces the static layout of a tilemap. Generators are pure:
// the same generator always returns the same Layout.
type MapGenerator interface {
	Generate() Layout
}
