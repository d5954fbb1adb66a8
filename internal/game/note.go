package game

// Note is one lane of a track step as it appears on the display.
type Note struct {
	Column int   // The display column, 0 is the far left
	Lane   uint8 // The logical lane, bit (1 << Lane) of the step
	Step   int   // Index into the track
}

// Rows returns the two display rows that make up this note.
func (n Note) Rows() (int, int) {
	return 2 * int(n.Lane), 2*int(n.Lane) + 1
}
