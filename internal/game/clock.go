package game

// Clock counts elapsed beats. It only moves forward between resets.
type Clock struct {
	beat int
}

func (c *Clock) Beat() int {
	return c.beat
}

// Advance moves the clock one beat forward and returns the new beat.
func (c *Clock) Advance() int {
	c.beat++
	return c.beat
}

func (c *Clock) Reset() {
	c.beat = 0
}
