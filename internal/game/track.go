package game

// NLanes is the number of parallel note paths, one per player input.
const NLanes = 4

// Step is the set of lanes holding a note at one slot of the track.
// Only the low nibble carries lane data.
type Step uint8

func (s Step) Has(lane uint8) bool {
	return lane < NLanes && s&(1<<lane) != 0
}

// Lanes returns the lanes present in this step, lowest first.
func (s Step) Lanes() []uint8 {
	lanes := make([]uint8, 0, NLanes)
	for lane := uint8(0); lane < NLanes; lane++ {
		if s.Has(lane) {
			lanes = append(lanes, lane)
		}
	}
	return lanes
}

// Track is the ordered sequence of steps that makes up the music.
// It is never modified once built.
type Track struct {
	steps []Step
}

func NewTrack(steps []Step) Track {
	s := make([]Step, len(steps))
	copy(s, steps)
	return Track{steps: s}
}

func (t Track) Len() int {
	return len(t.steps)
}

func (t Track) Step(index int) Step {
	if index < 0 || index >= len(t.steps) {
		return 0
	}
	return t.steps[index]
}

func (t Track) Has(index int, lane uint8) bool {
	return t.Step(index).Has(lane)
}

// NoteCount is the number of (step, lane) notes in the track
func (t Track) NoteCount() int {
	count := 0
	for _, s := range t.steps {
		count += len(s.Lanes())
	}
	return count
}

// Duration is the number of beats until the last step has scrolled away.
func (t Track) Duration(period int) int {
	return len(t.steps) * period
}

func DefaultTrack() Track {
	return NewTrack(defaultSteps[:])
}

var defaultSteps = [...]Step{0x00,
	0x00, 0x00, 0x08, 0x08, 0x08, 0x80, 0x04, 0x02,
	0x04, 0x40, 0x08, 0x80, 0x00, 0x00, 0x04, 0x02,
	0x04, 0x40, 0x08, 0x04, 0x40, 0x02, 0x20, 0x01,
	0x10, 0x10, 0x10, 0x10, 0x00, 0x00, 0x02, 0x20,
	0x04, 0x40, 0x08, 0x80, 0x04, 0x40, 0x02, 0x20,
	0x04, 0x40, 0x08, 0x04, 0x40, 0x40, 0x02, 0x20,
	0x04, 0x40, 0x08, 0x04, 0x40, 0x02, 0x20, 0x01,
	0x10, 0x10, 0x10, 0x10, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x08, 0x08, 0x08, 0x80, 0x04, 0x02,
	0x04, 0x40, 0x02, 0x08, 0x80, 0x00, 0x02, 0x01,
	0x04, 0x40, 0x08, 0x80, 0x04, 0x02, 0x20, 0x01,
	0x10, 0x10, 0x12, 0x20, 0x00, 0x00, 0x02, 0x20,
	0x04, 0x40, 0x08, 0x04, 0x40, 0x40, 0x02, 0x20,
	0x04, 0x40, 0x08, 0x04, 0x40, 0x40, 0x02, 0x20,
	0x04, 0x40, 0x08, 0x04, 0x40, 0x40, 0x02, 0x20,
	0x01, 0x10, 0x10, 0x10, 0x00, 0x00, 0x00, 0x00}
