package game

type Judgement struct {
	Name   string
	Points int
}

// Indices into Judgements
const (
	Perfect = iota
	Great
	Good
	Repeat
	Miss
)

var Judgements = []Judgement{
	{Name: "Perfect", Points: 3},
	{Name: "Great", Points: 2},
	{Name: "Good", Points: 1},
	{Name: "Repeat", Points: -1},
	{Name: "Miss", Points: -1},
}

// ForDistance picks the hit judgement for a note the given number of
// columns away from the centre of the scoring region.
func ForDistance(distance int) int {
	if distance < 0 {
		distance = -distance
	}
	switch distance {
	case 0:
		return Perfect
	case 1:
		return Great
	}
	return Good
}

func IsHit(judgement int) bool {
	return judgement >= Perfect && judgement <= Good
}
