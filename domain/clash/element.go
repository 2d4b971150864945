package clash

// Element is derived from a card's suit and decides who eliminates whom.
// Values follow the dominance cycle: each element beats the next one.
type Element uint8

const (
	Fire Element = iota
	Air
	Earth
	Water
)

var elementNames = [4]string{"Fire", "Air", "Earth", "Water"}

func (e Element) String() string {
	if int(e) < len(elementNames) {
		return elementNames[e]
	}
	return "?"
}

// Next returns the element e beats.
func (e Element) Next() Element {
	return (e + 1) % 4
}

// ElementBeats reports whether a dominates b: Fire beats Air, Air beats
// Earth, Earth beats Water and Water beats Fire.
func ElementBeats(a, b Element) bool {
	return a.Next() == b
}

// opposed reports whether a and b sit two steps apart on the cycle, where
// neither dominates the other (Fire/Earth, Air/Water).
func opposed(a, b Element) bool {
	return a != b && (a+2)%4 == b
}
