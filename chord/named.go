package chord

import "github.com/jsphweid/bach/note"

func named(symbol string) func(note.Note, int, string) (note.Note, error) {
	return func(n note.Note, degree int, root string) (note.Note, error) {
		intervals, _ := ChordIntervals(symbol)
		return Step(n, degree, root, intervals)
	}
}

// Shorthands for Step over the built-in chord table. Each is named after its
// table symbol; the intervals follow the table, not textbook spellings.
var (
	Major           = named("Maj")   // 0 4 7
	Minor           = named("m")     // 0 3 7
	Major7          = named("Maj7")  // 0 4 7 10
	Minor7          = named("m7")    // 0 3 7 10
	MinorMajor7     = named("mMaj7") // 0 3 7 11
	Dominant7       = named("7")     // 0 4 7 10
	Diminished      = named("dim")   // 0 3 6
	Augmented       = named("aug")   // 0 4 8
	MinorAugmented7 = named("maug7") // 0 3 7 11
	Diminished7     = named("dim7")  // 0 3 6 10
	MinorMajor6     = named("mM7")   // 0 3 7 9
)
