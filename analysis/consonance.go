package analysis

import (
	"github.com/jsphweid/bach/model"
	"github.com/jsphweid/bach/note"
	"github.com/jsphweid/bach/sequence"
	"github.com/jsphweid/bach/util"
	"github.com/pkg/errors"
)

// searchMargin widens the subharmonic window beyond the span of the notes.
const searchMargin = 20

func subharmonicKeys(n note.Note, depth int) []int {
	keys := make([]int, depth)
	for i := range keys {
		// index is always positive here
		sub, _ := n.Subharmonic(i + 1)
		keys[i] = sub.Key()
	}
	return keys
}

func contains(keys []int, key int) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}

// Consonance returns the key of the lowest-index subharmonic of the first
// note that also appears among the subharmonics of every other note. The
// window is the key span of the notes plus a fixed margin; the smaller the
// index at which a coincidence is found, the more consonant the notes.
func Consonance(s sequence.Sequence) (int, error) {
	if s.Len() == 0 {
		return 0, errors.WithStack(model.ErrEmptySequence)
	}
	keys := s.Keys()
	depth := util.Max(keys...) - util.Min(keys...) + searchMargin

	subs := make([][]int, s.Len())
	for i, n := range s.Notes() {
		subs[i] = subharmonicKeys(n, depth)
	}

	for _, current := range subs[0] {
		shared := true
		for _, other := range subs[1:] {
			if !contains(other, current) {
				shared = false
				break
			}
		}
		if shared {
			return current, nil
		}
	}
	return 0, errors.Wrapf(model.ErrNoConsonanceFound, "%v within %d subharmonics", s.Names(), depth)
}
