package input

import "github.com/Faultbox/vectorviewer/internal/viewer"

// Script replays a fixed list of signal batches, one batch per poll, and
// returns nothing once exhausted. Headless runs use it in place of SDL.
type Script struct {
	batches [][]viewer.Signal
}

// NewScript creates a scripted input.
func NewScript(batches ...[]viewer.Signal) *Script {
	return &Script{batches: batches}
}

// Poll returns the next batch.
func (s *Script) Poll() []viewer.Signal {
	if len(s.batches) == 0 {
		return nil
	}
	b := s.batches[0]
	s.batches = s.batches[1:]
	return b
}
