package phraser

import (
	"fmt"
	"math/rand"
)

// Phraser cycles through a set of format phrases. The first phrase is
// always returned first; after that the remaining phrases repeat in
// shuffled batches so no phrase comes up twice before the whole set has
// been used.
//
// Usage:
//
//	phraser := phraser.New([]string{
//		"That didn't parse: %s",
//		"Still not an expression: %s",
//		"The parser disagrees: %s",
//	})
//
//	for eachError {
//		fmt.Println(phraser.Get(err))
//	}
type Phraser struct {
	opening   string
	rotation  []string
	remaining []string
}

// New creates a new Phraser with the given phrases.
func New(phrases []string) *Phraser {
	if len(phrases) == 0 {
		return &Phraser{}
	}
	if len(phrases) == 1 {
		// nothing to rotate, always hand out the only phrase
		return &Phraser{rotation: phrases}
	}

	return &Phraser{
		opening:  phrases[0],
		rotation: phrases[1:],
	}
}

// Get returns the next phrase formatted with formatArgs.
func (p *Phraser) Get(formatArgs ...any) string {
	return fmt.Sprintf(p.next(), formatArgs...)
}

func (p *Phraser) next() string {
	if p.opening != "" {
		phrase := p.opening
		p.opening = ""
		return phrase
	}

	if len(p.rotation) == 0 {
		return ""
	}

	if len(p.remaining) == 0 {
		// the current batch ran out, draw a freshly shuffled one
		p.remaining = make([]string, len(p.rotation))
		copy(p.remaining, p.rotation)
		rand.Shuffle(len(p.remaining), func(i, j int) {
			p.remaining[i], p.remaining[j] = p.remaining[j], p.remaining[i]
		})
	}

	phrase := p.remaining[0]
	p.remaining = p.remaining[1:]
	return phrase
}
