package mines

import (
	"hash/maphash"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

// Log receives debug traces of board population and game transitions.
var Log = logrus.New()

// NewRand returns a source seeded from the runtime's random hash seeds.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}
