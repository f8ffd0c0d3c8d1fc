package assign

import (
	"errors"
	"math/rand"
	"time"
)

// maxAttempts bounds the shuffle-and-check loop. A uniform permutation has no
// fixed point with probability approaching 1/e, so hitting the bound is
// effectively impossible; the rotation fallback keeps the worst case correct.
const maxAttempts = 1000

// ErrTooFewParticipants is returned when fewer than two IDs are supplied
var ErrTooFewParticipants = errors.New("need at least 2 participants to generate assignments")

// Generator produces derangements over participant IDs
type Generator struct {
	random *rand.Rand
}

// Config for the assignment generator
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new assignment generator
func New(cfg *Config) *Generator {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Generator{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Generate returns a giver-to-receiver mapping over the given IDs such that
// no ID maps to itself and every ID is received by exactly one giver.
func (g *Generator) Generate(ids []string) (map[string]string, error) {
	n := len(ids)
	if n < 2 {
		return nil, ErrTooFewParticipants
	}

	shuffled := make([]string, n)
	copy(shuffled, ids)

	for attempt := 0; attempt < maxAttempts; attempt++ {
		g.random.Shuffle(n, func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		if !hasFixedPoint(ids, shuffled) {
			return buildMapping(ids, shuffled), nil
		}
	}

	// Rotation is a derangement for any n >= 2
	for i := range ids {
		shuffled[i] = ids[(i+1)%n]
	}

	return buildMapping(ids, shuffled), nil
}

func hasFixedPoint(original, shuffled []string) bool {
	for i := range original {
		if original[i] == shuffled[i] {
			return true
		}
	}
	return false
}

func buildMapping(givers, receivers []string) map[string]string {
	assignments := make(map[string]string, len(givers))
	for i, giver := range givers {
		assignments[giver] = receivers[i]
	}
	return assignments
}
