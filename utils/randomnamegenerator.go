package utils

import (
	"math/rand"
	"sync"

	"github.com/Pallinder/go-randomdata"
)

// RandomNameGenerator hands out display names that never repeat
// within one generator.
type RandomNameGenerator struct {
	lock sync.Mutex
	used map[string]struct{}
}

// Seed makes the sequence reproducible, used by tests
func (rng *RandomNameGenerator) Seed(seed int64) {
	rng.lock.Lock()
	defer rng.lock.Unlock()
	randomdata.CustomRand(rand.New(rand.NewSource(seed)))
}

func (rng *RandomNameGenerator) RandomName() string {
	rng.lock.Lock()
	defer rng.lock.Unlock()
	if rng.used == nil {
		rng.used = make(map[string]struct{})
	}
	for {
		name := randomdata.SillyName()
		// avoid duplicate names
		if _, exists := rng.used[name]; !exists {
			rng.used[name] = struct{}{}
			return name
		}
	}
}
