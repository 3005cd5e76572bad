package testutils

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// TestDataGenerator provides methods to create test data for integration tests
type TestDataGenerator struct {
	faker *gofakeit.Faker
	seed  int64
}

// NewTestDataGenerator creates a new test data generator with optional seed
func NewTestDataGenerator(seed ...int64) *TestDataGenerator {
	var s int64
	if len(seed) > 0 {
		s = seed[0]
	} else {
		s = time.Now().UnixNano()
	}

	return &TestDataGenerator{
		faker: gofakeit.New(uint64(s)),
		seed:  s,
	}
}

// Seed returns the seed, for reproducing a failing run.
func (g *TestDataGenerator) Seed() int64 {
	return g.seed
}

// PlayerName returns a random full name.
func (g *TestDataGenerator) PlayerName() string {
	return g.faker.Name()
}

// PlayerNames returns n random full names. Duplicates are possible.
func (g *TestDataGenerator) PlayerNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = g.PlayerName()
	}
	return names
}
