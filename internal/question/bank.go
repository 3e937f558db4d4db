package question

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
)

var ErrInsufficientBank = errors.New("question bank has fewer questions than required")

type Bank struct {
	mu        sync.Mutex
	rng       *rand.Rand
	questions []Question
}

func NewBank(questions []Question, rng *rand.Rand) *Bank {
	if rng == nil {
		rng = NewRand()
	}
	return &Bank{
		rng:       rng,
		questions: append([]Question(nil), questions...),
	}
}

// NewSeededRand gives a reproducible source, mainly for tests.
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewRand seeds from crypto/rand, falling back to the runtime source.
func NewRand() *rand.Rand {
	var b [16]byte
	if _, err := crand.Read(b[:]); err != nil {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(binary.LittleEndian.Uint64(b[:8]), binary.LittleEndian.Uint64(b[8:])))
}

func (b *Bank) Len() int {
	return len(b.questions)
}

// Sample draws n distinct questions uniformly without replacement and tags
// each with its position in the returned slice.
func (b *Bank) Sample(n int) ([]Question, error) {
	if n <= 0 {
		return []Question{}, nil
	}
	if n > len(b.questions) {
		return nil, fmt.Errorf("%w: need %d, have %d", ErrInsufficientBank, n, len(b.questions))
	}

	perm := make([]int, len(b.questions))
	for i := range perm {
		perm[i] = i
	}

	b.mu.Lock()
	for i := 0; i < n; i++ {
		j := i + b.rng.IntN(len(perm)-i)
		perm[i], perm[j] = perm[j], perm[i]
	}
	b.mu.Unlock()

	out := make([]Question, n)
	for i := 0; i < n; i++ {
		q := b.questions[perm[i]]
		q.Choices = append([]string(nil), q.Choices...)
		q.Index = i
		out[i] = q
	}
	return out, nil
}
