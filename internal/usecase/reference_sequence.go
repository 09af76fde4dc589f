package usecase

import (
	"encoding/binary"
	"math/rand"
	"sync/atomic"

	"freight_quote/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// RandomSequence draws a random suffix. References are locally probably unique,
// not guaranteed unique.
type RandomSequence struct{}

func (RandomSequence) Next() int {
	return rand.Intn(1000)
}

// CounterSequence hands out suffixes in order, wrapping after 999.
type CounterSequence struct {
	n atomic.Uint64
}

func NewCounterSequence(start int) *CounterSequence {
	s := &CounterSequence{}
	if start > 0 {
		s.n.Store(uint64(start))
	}
	return s
}

func (s *CounterSequence) Next() int {
	return int((s.n.Add(1) - 1) % 1000)
}

// UUIDSequence takes the suffix from a fresh UUIDv4.
type UUIDSequence struct{}

func (UUIDSequence) Next() int {
	id := uuid.New()
	return int(binary.BigEndian.Uint64(id[8:]) % 1000)
}

var (
	_ interfaces.IReferenceSequence = RandomSequence{}
	_ interfaces.IReferenceSequence = (*CounterSequence)(nil)
	_ interfaces.IReferenceSequence = UUIDSequence{}
)

// NewReferenceSequence resolves a sequence by name ("random", "counter", "uuid").
func NewReferenceSequence(kind string) interfaces.IReferenceSequence {
	switch kind {
	case "counter":
		return NewCounterSequence(0)
	case "uuid":
		return UUIDSequence{}
	default:
		return RandomSequence{}
	}
}
