// Package refnbr mints human-readable loan reference numbers such as CTU-7K2Q9B.
package refnbr

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	Prefix   = "CTU-"
	Length   = 6
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	defaultMaxAttempts = 10
)

// ErrExhausted is returned when no unused reference could be found within the retry budget.
var ErrExhausted = errors.New("reference number retry budget exhausted")

// Checker reports whether a reference number is already persisted.
type Checker interface {
	RefNumberExists(ctx context.Context, refNbr string) (bool, error)
}

// Allocator generates reference numbers that are unique against a Checker.
type Allocator struct {
	Checker     Checker
	MaxAttempts int
	// Source returns random bytes. Defaults to the random half of a v4 UUID.
	Source func() []byte
}

// NewAllocator creates an Allocator backed by the given Checker.
func NewAllocator(checker Checker) *Allocator {
	return &Allocator{Checker: checker, MaxAttempts: defaultMaxAttempts}
}

// Allocate returns a reference number that no persisted loan uses yet.
// The check is advisory; stores reject duplicates on write as well.
func (a *Allocator) Allocate(ctx context.Context) (string, error) {
	attempts := a.MaxAttempts
	if attempts <= 0 {
		attempts = defaultMaxAttempts
	}

	for i := 0; i < attempts; i++ {
		candidate := a.Generate()

		exists, err := a.Checker.RefNumberExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check reference number %s: %w", candidate, err)
		}
		if !exists {
			return candidate, nil
		}
	}

	return "", ErrExhausted
}

// Generate returns a random reference number without checking for collisions.
func (a *Allocator) Generate() string {
	source := a.Source
	if source == nil {
		source = uuidBytes
	}

	var b strings.Builder
	b.Grow(len(Prefix) + Length)
	b.WriteString(Prefix)

	n := 0
	for n < Length {
		for _, r := range source() {
			// Reject the top of the byte range so every symbol is equally likely.
			if int(r) >= 256-256%len(Alphabet) {
				continue
			}
			b.WriteByte(Alphabet[int(r)%len(Alphabet)])
			n++
			if n == Length {
				break
			}
		}
	}

	return b.String()
}

// Valid reports whether s has the shape of a reference number.
func Valid(s string) bool {
	if len(s) != len(Prefix)+Length || !strings.HasPrefix(s, Prefix) {
		return false
	}
	for _, c := range s[len(Prefix):] {
		if !strings.ContainsRune(Alphabet, c) {
			return false
		}
	}
	return true
}

func uuidBytes() []byte {
	id := uuid.New()
	return id[:]
}
