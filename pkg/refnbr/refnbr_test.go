package refnbr

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChecker struct {
	taken map[string]bool
	calls int
	err   error
}

func (f *fakeChecker) RefNumberExists(_ context.Context, refNbr string) (bool, error) {
	f.calls++
	if f.err != nil {
		return false, f.err
	}
	return f.taken[refNbr], nil
}

// sequence feeds the allocator a fixed list of byte slices, one per call.
func sequence(chunks ...[]byte) func() []byte {
	i := 0
	return func() []byte {
		c := chunks[i%len(chunks)]
		i++
		return c
	}
}

func TestGenerate(t *testing.T) {
	a := &Allocator{}

	for i := 0; i < 200; i++ {
		ref := a.Generate()
		assert.True(t, Valid(ref), "unexpected shape %q", ref)
	}
}

func TestGenerateRejectsBiasedBytes(t *testing.T) {
	a := &Allocator{Source: sequence([]byte{255, 0, 1, 2, 253, 3, 4, 5})}

	assert.Equal(t, "CTU-ABCDEF", a.Generate())
}

func TestAllocate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		checker := &fakeChecker{taken: map[string]bool{}}
		a := NewAllocator(checker)

		ref, err := a.Allocate(context.Background())

		require.NoError(t, err)
		assert.True(t, Valid(ref))
		assert.Equal(t, 1, checker.calls)
	})

	t.Run("Retries On Collision", func(t *testing.T) {
		checker := &fakeChecker{taken: map[string]bool{"CTU-AAAAAA": true}}
		a := NewAllocator(checker)
		a.Source = sequence([]byte{0, 0, 0, 0, 0, 0}, []byte{1, 1, 1, 1, 1, 1})

		ref, err := a.Allocate(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "CTU-BBBBBB", ref)
		assert.Equal(t, 2, checker.calls)
	})

	t.Run("Budget Exhausted", func(t *testing.T) {
		checker := &fakeChecker{taken: map[string]bool{"CTU-AAAAAA": true}}
		a := &Allocator{Checker: checker, MaxAttempts: 3, Source: sequence([]byte{0, 0, 0, 0, 0, 0})}

		_, err := a.Allocate(context.Background())

		assert.ErrorIs(t, err, ErrExhausted)
		assert.Equal(t, 3, checker.calls)
	})

	t.Run("Checker Error", func(t *testing.T) {
		checker := &fakeChecker{err: errors.New("table unavailable")}
		a := NewAllocator(checker)

		_, err := a.Allocate(context.Background())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to check reference number")
	})
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("CTU-0A9Z12"))
	assert.False(t, Valid("CTU-0a9z12"))
	assert.False(t, Valid("CTU-12345"))
	assert.False(t, Valid("ABC-123456"))
}
