package roomcode

import (
	"crypto/rand"
	"fmt"
	"strings"
)

// Room codes are short, human-typable identifiers. The alphabet drops
// the lookalikes 0/O and 1/I so codes survive being read aloud.
const (
	alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	Length   = 6
)

// RandSource interface for dependency injection of randomness
type RandSource interface {
	IntN(n int) int
}

// Generator produces room codes with configurable randomness
type Generator struct {
	randSource RandSource
}

// NewGenerator creates a generator. A nil RandSource uses crypto/rand.
func NewGenerator(randSource RandSource) *Generator {
	return &Generator{randSource: randSource}
}

// Generate creates a new room code using crypto/rand
func Generate() string {
	return NewGenerator(nil).Generate()
}

// Generate creates a new room code using the generator's RandSource
func (g *Generator) Generate() string {
	code := make([]byte, Length)

	if g.randSource != nil {
		for i := range code {
			code[i] = alphabet[g.randSource.IntN(len(alphabet))]
		}
		return string(code)
	}

	buf := make([]byte, Length)
	if _, err := rand.Read(buf); err != nil {
		panic("failed to generate random bytes: " + err.Error())
	}
	for i := range code {
		code[i] = alphabet[int(buf[i])%len(alphabet)]
	}
	return string(code)
}

// Validate checks that a room code has the right length and alphabet
func Validate(code string) error {
	if len(code) != Length {
		return fmt.Errorf("room code must be exactly %d characters, got %d", Length, len(code))
	}
	for i, char := range code {
		if !strings.ContainsRune(alphabet, char) {
			return fmt.Errorf("invalid character %c at position %d", char, i)
		}
	}
	return nil
}

// Normalize uppercases a user-supplied code for lookup
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
