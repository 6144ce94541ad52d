// Package confirmation issues the short codes staff check at the meetup.
package confirmation

import (
	"crypto/rand"
	"fmt"
	"io"
)

// Alphabet leaves out 0, O, 1 and I.
const (
	Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	Length   = 6
)

type Generator struct {
	rand io.Reader
}

func NewGenerator() *Generator {
	return &Generator{rand: rand.Reader}
}

// Generate returns a random code. Uniqueness is checked by the store.
func (g *Generator) Generate() (string, error) {
	buf := make([]byte, Length)
	out := make([]byte, Length)
	// 256 % 32 == 0, so byte%32 is uniform over the alphabet
	if _, err := io.ReadFull(g.rand, buf); err != nil {
		return "", fmt.Errorf("read random: %w", err)
	}
	for i, b := range buf {
		out[i] = Alphabet[int(b)%len(Alphabet)]
	}
	return string(out), nil
}

// Valid reports whether code has the issued shape.
func Valid(code string) bool {
	if len(code) != Length {
		return false
	}
	for i := 0; i < len(code); i++ {
		if !inAlphabet(code[i]) {
			return false
		}
	}
	return true
}

func inAlphabet(c byte) bool {
	for i := 0; i < len(Alphabet); i++ {
		if Alphabet[i] == c {
			return true
		}
	}
	return false
}
