// Package identifier generates the public keys of stored books.
package identifier

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	// Length is the number of characters in every generated ID.
	Length = 8

	// Alphabet is URL safe so IDs can be used as path segments unescaped.
	Alphabet = "_-0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Generator returns a new random ID.
type Generator func() (string, error)

// New returns a random ID of Length characters taken from Alphabet.
func New() (string, error) {
	return gonanoid.Generate(Alphabet, Length)
}
