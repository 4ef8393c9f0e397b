package utils

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20"
)

// ErrEmptySeed is returned by NewSeededReader for a zero-length seed.
var ErrEmptySeed = errors.New("seed must not be empty")

type seededReader struct {
	stream *chacha20.Cipher
}

// NewSeededReader returns an endless, deterministic byte stream derived from seed:
// the ChaCha20 keystream under key SHA3-256(seed) and an all-zero nonce.
// The same seed always yields the same bytes, which makes it useful for
// reproducible tests and fixtures. It must never stand in for crypto/rand
// when splitting real secrets.
func NewSeededReader(seed []byte) (io.Reader, error) {
	if len(seed) == 0 {
		return nil, ErrEmptySeed
	}
	key, err := Sha3Hash(seed)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, chacha20.NonceSize)
	stream, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		return nil, fmt.Errorf("failed to create keystream: %w", err)
	}
	return &seededReader{stream: stream}, nil
}

func (r *seededReader) Read(p []byte) (int, error) {
	clear(p)
	r.stream.XORKeyStream(p, p)
	return len(p), nil
}
