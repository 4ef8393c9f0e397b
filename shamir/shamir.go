// Package shamir implements Shamir's Secret Sharing over GF(2^8).
//
// Every byte of the secret is the constant term of its own random polynomial
// of degree k-1. Share i carries the evaluations of all those polynomials at
// x = i, so any k shares pin down every polynomial and therefore the secret,
// while k-1 shares are uniformly distributed whatever the secret is.
//
// Combine has no way to know the threshold a secret was split with. Handing it
// fewer than k shares, or shares from different splits, yields a wrong secret
// rather than an error. Callers that need to detect this must add their own
// integrity check on top.
package shamir

import (
	"errors"
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/izouxv/goShamir/gf256"
)

const (
	// MinShares is the smallest number of shares Split produces.
	MinShares = 2
	// MaxShares is the largest number of shares Split produces.
	MaxShares = 100
	// MinThreshold is the smallest threshold Split accepts.
	MinThreshold = 2

	// secrets at least this long are evaluated by several goroutines
	parallelThreshold = 64 * 1024
)

var (
	// ErrInvalidParameters is returned by Split for a bad share count or threshold.
	ErrInvalidParameters = errors.New("invalid parameters")
	// ErrInsufficientShares is returned by Combine when no shares are given.
	ErrInsufficientShares = errors.New("insufficient shares")
	// ErrMalformedShares is returned by Combine for structurally inconsistent shares.
	ErrMalformedShares = errors.New("malformed shares")
	// ErrDuplicateShareIndex is returned by Combine when two shares have the same index.
	ErrDuplicateShareIndex = errors.New("duplicate share index")
	// ErrMalformedShare is returned when decoding a share from too few bytes.
	ErrMalformedShare = errors.New("malformed share")
)

// Split takes a secret and splits it into n shares, any k of which reconstruct it.
// The random coefficients are read from rand, which must be a cryptographically
// secure source such as crypto/rand.Reader outside of tests.
func Split(secret []byte, n, k int, rand io.Reader) ([]*Share, error) {
	if n < MinShares || n > MaxShares {
		return nil, fmt.Errorf("%w: share count %d outside [%d, %d]", ErrInvalidParameters, n, MinShares, MaxShares)
	}
	if k < MinThreshold || k > n {
		return nil, fmt.Errorf("%w: threshold %d outside [%d, %d]", ErrInvalidParameters, k, MinThreshold, n)
	}
	if rand == nil {
		return nil, fmt.Errorf("%w: no randomness source", ErrInvalidParameters)
	}

	// Coefficients 1..k-1 of every byte's polynomial, laid out per byte.
	degree := k - 1
	coeffs := make([]byte, len(secret)*degree)
	defer clear(coeffs)
	if _, err := io.ReadFull(rand, coeffs); err != nil {
		return nil, fmt.Errorf("failed to read polynomial coefficients: %w", err)
	}

	shares := make([]*Share, n)
	for i := range shares {
		shares[i] = &Share{
			Index:   uint32(i + 1),
			Payload: make([]byte, len(secret)),
		}
	}

	err := forEachRange(len(secret), func(from, to int) error {
		p := polynomial{coefficients: make([]byte, k)}
		defer p.wipe()
		for j := from; j < to; j++ {
			p.coefficients[0] = secret[j]
			copy(p.coefficients[1:], coeffs[j*degree:(j+1)*degree])
			for _, share := range shares {
				share.Payload[j] = p.evaluate(byte(share.Index))
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return shares, nil
}

// Combine takes a list of shares and reconstructs the secret by Lagrange
// interpolation at x = 0. All given shares take part; see the package
// documentation for what happens when there are fewer than the threshold.
func Combine(shares []*Share) ([]byte, error) {
	if len(shares) == 0 {
		return nil, ErrInsufficientShares
	}

	xs := make([]byte, len(shares))
	seen := make(map[uint32]struct{}, len(shares))
	var size int
	for i, share := range shares {
		if share == nil {
			return nil, fmt.Errorf("%w: share %d is nil", ErrMalformedShares, i)
		}
		if i == 0 {
			size = len(share.Payload)
		} else if len(share.Payload) != size {
			return nil, fmt.Errorf("%w: share %d has %d bytes, expected %d",
				ErrMalformedShares, share.Index, len(share.Payload), size)
		}
		if share.Index == 0 || share.Index > 255 {
			return nil, fmt.Errorf("%w: index %d is not a valid evaluation point", ErrMalformedShares, share.Index)
		}
		if _, ok := seen[share.Index]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateShareIndex, share.Index)
		}
		seen[share.Index] = struct{}{}
		xs[i] = byte(share.Index)
	}

	basis := lagrangeBasisAtZero(xs)
	secret := make([]byte, size)

	err := forEachRange(size, func(from, to int) error {
		for j := from; j < to; j++ {
			var acc byte
			for i, share := range shares {
				acc = gf256.Add(acc, gf256.Mul(share.Payload[j], basis[i]))
			}
			secret[j] = acc
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return secret, nil
}

// forEachRange splits [0, size) into contiguous ranges and calls fn on each,
// returning the first error any call reports. Short inputs run on the
// calling goroutine.
func forEachRange(size int, fn func(from, to int) error) error {
	workers := runtime.GOMAXPROCS(0)
	if size < parallelThreshold || workers < 2 {
		return fn(0, size)
	}

	chunk := (size + workers - 1) / workers
	var g errgroup.Group
	for from := 0; from < size; from += chunk {
		from := from
		to := min(from+chunk, size)
		g.Go(func() error {
			return fn(from, to)
		})
	}
	return g.Wait()
}
