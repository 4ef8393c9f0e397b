// Package sharetext frames shares as hex text for terminals and pipes:
// one share per line, each line the uppercase hex of the share's binary
// encoding (index first, then payload).
package sharetext

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/izouxv/goShamir/shamir"
)

// maxTokenSize bounds a single hex share read by ReadShares.
const maxTokenSize = 64 * 1024 * 1024

// ErrMalformedText is returned for a share that is not valid hex.
var ErrMalformedText = errors.New("malformed share text")

// Encode returns the hex text form of a share.
func Encode(share *shamir.Share) (string, error) {
	data, err := shamir.MarshalShare(share)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(data)), nil
}

// Decode parses the hex text form of a share. Both letter cases are accepted.
func Decode(text string) (*shamir.Share, error) {
	data, err := hex.DecodeString(strings.TrimSpace(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedText, err)
	}
	return shamir.UnmarshalShare(data)
}

// WriteShares writes the shares to w, one per line.
func WriteShares(w io.Writer, shares []*shamir.Share) error {
	bw := bufio.NewWriter(w)
	for _, share := range shares {
		line, err := Encode(share)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadShares reads whitespace-separated hex shares from r until EOF.
// Input with no shares at all yields an empty slice and no error.
func ReadShares(r io.Reader) ([]*shamir.Share, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxTokenSize)
	scanner.Split(bufio.ScanWords)

	shares := []*shamir.Share{}
	for scanner.Scan() {
		share, err := Decode(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("share %d: %w", len(shares)+1, err)
		}
		shares = append(shares, share)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return shares, nil
}
