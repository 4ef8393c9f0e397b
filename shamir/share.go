package shamir

import (
	"encoding/binary"
	"fmt"
)

// IndexSize is the number of bytes the share index takes up in the encoded form.
const IndexSize = 4

// Share represents a share of a secret: the evaluation point and the value of
// every byte's polynomial at that point.
type Share struct {
	Index   uint32
	Payload []byte
}

// Encode serializes the share as a big-endian index followed by the payload.
// The payload has no length prefix; its length is the length of the secret.
func (s *Share) Encode() ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil share", ErrMalformedShare)
	}
	buf := make([]byte, IndexSize+len(s.Payload))
	binary.BigEndian.PutUint32(buf, s.Index)
	copy(buf[IndexSize:], s.Payload)
	return buf, nil
}

// Decode deserializes a byte slice into the share.
func (s *Share) Decode(data []byte) error {
	if len(data) < IndexSize {
		return fmt.Errorf("%w: %d bytes, need at least %d", ErrMalformedShare, len(data), IndexSize)
	}
	s.Index = binary.BigEndian.Uint32(data)
	s.Payload = append([]byte(nil), data[IndexSize:]...)
	return nil
}

// MarshalShare serializes a share into a byte slice.
func MarshalShare(share *Share) ([]byte, error) {
	return share.Encode()
}

// UnmarshalShare deserializes a byte slice into a Share.
func UnmarshalShare(data []byte) (*Share, error) {
	share := new(Share)
	if err := share.Decode(data); err != nil {
		return nil, err
	}
	return share, nil
}
