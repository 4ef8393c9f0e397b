package sharetext

import (
	"bytes"
	"crypto/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/izouxv/goShamir/shamir"
)

func TestEncode(t *testing.T) {
	line, err := Encode(&shamir.Share{Index: 2, Payload: []byte{0xab, 0x01}})
	require.NoError(t, err)
	assert.Equal(t, "00000002AB01", line)

	_, err = Encode(nil)
	assert.ErrorIs(t, err, shamir.ErrMalformedShare)
}

func TestDecode(t *testing.T) {
	for _, text := range []string{"00000002AB01", "00000002ab01", "  00000002Ab01\n"} {
		share, err := Decode(text)
		require.NoError(t, err, text)
		assert.Equal(t, &shamir.Share{Index: 2, Payload: []byte{0xab, 0x01}}, share)
	}

	t.Run("not hex", func(t *testing.T) {
		_, err := Decode("0000000ZZZ")
		assert.ErrorIs(t, err, ErrMalformedText)
	})

	t.Run("odd length", func(t *testing.T) {
		_, err := Decode("000000021")
		assert.ErrorIs(t, err, ErrMalformedText)
	})

	t.Run("shorter than an index", func(t *testing.T) {
		_, err := Decode("000002")
		assert.ErrorIs(t, err, shamir.ErrMalformedShare)
	})
}

func TestWriteAndReadShares(t *testing.T) {
	secret := []byte("hunter2")
	shares, err := shamir.Split(secret, 4, 3, rand.Reader)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteShares(&buf, shares))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	for _, line := range lines {
		assert.Len(t, line, 2*(shamir.IndexSize+len(secret)))
		assert.Equal(t, strings.ToUpper(line), line)
	}

	read, err := ReadShares(strings.NewReader(lines[3] + "\n\n" + lines[0] + " " + lines[1] + "\r\n"))
	require.NoError(t, err)
	require.Len(t, read, 3)
	assert.Equal(t, []*shamir.Share{shares[3], shares[0], shares[1]}, read)

	combined, err := shamir.Combine(read)
	require.NoError(t, err)
	assert.Equal(t, secret, combined)
}

func TestReadSharesEmptyInput(t *testing.T) {
	shares, err := ReadShares(strings.NewReader("\n  \n"))
	require.NoError(t, err)
	assert.Empty(t, shares)
}

func TestReadSharesBadToken(t *testing.T) {
	_, err := ReadShares(strings.NewReader("00000001AA\nnope\n"))
	assert.ErrorIs(t, err, ErrMalformedText)
	assert.Contains(t, err.Error(), "share 2")
}
