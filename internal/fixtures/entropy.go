package fixtures

import (
	"fmt"
	"io"
	"os"
)

const (
	Alphabet      = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	DefaultSource = "/dev/urandom"
)

// MapByte maps a raw entropy byte into the alphabet.
func MapByte(b byte) byte {
	return 'A' + b%byte(len(Alphabet))
}

// EntropySource draws mapped strings from a byte stream.
type EntropySource struct {
	r      io.Reader
	closer io.Closer
}

func NewEntropySource(r io.Reader) *EntropySource {
	return &EntropySource{r: r}
}

// OpenEntropySource opens path once; the handle stays open until Close.
func OpenEntropySource(path string) (*EntropySource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open entropy source: %w", err)
	}
	return &EntropySource{r: f, closer: f}, nil
}

// Draw reads exactly n bytes and returns them mapped into the alphabet.
func (s *EntropySource) Draw(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(s.r, buf); err != nil {
		return "", fmt.Errorf("read entropy: %w", err)
	}
	for i, b := range buf {
		buf[i] = MapByte(b)
	}
	return string(buf), nil
}

func (s *EntropySource) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
