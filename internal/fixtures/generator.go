package fixtures

import (
	"errors"
	"fmt"
	"io"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
)

const DefaultMaxAttempts = 1024

var (
	ErrExhaustedRetries = errors.New("exhausted retries")
	ErrNegativeCount    = errors.New("count must not be negative")

	errDuplicate = errors.New("duplicate string")
)

type Generator struct {
	Source *EntropySource
	// MaxAttempts bounds the draws spent finding one unseen string.
	MaxAttempts int
}

func NewGenerator(src *EntropySource) *Generator {
	return &Generator{Source: src, MaxAttempts: DefaultMaxAttempts}
}

// Generate returns n distinct strings of the given length in draw order.
func (g *Generator) Generate(n, length int) ([]string, error) {
	out := make([]string, 0, max(n, 0))
	err := g.each(n, length, func(_ int, s string) error {
		out = append(out, s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// WriteList streams n distinct quoted strings to w, one per line, every
// line but the last terminated by a comma.
func (g *Generator) WriteList(w io.Writer, n, length int) error {
	return g.each(n, length, func(i int, s string) error {
		_, err := io.WriteString(w, FormatLine(s, i+1 == n)+"\n")
		return err
	})
}

// FormatLine renders one entry of the literal list.
func FormatLine(s string, last bool) string {
	if last {
		return fmt.Sprintf("    %q", s)
	}
	return fmt.Sprintf("    %q,", s)
}

func (g *Generator) each(n, length int, emit func(int, string) error) error {
	if n < 0 || length < 0 {
		return fmt.Errorf("%w: iterations=%d length=%d", ErrNegativeCount, n, length)
	}
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		s, err := g.next(seen, length)
		if err != nil {
			return fmt.Errorf("string %d of %d: %w", i+1, n, err)
		}
		if err := emit(i, s); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) next(seen map[string]struct{}, length int) (string, error) {
	attempts := g.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var item string
	tries := 0
	op := func() error {
		tries++
		s, err := g.Source.Draw(length)
		if err != nil {
			return backoff.Permanent(err)
		}
		if _, dup := seen[s]; dup {
			return errDuplicate
		}
		item = s
		return nil
	}

	err := backoff.Retry(op, backoff.WithMaxRetries(&backoff.ZeroBackOff{}, uint64(attempts-1)))
	if errors.Is(err, errDuplicate) {
		return "", fmt.Errorf("%w: no unseen string of length %d after %d attempts", ErrExhaustedRetries, length, tries)
	}
	if err != nil {
		return "", err
	}
	if tries > 1 {
		log.Debug().Int("attempts", tries).Int("length", length).Msg("resolved duplicate draw")
	}
	seen[item] = struct{}{}
	return item, nil
}
