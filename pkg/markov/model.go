package markov

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"unicode"
)

// Mode selects how a corpus is divided into units.
type Mode string

const (
	// ModeCharacter treats every rune of the corpus as a unit.
	ModeCharacter Mode = "character"
	// ModeWord treats every segment between single spaces as a unit.
	// Consecutive spaces produce empty units, which are kept.
	ModeWord Mode = "word"
)

// ParseMode converts a mode name to a Mode. It accepts the canonical
// names "character" and "word".
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeCharacter, ModeWord:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("mode %q: %w", s, ErrInvalidMode)
	}
}

// Builder constructs frequency models from corpus text. A single Builder
// can build any number of independent models.
type Builder struct {
	order  int
	mode   Mode
	logger *slog.Logger
}

// NewBuilder returns a Builder producing models of the given order, with
// corpora divided into units according to mode.
func NewBuilder(order int, mode Mode) (*Builder, error) {
	if order < 1 {
		return nil, fmt.Errorf("order %d: %w", order, ErrInvalidOrder)
	}
	if mode != ModeCharacter && mode != ModeWord {
		return nil, fmt.Errorf("mode %q: %w", mode, ErrInvalidMode)
	}
	return &Builder{
		order:  order,
		mode:   mode,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, nil
}

// SetLogger sets the logger for the Builder. By default, all logs are discarded.
func (b *Builder) SetLogger(logger *slog.Logger) {
	if logger != nil {
		b.logger = logger
	}
}

// Build scans the corpus in a single pass and records, for every group of
// order consecutive units, the unit observed immediately after it. Groups
// overlap: each scan position advances by one unit. Units are taken
// exactly as they appear, with no normalization or case folding.
//
// A corpus with no group of order+1 consecutive units fails with
// ErrCorpusTooSmall. A character-mode corpus whose transitions never
// produce a space fails with ErrNoWordBoundary, since no walk over such a
// model could ever complete a word.
func (b *Builder) Build(corpus string) (*Model, error) {
	transitions := make(map[string][]string)
	total := 0
	hasBoundary := false

	switch b.mode {
	case ModeWord:
		words := strings.Split(corpus, " ")
		for i := 0; i+b.order < len(words); i++ {
			key := strings.Join(words[i:i+b.order], " ")
			transitions[key] = append(transitions[key], words[i+b.order])
			total++
		}
	default:
		runes := []rune(corpus)
		for i := 0; i+b.order < len(runes); i++ {
			key := string(runes[i : i+b.order])
			next := string(runes[i+b.order])
			transitions[key] = append(transitions[key], next)
			total++
			if next == " " {
				hasBoundary = true
			}
		}
	}

	if total == 0 {
		return nil, fmt.Errorf("order %d: %w", b.order, ErrCorpusTooSmall)
	}
	if b.mode == ModeCharacter && !hasBoundary {
		return nil, ErrNoWordBoundary
	}

	keys := make([]string, 0, len(transitions))
	for key := range transitions {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	// Character-mode walks must start inside a word, so only all-letter
	// keys qualify. Word-mode walks may start anywhere.
	startKeys := keys
	if b.mode == ModeCharacter {
		startKeys = make([]string, 0, len(keys))
		for _, key := range keys {
			if isAlphabetic(key) {
				startKeys = append(startKeys, key)
			}
		}
	}

	b.logger.Info("model built",
		slog.String("mode", string(b.mode)),
		slog.Int("order", b.order),
		slog.Int("keys", len(keys)),
		slog.Int("transitions", total),
	)

	return &Model{
		order:       b.order,
		mode:        b.mode,
		transitions: transitions,
		keys:        keys,
		startKeys:   startKeys,
		total:       total,
	}, nil
}

// isAlphabetic reports whether s is non-empty and made entirely of letters.
func isAlphabetic(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return s != ""
}

// Model is an immutable transition table built from one corpus. Every key
// holds at least one successor, and successor lists keep one entry per
// observation, so a uniform draw over a list is frequency-weighted. Key
// slices are sorted, which keeps draws under a seeded Sampler reproducible.
type Model struct {
	order       int
	mode        Mode
	transitions map[string][]string
	keys        []string
	startKeys   []string
	total       int
}

// Order returns the number of units per key.
func (m *Model) Order() int { return m.order }

// Mode returns the unit mode the model was built with.
func (m *Model) Mode() Mode { return m.mode }

// Len returns the number of distinct keys.
func (m *Model) Len() int { return len(m.keys) }

// Keys returns the model's keys in lexical order.
func (m *Model) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Successors returns the successor multiset recorded for key, or nil if
// the key was never observed.
func (m *Model) Successors(key string) []string {
	successors, ok := m.transitions[key]
	if !ok {
		return nil
	}
	out := make([]string, len(successors))
	copy(out, successors)
	return out
}

// StartKeys returns the keys eligible to start a walk: every key in word
// mode, the all-letter keys in character mode.
func (m *Model) StartKeys() []string {
	out := make([]string, len(m.startKeys))
	copy(out, m.startKeys)
	return out
}
