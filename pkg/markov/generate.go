package markov

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
	"unicode/utf8"
)

// Sampler is the source of randomness used during generation. It is
// satisfied by *math/rand/v2.Rand; tests can supply a deterministic
// implementation instead.
type Sampler interface {
	// IntN returns a uniformly distributed integer in [0, n).
	IntN(n int) int
}

// NewSampler returns a Sampler seeded with the given value. Equal seeds
// produce equal walks over the same model.
func NewSampler(seed uint64) Sampler {
	return rand.New(rand.NewPCG(seed, seed))
}

// generateOptions is used by Generate to configure optional behavior.
type generateOptions struct {
	startKey string
}

// GenerateOption is a function that configures generation parameters.
// It's used as a variadic argument to Generate.
type GenerateOption func(*generateOptions)

// WithStartKey pins the walk's starting key instead of drawing one at
// random. The key must exist in the model.
func WithStartKey(key string) GenerateOption {
	return func(o *generateOptions) { o.startKey = key }
}

// Generator produces text from a Model by random walk.
type Generator struct {
	model  *Model
	src    Sampler
	logger *slog.Logger
}

// NewGenerator returns a Generator that walks model using src for its
// draws. A nil src is replaced with a fresh entropy-seeded source.
func NewGenerator(model *Model, src Sampler) *Generator {
	if src == nil {
		src = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{
		model:  model,
		src:    src,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// SetLogger sets the logger for the Generator. By default, all logs are discarded.
func (g *Generator) SetLogger(logger *slog.Logger) {
	if logger != nil {
		g.logger = logger
	}
}

// Generate walks the model until wordCount words have been produced and
// returns the result with sentence starts capitalized. A word is complete
// when the walk emits a space, so the output keeps its trailing space and,
// in character mode, opens with the start key.
//
// The walk fails if it reaches a key with no recorded successors; no
// partial output is returned. With a pathological order and corpus the
// walk can keep producing units without ever completing a word, in which
// case Generate does not return.
func (g *Generator) Generate(wordCount int, opts ...GenerateOption) (string, error) {
	if wordCount < 1 {
		return "", fmt.Errorf("cannot generate %d words: %w", wordCount, ErrInvalidWordCount)
	}

	options := &generateOptions{}
	for _, opt := range opts {
		opt(options)
	}

	startKey, err := g.pickStartKey(options)
	if err != nil {
		return "", err
	}

	g.logger.Debug("starting walk",
		slog.String("mode", string(g.model.mode)),
		slog.String("start_key", startKey),
		slog.Int("word_count", wordCount),
	)

	var text string
	if g.model.mode == ModeWord {
		text, err = g.walkWords(startKey, wordCount)
	} else {
		text, err = g.walkRunes(startKey, wordCount)
	}
	if err != nil {
		return "", err
	}

	g.logger.Debug("walk complete", slog.Int("output_len", len(text)))

	return FormatSentences(text), nil
}

// pickStartKey resolves the walk's first key, drawing uniformly from the
// model's start candidates unless an explicit key was supplied.
func (g *Generator) pickStartKey(options *generateOptions) (string, error) {
	if options.startKey != "" {
		if _, ok := g.model.transitions[options.startKey]; !ok {
			return "", fmt.Errorf("start key %q: %w", options.startKey, ErrKeyNotFound)
		}
		return options.startKey, nil
	}

	candidates := g.model.startKeys
	if len(candidates) == 0 {
		return "", ErrNoStartKey
	}
	return candidates[g.src.IntN(len(candidates))], nil
}

// walkWords emits wordCount successors, each followed by a space, sliding
// the key window one word at a time. The start key itself is not emitted.
func (g *Generator) walkWords(startKey string, wordCount int) (string, error) {
	prefix := strings.Split(startKey, " ")
	var sb strings.Builder

	for words := 0; words < wordCount; words++ {
		key := strings.Join(prefix, " ")
		successors := g.model.transitions[key]
		if len(successors) == 0 {
			return "", fmt.Errorf("walk stopped at key %q after %d words: %w", key, words, ErrKeyNotFound)
		}
		next := successors[g.src.IntN(len(successors))]
		sb.WriteString(next)
		sb.WriteByte(' ')

		copy(prefix, prefix[1:])
		prefix[len(prefix)-1] = next
	}

	return sb.String(), nil
}

// walkRunes emits one rune per draw, completing a word whenever the drawn
// rune is a space. The start key seeds the output, so the first window is
// part of the text.
func (g *Generator) walkRunes(startKey string, wordCount int) (string, error) {
	prefix := []rune(startKey)
	var sb strings.Builder
	sb.WriteString(startKey)

	for words := 0; words < wordCount; {
		key := string(prefix)
		successors := g.model.transitions[key]
		if len(successors) == 0 {
			return "", fmt.Errorf("walk stopped at key %q after %d words: %w", key, words, ErrKeyNotFound)
		}
		next := successors[g.src.IntN(len(successors))]
		sb.WriteString(next)
		if next == " " {
			words++
		}

		r, _ := utf8.DecodeRuneInString(next)
		copy(prefix, prefix[1:])
		prefix[len(prefix)-1] = r
	}

	return sb.String(), nil
}
