package markov

import "errors"

// Sentinel errors returned by model building and generation. Callers can
// match them with errors.Is; wrapped messages carry the dynamic detail.
var (
	// ErrInvalidOrder is returned when a Builder is created with an order below 1.
	ErrInvalidOrder = errors.New("order must be at least 1")

	// ErrInvalidMode is returned for a unit mode other than character or word.
	ErrInvalidMode = errors.New("unknown unit mode")

	// ErrInvalidWordCount is returned when generation is asked for fewer than one word.
	ErrInvalidWordCount = errors.New("word count must be at least 1")

	// ErrCorpusTooSmall is returned when a corpus has no group of order+1
	// consecutive units and therefore yields no transitions.
	ErrCorpusTooSmall = errors.New("corpus has fewer units than the order allows")

	// ErrNoWordBoundary is returned for a character-mode corpus that never
	// produces a space successor. Walks over such a model could not complete
	// a single word; adding a space to the corpus fixes it.
	ErrNoWordBoundary = errors.New("no space in corpus: add one so words can end")

	// ErrNoStartKey is returned when a character-mode model contains no key
	// made entirely of letters.
	ErrNoStartKey = errors.New("no alphabetic key to start from")

	// ErrKeyNotFound is returned when a walk reaches a key with no recorded
	// successors, or when an explicit start key is absent from the model.
	ErrKeyNotFound = errors.New("key has no recorded successors: try again, add more input text, or lower the order")
)
