package markov

import (
	"go/build"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// seqSampler plays back a scripted sequence of draws, wrapping each value
// into [0, n) so a script stays valid for any list length. An exhausted
// script keeps returning 0.
type seqSampler struct {
	draws []int
	pos   int
}

func (s *seqSampler) IntN(n int) int {
	if s.pos >= len(s.draws) {
		return 0
	}
	draw := s.draws[s.pos] % n
	s.pos++
	return draw
}

// mustBuild builds a model or fails the test.
func mustBuild(t *testing.T, order int, mode Mode, corpus string) *Model {
	t.Helper()
	builder, err := NewBuilder(order, mode)
	if err != nil {
		t.Fatalf("NewBuilder(%d, %q) error = %v", order, mode, err)
	}
	model, err := builder.Build(corpus)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return model
}

// cyclicCorpus returns a corpus whose every group leads back into the
// repeated sentence, so walks over it cannot dead-end at any length.
func cyclicCorpus() string {
	return strings.TrimSpace(strings.Repeat("the quick brown fox jumps over the lazy dog. ", 50))
}

var (
	benchCorpus     string
	benchCorpusOnce sync.Once
)

// benchmarkCorpus reads Go source files into a large mixed corpus, falling
// back to a small static corpus when GOROOT is unavailable.
func benchmarkCorpus() string {
	benchCorpusOnce.Do(func() {
		goRoot := build.Default.GOROOT
		files := []string{
			filepath.Join(goRoot, "src/net/http/server.go"),
			filepath.Join(goRoot, "src/encoding/json/encode.go"),
		}

		var sb strings.Builder
		for _, file := range files {
			content, err := os.ReadFile(file)
			if err != nil {
				benchCorpus = strings.Repeat("a small fallback corpus stands in for the real files. ", 100)
				return
			}
			sb.Write(content)
			sb.WriteByte('\n')
		}
		benchCorpus = sb.String()
	})
	return benchCorpus
}
