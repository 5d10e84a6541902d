package markov

import "sort"

// topKeyCount is how many of the busiest keys Stats reports.
const topKeyCount = 10

// Stats holds aggregated statistics for a single model.
type Stats struct {
	Mode         Mode       // Unit mode the model was built with
	Order        int        // Units per key
	DistinctKeys int        // Number of unique keys
	Transitions  int        // Total observed transitions across all keys
	StartKeys    int        // Number of keys eligible to start a walk
	TopKeys      []KeyCount // Busiest keys by successor count
}

// KeyCount pairs a key with the size of its successor multiset.
type KeyCount struct {
	Key   string
	Count int
}

// Stats returns a snapshot of the model's statistics. TopKeys is ordered
// by descending successor count, ties broken lexically.
func (m *Model) Stats() Stats {
	counts := make([]KeyCount, 0, len(m.keys))
	for _, key := range m.keys {
		counts = append(counts, KeyCount{Key: key, Count: len(m.transitions[key])})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Key < counts[j].Key
	})
	if len(counts) > topKeyCount {
		counts = counts[:topKeyCount]
	}

	return Stats{
		Mode:         m.mode,
		Order:        m.order,
		DistinctKeys: len(m.keys),
		Transitions:  m.total,
		StartKeys:    len(m.startKeys),
		TopKeys:      counts,
	}
}
