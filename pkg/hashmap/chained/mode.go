package chained

import (
	"github.com/scottcagno/hmap/pkg/hash/strhash"
	"github.com/scottcagno/hmap/pkg/hashmap"
)

// FindMode returns the most frequent values together with their shared
// frequency. Ties are all returned, in the order the frequency map
// yields them (bucket order), not in input order.
func FindMode(values []string) ([]string, int) {
	freqs := NewHashMap[int](hashmap.DefaultCapacity, strhash.SumOfCodes)
	for _, value := range values {
		freq, _ := freqs.Get(value)
		freqs.Put(value, freq+1)
	}
	var modes []string
	var modeFreq int
	for _, kv := range freqs.KeysAndValues() {
		switch {
		case kv.Value > modeFreq:
			modes = append(modes[:0], kv.Key)
			modeFreq = kv.Value
		case kv.Value == modeFreq:
			modes = append(modes, kv.Key)
		}
	}
	return modes, modeFreq
}
