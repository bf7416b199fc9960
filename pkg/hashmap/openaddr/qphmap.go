package openaddr

import (
	"fmt"
	"iter"
	"strings"

	"github.com/pkg/errors"
	"github.com/scottcagno/hmap/pkg/hash/strhash"
	"github.com/scottcagno/hmap/pkg/hashmap"
	"github.com/sirupsen/logrus"
)

// maxLoadFactor is the load at which the table is grown before an insert
const maxLoadFactor = 0.5

// HashMap represents a closed hashing hashtable implementation
type HashMap[V any] struct {
	hash  strhash.HashFunc
	log   logrus.FieldLogger
	size  int
	slots []slot[V]
}

// compile time check
var _ hashmap.Map[int] = (*HashMap[int])(nil)

// NewHashMap returns a new HashMap with a table of the next prime that
// is at least capacity slots, using fn to hash keys
func NewHashMap[V any](capacity int, fn strhash.HashFunc) *HashMap[V] {
	return NewHashMapConfig[V](&hashmap.Config{
		Capacity: capacity,
		HashFunc: fn,
	})
}

// NewHashMapConfig returns a new HashMap set up from the provided config.
// A nil config yields the default configuration.
func NewHashMapConfig[V any](conf *hashmap.Config) *HashMap[V] {
	conf = conf.Check()
	return &HashMap[V]{
		hash:  conf.HashFunc,
		log:   conf.Logger,
		size:  0,
		slots: make([]slot[V], conf.Capacity),
	}
}

// probe walks the quadratic probe sequence of key, calling fn with every
// index until fn returns false or capacity slots have been visited
func (m *HashMap[V]) probe(key string, fn func(i int) bool) {
	capacity := uint64(len(m.slots))
	i := m.hash(key) % capacity
	for step := uint64(0); step < capacity; step++ {
		if !fn(int(i)) {
			return
		}
		// (s+1)^2 - s^2 = 2s+1
		i = (i + 2*step + 1) % capacity
	}
}

// lookup returns the index of the live slot holding key
func (m *HashMap[V]) lookup(key string) (int, bool) {
	found := -1
	m.probe(key, func(i int) bool {
		switch {
		case m.slots[i].state == slotEmpty:
			// havent located anything
			return false
		case m.slots[i].live(key):
			found = i
			return false
		}
		// tombstones and other keys, keep on probing
		return true
	})
	return found, found >= 0
}

// Get returns a value for a given key, or returns false if none could be found
func (m *HashMap[V]) Get(key string) (V, bool) {
	i, ok := m.lookup(key)
	if !ok {
		return *new(V), false
	}
	return m.slots[i].val, true
}

// ContainsKey reports whether a live entry exists for key
func (m *HashMap[V]) ContainsKey(key string) bool {
	_, ok := m.lookup(key)
	return ok
}

// Put inserts a key value entry and returns the previous value or false
func (m *HashMap[V]) Put(key string, value V) (V, bool) {
	// check and see if we need to resize
	m.maybeGrow()
	for {
		prev, updated, ok := m.insert(key, value)
		if ok {
			return prev, updated
		}
		// every slot on the probe sequence is live, so the only way out
		// is a bigger table (which also drops the tombstones)
		m.resize(2 * len(m.slots))
	}
}

// maybeGrow doubles the table (to the next prime) when it is half full
func (m *HashMap[V]) maybeGrow() {
	if m.TableLoad() >= maxLoadFactor {
		m.resize(2 * len(m.slots))
	}
}

// insert places the entry without checking the load. It reports false
// when the probe sequence offered neither a free slot nor the key.
func (m *HashMap[V]) insert(key string, value V) (V, bool, bool) {
	free, match := -1, -1
	m.probe(key, func(i int) bool {
		switch m.slots[i].state {
		case slotEmpty:
			// end of the sequence, the key is not in the table
			if free < 0 {
				free = i
			}
			return false
		case slotTombstone:
			// remember the first tombstone, but the key may still be further on
			if free < 0 {
				free = i
			}
		case slotLive:
			if m.slots[i].key == key {
				match = i
				return false
			}
		}
		return true
	})
	// found existing entry--update entry and return previous value
	if match >= 0 {
		prev := m.slots[match].val
		m.slots[match].val = value
		return prev, true, true
	}
	if free < 0 {
		return *new(V), false, false
	}
	// we found a spot, insert a new entry
	m.slots[free] = slot[V]{
		state: slotLive,
		entry: entry[V]{
			key: key,
			val: value,
		},
	}
	m.size++
	// no previous value to return, as this is a new entry
	return *new(V), false, true
}

// Remove turns the slot holding key into a tombstone and returns the
// removed value, or false if the key was not found
func (m *HashMap[V]) Remove(key string) (V, bool) {
	i, ok := m.lookup(key)
	if !ok {
		return *new(V), false
	}
	prev := m.slots[i].val
	m.slots[i].bury()
	m.size--
	return prev, true
}

// ResizeTable rebuilds the table with the next prime that is at least
// capacity slots. Shrinking below the number of live entries is refused
// and reported with an error wrapping hashmap.ErrInvalidCapacity.
func (m *HashMap[V]) ResizeTable(capacity int) error {
	if capacity < m.size {
		m.log.WithFields(logrus.Fields{
			"capacity": capacity,
			"size":     m.size,
		}).Warn("openaddr: refusing to resize below size")
		return errors.Wrapf(hashmap.ErrInvalidCapacity,
			"openaddr: capacity %d is below size %d", capacity, m.size)
	}
	m.resize(capacity)
	return nil
}

// resize makes a new table with the new capacity and puts every live
// entry of the old table into it, in slot order
func (m *HashMap[V]) resize(capacity int) {
	if !hashmap.IsPrime(capacity) {
		capacity = hashmap.NextPrime(capacity)
	}
	m.log.WithFields(logrus.Fields{
		"from":     len(m.slots),
		"capacity": capacity,
		"size":     m.size,
	}).Debug("openaddr: rebuilding table")
	old := m.slots
	m.slots = make([]slot[V], capacity)
	m.size = 0
	for i := range old {
		if old[i].state == slotLive {
			m.Put(old[i].key, old[i].val)
		}
	}
}

// TableLoad returns the current load factor of the HashMap
func (m *HashMap[V]) TableLoad() float64 {
	return float64(m.size) / float64(len(m.slots))
}

// EmptyBuckets returns the number of slots holding neither a live
// entry nor a tombstone
func (m *HashMap[V]) EmptyBuckets() int {
	var count int
	for i := range m.slots {
		if m.slots[i].state == slotEmpty {
			count++
		}
	}
	return count
}

// Tombstones returns the number of tombstoned slots
func (m *HashMap[V]) Tombstones() int {
	var count int
	for i := range m.slots {
		if m.slots[i].state == slotTombstone {
			count++
		}
	}
	return count
}

// Clear empties every slot, keeping the capacity
func (m *HashMap[V]) Clear() {
	clear(m.slots)
	m.size = 0
}

// Range takes an Iterator and ranges the live entries in slot order as
// long as the iterator function continues to be true. Range is not
// safe to perform an insert or remove operation while ranging!
func (m *HashMap[V]) Range(it hashmap.Iterator[V]) {
	for i := range m.slots {
		if m.slots[i].state != slotLive {
			continue
		}
		if !it(m.slots[i].key, m.slots[i].val) {
			return
		}
	}
}

// All returns a restartable iterator over the live entries in slot order
func (m *HashMap[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		m.Range(yield)
	}
}

// KeysAndValues returns a copy of every live entry in slot order
func (m *HashMap[V]) KeysAndValues() []hashmap.KeyValue[V] {
	kvs := make([]hashmap.KeyValue[V], 0, m.size)
	m.Range(func(key string, value V) bool {
		kvs = append(kvs, hashmap.KeyValue[V]{Key: key, Value: value})
		return true
	})
	return kvs
}

// Size returns the number of live entries currently in the HashMap
func (m *HashMap[V]) Size() int {
	return m.size
}

// Capacity returns the number of slots in the table
func (m *HashMap[V]) Capacity() int {
	return len(m.slots)
}

// String renders every slot index with its contents, for diagnostics
func (m *HashMap[V]) String() string {
	var sb strings.Builder
	for i := range m.slots {
		switch s := &m.slots[i]; s.state {
		case slotLive:
			fmt.Fprintf(&sb, "%d: %s: %v\n", i, s.key, s.val)
		case slotTombstone:
			fmt.Fprintf(&sb, "%d: %s (%s)\n", i, s.key, s.state)
		default:
			fmt.Fprintf(&sb, "%d: %s\n", i, s.state)
		}
	}
	return sb.String()
}
