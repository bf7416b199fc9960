package chained

import (
	"iter"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/scottcagno/hmap/pkg/hash/strhash"
	"github.com/scottcagno/hmap/pkg/hashmap"
	"github.com/sirupsen/logrus"
)

// maxLoadFactor is the load at which the table is grown before an insert
const maxLoadFactor = 1.0

// HashMap represents an open hashing (separate chaining) hashtable
// implementation
type HashMap[V any] struct {
	hash    strhash.HashFunc
	log     logrus.FieldLogger
	size    int
	buckets []chain[V]
}

// compile time check
var _ hashmap.Map[int] = (*HashMap[int])(nil)

// NewHashMap returns a new HashMap with the next prime that is at least
// capacity buckets, using fn to hash keys
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
		hash:    conf.HashFunc,
		log:     conf.Logger,
		size:    0,
		buckets: make([]chain[V], conf.Capacity),
	}
}

// bucket returns the chain key hashes to
func (m *HashMap[V]) bucket(key string) *chain[V] {
	// mod the hashkey to get the index
	i := m.hash(key) % uint64(len(m.buckets))
	return &m.buckets[i]
}

// Get returns a value for a given key, or returns false if none could be found
func (m *HashMap[V]) Get(key string) (V, bool) {
	n := m.bucket(key).search(key)
	if n == nil {
		return *new(V), false
	}
	return n.val, true
}

// ContainsKey reports whether an entry exists for key
func (m *HashMap[V]) ContainsKey(key string) bool {
	return m.bucket(key).search(key) != nil
}

// Put inserts a key value entry and returns the previous value or false
func (m *HashMap[V]) Put(key string, value V) (V, bool) {
	// check and see if we need to resize
	m.maybeGrow()
	b := m.bucket(key)
	// already exists, update in place
	if n := b.search(key); n != nil {
		prev := n.val
		n.val = value
		return prev, true
	}
	b.insert(key, value)
	m.size++
	return *new(V), false
}

// maybeGrow doubles the table (to the next prime) once the chains hold
// as many entries as there are buckets
func (m *HashMap[V]) maybeGrow() {
	if m.TableLoad() >= maxLoadFactor {
		m.resize(2 * len(m.buckets))
	}
}

// Remove unlinks the entry for key and returns the removed value, or
// false if the key was not found
func (m *HashMap[V]) Remove(key string) (V, bool) {
	val, ok := m.bucket(key).delete(key)
	if ok {
		m.size--
	}
	return val, ok
}

// ResizeTable rebuilds the table with the next prime that is at least
// capacity buckets. Chains absorb any load, so the only capacity refused
// (with an error wrapping hashmap.ErrInvalidCapacity) is one below one.
func (m *HashMap[V]) ResizeTable(capacity int) error {
	if capacity < 1 {
		m.log.WithField("capacity", capacity).Warn("chained: refusing to resize below one bucket")
		return errors.Wrapf(hashmap.ErrInvalidCapacity,
			"chained: capacity %d is below one", capacity)
	}
	m.resize(capacity)
	return nil
}

// resize makes a new table with the new capacity and puts every entry
// of every old chain into it, in bucket then chain order
func (m *HashMap[V]) resize(capacity int) {
	if !hashmap.IsPrime(capacity) {
		capacity = hashmap.NextPrime(capacity)
	}
	m.log.WithFields(logrus.Fields{
		"from":     len(m.buckets),
		"capacity": capacity,
		"size":     m.size,
	}).Debug("chained: rebuilding table")
	old := m.buckets
	m.buckets = make([]chain[V], capacity)
	m.size = 0
	for i := range old {
		old[i].scan(func(key string, value V) bool {
			m.Put(key, value)
			return true
		})
	}
}

// TableLoad returns the number of chained entries per bucket. The size
// always equals the total chain length, so no chain is walked.
func (m *HashMap[V]) TableLoad() float64 {
	return float64(m.size) / float64(len(m.buckets))
}

// EmptyBuckets returns the number of buckets with an empty chain
func (m *HashMap[V]) EmptyBuckets() int {
	var count int
	for i := range m.buckets {
		if m.buckets[i].len() == 0 {
			count++
		}
	}
	return count
}

// Clear replaces every chain with an empty one, keeping the capacity
func (m *HashMap[V]) Clear() {
	clear(m.buckets)
	m.size = 0
}

// Range takes an Iterator and ranges the HashMap in bucket then chain
// order as long as the iterator function continues to be true. Range
// is not safe to perform an insert or remove operation while ranging!
func (m *HashMap[V]) Range(it hashmap.Iterator[V]) {
	for i := range m.buckets {
		if !m.buckets[i].scan(it) {
			return
		}
	}
}

// All returns a restartable iterator over the entries in bucket then
// chain order
func (m *HashMap[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		m.Range(yield)
	}
}

// KeysAndValues returns a copy of every entry in bucket then chain order
func (m *HashMap[V]) KeysAndValues() []hashmap.KeyValue[V] {
	kvs := make([]hashmap.KeyValue[V], 0, m.size)
	m.Range(func(key string, value V) bool {
		kvs = append(kvs, hashmap.KeyValue[V]{Key: key, Value: value})
		return true
	})
	return kvs
}

// Size returns the number of entries currently in the HashMap
func (m *HashMap[V]) Size() int {
	return m.size
}

// Capacity returns the number of buckets in the table
func (m *HashMap[V]) Capacity() int {
	return len(m.buckets)
}

// String renders every bucket index with its chain, for diagnostics
func (m *HashMap[V]) String() string {
	var sb strings.Builder
	for i := range m.buckets {
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString(": ")
		if m.buckets[i].len() == 0 {
			sb.WriteString("empty")
		} else {
			sb.WriteString(m.buckets[i].String())
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
