package hashmap

import "iter"

// KeyValue is a key value pair copied out of a map
type KeyValue[V any] struct {
	Key   string
	Value V
}

// Iterator is an iterator function type
type Iterator[V any] func(key string, value V) bool

// Map is the contract shared by the open addressing and the chained
// hash maps. Neither implementation is safe for concurrent use.
type Map[V any] interface {
	// Put inserts or updates key and returns the previous value, if any
	Put(key string, value V) (V, bool)
	Get(key string) (V, bool)
	ContainsKey(key string) bool
	// Remove deletes key and returns the removed value, if any
	Remove(key string) (V, bool)
	// ResizeTable rebuilds the table with at least capacity slots. The
	// map is left untouched when capacity is not acceptable.
	ResizeTable(capacity int) error
	TableLoad() float64
	EmptyBuckets() int
	Clear()
	KeysAndValues() []KeyValue[V]
	Range(it Iterator[V])
	All() iter.Seq2[string, V]
	Size() int
	Capacity() int
	String() string
}
