package strhash

import "github.com/cespare/xxhash/v2"

// HashFunc is a type definition for what a hash function should look like.
// Implementations must be deterministic and defined for every key.
type HashFunc func(key string) uint64

// SumOfCodes adds up the code points of every character in the key. It is
// cheap and collides on anagrams, which makes it handy for exercising
// collision handling.
func SumOfCodes(key string) uint64 {
	var hash uint64
	for _, r := range key {
		hash += uint64(r)
	}
	return hash
}

// WeightedSum is like SumOfCodes except that every code point is weighted
// by its (one based) position in the key
func WeightedSum(key string) uint64 {
	var hash uint64
	var index uint64
	for _, r := range key {
		index++
		hash += index * uint64(r)
	}
	return hash
}

// XXHash returns the 64-bit xxhash digest of the key
func XXHash(key string) uint64 {
	return xxhash.Sum64String(key)
}

// ByName returns the hash function registered under name, or false
func ByName(name string) (HashFunc, bool) {
	switch name {
	case "sum":
		return SumOfCodes, true
	case "weighted":
		return WeightedSum, true
	case "xxhash":
		return XXHash, true
	}
	return nil, false
}
