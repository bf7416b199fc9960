package hashmap_test

import (
	"strconv"
	"testing"

	"github.com/scottcagno/hmap/pkg/hash/strhash"
	"github.com/scottcagno/hmap/pkg/hashmap"
	"github.com/scottcagno/hmap/pkg/hashmap/chained"
	"github.com/scottcagno/hmap/pkg/hashmap/openaddr"
	"github.com/scottcagno/hmap/pkg/util"
)

type mapMaker struct {
	name    string
	maxLoad float64
	make    func(capacity int, fn strhash.HashFunc) hashmap.Map[int]
}

var makers = []mapMaker{
	{
		name:    "openaddr",
		maxLoad: 0.5,
		make: func(capacity int, fn strhash.HashFunc) hashmap.Map[int] {
			return openaddr.NewHashMap[int](capacity, fn)
		},
	},
	{
		name:    "chained",
		maxLoad: 1.0,
		make: func(capacity int, fn strhash.HashFunc) hashmap.Map[int] {
			return chained.NewHashMap[int](capacity, fn)
		},
	},
}

var hashFuncs = map[string]strhash.HashFunc{
	"sum":      strhash.SumOfCodes,
	"weighted": strhash.WeightedSum,
	"xxhash":   strhash.XXHash,
}

// forEach runs fn for every map implementation with every hash function
func forEach(t *testing.T, fn func(t *testing.T, mk mapMaker, hash strhash.HashFunc)) {
	for _, mk := range makers {
		for name, hash := range hashFuncs {
			mk, hash := mk, hash
			t.Run(mk.name+"/"+name, func(t *testing.T) {
				fn(t, mk, hash)
			})
		}
	}
}

func TestMap_roundTrip(t *testing.T) {
	forEach(t, func(t *testing.T, mk mapMaker, hash strhash.HashFunc) {
		m := mk.make(11, hash)
		for i := 0; i < 500; i++ {
			key := "key" + strconv.Itoa(i)
			m.Put(key, i)
			val, ok := m.Get(key)
			util.AssertTrue(t, ok)
			util.AssertExpected(t, i, val)
		}
		util.AssertExpected(t, 500, m.Size())
	})
}

func TestMap_scenario(t *testing.T) {
	forEach(t, func(t *testing.T, mk mapMaker, hash strhash.HashFunc) {
		m := mk.make(11, hash)
		m.Put("key1", 10)
		val, ok := m.Get("key1")
		util.AssertTrue(t, ok)
		util.AssertExpected(t, 10, val)
		m.Remove("key1")
		_, ok = m.Get("key1")
		util.AssertFalse(t, ok)
		size, load := m.Size(), m.TableLoad()
		m.Remove("key4")
		util.AssertExpected(t, size, m.Size())
		util.AssertExpected(t, load, m.TableLoad())
	})
}

func TestMap_loadBound(t *testing.T) {
	forEach(t, func(t *testing.T, mk mapMaker, hash strhash.HashFunc) {
		m := mk.make(79, hash)
		for i := 0; i < 1000; i++ {
			m.Put(strconv.Itoa(i), i)
			util.AssertTrue(t, hashmap.IsPrime(m.Capacity()))
			util.AssertAtMost(t, mk.maxLoad+1/float64(m.Capacity()), m.TableLoad())
			if i%100 == 99 {
				for j := 0; j <= i; j++ {
					util.AssertTrue(t, m.ContainsKey(strconv.Itoa(j)))
				}
			}
		}
	})
}

func TestMap_resizePreservesMembership(t *testing.T) {
	forEach(t, func(t *testing.T, mk mapMaker, hash strhash.HashFunc) {
		m := mk.make(23, hash)
		for i := 0; i < 40; i++ {
			m.Put("k"+strconv.Itoa(i), i)
		}
		for _, capacity := range []int{200, 97, 1000, 41} {
			util.AssertNoError(t, m.ResizeTable(capacity))
			util.AssertTrue(t, hashmap.IsPrime(m.Capacity()))
			for i := 0; i < 40; i++ {
				val, ok := m.Get("k" + strconv.Itoa(i))
				util.AssertTrue(t, ok)
				util.AssertExpected(t, i, val)
			}
			util.AssertExpected(t, 40, m.Size())
		}
	})
}

func TestMap_iterationAgrees(t *testing.T) {
	forEach(t, func(t *testing.T, mk mapMaker, hash strhash.HashFunc) {
		m := mk.make(31, hash)
		for i := 0; i < 60; i++ {
			m.Put(strconv.Itoa(i), i)
		}
		for i := 0; i < 60; i += 3 {
			m.Remove(strconv.Itoa(i))
		}
		kvs := m.KeysAndValues()
		util.AssertExpected(t, m.Size(), len(kvs))
		var n int
		for key, val := range m.All() {
			util.AssertExpected(t, kvs[n].Key, key)
			util.AssertExpected(t, kvs[n].Value, val)
			n++
		}
		util.AssertExpected(t, len(kvs), n)
		seen := make(map[string]bool, len(kvs))
		for _, kv := range kvs {
			util.AssertFalse(t, seen[kv.Key])
			seen[kv.Key] = true
			util.AssertExpected(t, strconv.Itoa(kv.Value), kv.Key)
		}
	})
}

func TestMap_clear(t *testing.T) {
	forEach(t, func(t *testing.T, mk mapMaker, hash strhash.HashFunc) {
		m := mk.make(17, hash)
		for i := 0; i < 8; i++ {
			m.Put(strconv.Itoa(i), i)
		}
		capacity := m.Capacity()
		m.Clear()
		util.AssertExpected(t, 0, m.Size())
		util.AssertExpected(t, capacity, m.Capacity())
		util.AssertExpected(t, capacity, m.EmptyBuckets())
		util.AssertExpected(t, 0, len(m.KeysAndValues()))
	})
}
