package hashmap

import (
	"testing"

	"github.com/scottcagno/hmap/pkg/util"
)

func TestIsPrime(t *testing.T) {
	primes := []int{2, 3, 5, 7, 11, 13, 23, 31, 53, 79, 101, 113, 7919}
	for _, n := range primes {
		util.AssertTrue(t, IsPrime(n))
	}
	composites := []int{-7, 0, 1, 4, 9, 15, 20, 21, 25, 49, 75, 77, 7917}
	for _, n := range composites {
		util.AssertFalse(t, IsPrime(n))
	}
}

func TestNextPrime(t *testing.T) {
	util.AssertExpected(t, 2, NextPrime(-1))
	util.AssertExpected(t, 2, NextPrime(0))
	util.AssertExpected(t, 2, NextPrime(1))
	util.AssertExpected(t, 2, NextPrime(2))
	util.AssertExpected(t, 3, NextPrime(3))
	util.AssertExpected(t, 5, NextPrime(4))
	util.AssertExpected(t, 11, NextPrime(11))
	util.AssertExpected(t, 23, NextPrime(20))
	util.AssertExpected(t, 31, NextPrime(30))
	util.AssertExpected(t, 79, NextPrime(75))
	util.AssertExpected(t, 131, NextPrime(128))
	for n := 0; n < 1000; n++ {
		p := NextPrime(n)
		util.AssertTrue(t, IsPrime(p))
		util.AssertTrue(t, p >= n)
		for k := n; k < p; k++ {
			util.AssertFalse(t, IsPrime(k))
		}
	}
}
