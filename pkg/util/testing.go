package util

import (
	"math"
	"reflect"
	"testing"
)

func AssertExpected(t testing.TB, expected, got interface{}) bool {
	t.Helper()
	if !reflect.DeepEqual(expected, got) {
		t.Errorf("error, expected: %v, got: %v\n", expected, got)
		return false
	}
	return true
}

func AssertEqual(t testing.TB, expected, got interface{}) bool {
	t.Helper()
	return AssertExpected(t, expected, got)
}

func AssertTrue(t testing.TB, got bool) bool {
	t.Helper()
	return AssertExpected(t, true, got)
}

func AssertFalse(t testing.TB, got bool) bool {
	t.Helper()
	return AssertExpected(t, false, got)
}

func AssertError(t testing.TB, err error) bool {
	t.Helper()
	if err == nil {
		t.Errorf("error, expected an error, got: nil\n")
		return false
	}
	return true
}

func AssertNoError(t testing.TB, err error) bool {
	t.Helper()
	if err != nil {
		t.Errorf("error, expected no error, got: %v\n", err)
		return false
	}
	return true
}

// AssertAtMost fails when got is larger than limit plus a small float slack
func AssertAtMost(t testing.TB, limit, got float64) bool {
	t.Helper()
	if got > limit+1e-9 {
		t.Errorf("error, expected at most: %.4f, got: %.4f\n", limit, got)
		return false
	}
	return true
}

// AssertInDelta fails when expected and got are further apart than delta
func AssertInDelta(t testing.TB, expected, got, delta float64) bool {
	t.Helper()
	if math.Abs(expected-got) > delta {
		t.Errorf("error, expected: %.4f (+/- %.4f), got: %.4f\n", expected, delta, got)
		return false
	}
	return true
}
