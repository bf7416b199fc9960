package openaddr

type slotState uint8

const (
	slotEmpty slotState = iota
	slotLive
	slotTombstone
)

func (s slotState) String() string {
	switch s {
	case slotLive:
		return "live"
	case slotTombstone:
		return "tombstone"
	}
	return "empty"
}

// entry is a key value pair that is found in each slot
type entry[V any] struct {
	key string
	val V
}

// slot represents a single position in the HashMap table. The entry is
// only meaningful while the slot is live; a tombstone keeps just the key.
type slot[V any] struct {
	state slotState
	entry[V]
}

// live reports whether the slot holds a live entry for key
func (s *slot[V]) live(key string) bool {
	return s.state == slotLive && s.key == key
}

// bury turns a live slot into a tombstone and drops its value
func (s *slot[V]) bury() {
	s.state = slotTombstone
	s.val = *new(V)
}
