package chained

import (
	"fmt"
	"strings"

	"github.com/scottcagno/hmap/pkg/hashmap"
)

// entry is a key value pair that is found in each chain
type entry[V any] struct {
	key string
	val V
}

// node is a node in part of our linked list
type node[V any] struct {
	entry[V]
	next *node[V]
}

// chain is the singly linked list held by a single bucket. Nodes are
// owned by the chain and new ones are appended at the tail, so a scan
// returns entries in the order they were inserted.
type chain[V any] struct {
	head   *node[V]
	tail   *node[V]
	length int
}

// insert appends a new entry without checking for an existing key
func (c *chain[V]) insert(key string, val V) {
	n := &node[V]{
		entry: entry[V]{
			key: key,
			val: val,
		},
	}
	if c.tail == nil {
		c.head = n
	} else {
		c.tail.next = n
	}
	c.tail = n
	c.length++
}

// search returns the node holding key, or nil
func (c *chain[V]) search(key string) *node[V] {
	for current := c.head; current != nil; current = current.next {
		if current.key == key {
			return current
		}
	}
	return nil
}

// delete unlinks the node holding key and returns its value
func (c *chain[V]) delete(key string) (V, bool) {
	var previous *node[V]
	for current := c.head; current != nil; current = current.next {
		if current.key != key {
			previous = current
			continue
		}
		if previous == nil {
			c.head = current.next
		} else {
			previous.next = current.next
		}
		if c.tail == current {
			c.tail = previous
		}
		c.length--
		return current.val, true
	}
	return *new(V), false
}

// scan calls it with every entry in chain order. It returns false
// if the iterator asked to stop.
func (c *chain[V]) scan(it hashmap.Iterator[V]) bool {
	for current := c.head; current != nil; current = current.next {
		if !it(current.key, current.val) {
			return false
		}
	}
	return true
}

func (c *chain[V]) len() int {
	return c.length
}

func (c *chain[V]) String() string {
	var sb strings.Builder
	for current := c.head; current != nil; current = current.next {
		if current != c.head {
			sb.WriteString(" -> ")
		}
		fmt.Fprintf(&sb, "%s: %v", current.key, current.val)
	}
	return sb.String()
}
