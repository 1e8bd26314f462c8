package collection

import (
	"sort"
	"sync"
)

type priorityElement[T any] struct {
	priority int
	sequence uint64
	item     T
}

//--------------------

type priorityChain[T any] []*priorityElement[T]

func (c priorityChain[T]) Len() int {
	return len(c)
}

func (c priorityChain[T]) Swap(i, j int) {
	c[i], c[j] = c[j], c[i]
}

func (c priorityChain[T]) Less(i, j int) bool {
	if c[i].priority != c[j].priority {
		return c[i].priority < c[j].priority
	}

	return c[i].sequence < c[j].sequence
}

//--------------------

// PriorityCollection keeps items ordered by ascending priority.
// Items with equal priority keep their insertion order.
type PriorityCollection[T any] struct {
	chain    priorityChain[T]
	sequence uint64
	sorted   bool
	equal    func(a, b T) bool
	mutex    sync.RWMutex
}

func (c *PriorityCollection[T]) Add(priority int, item T) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.sequence++
	c.chain = append(
		c.chain,
		&priorityElement[T]{
			priority: priority,
			sequence: c.sequence,
			item:     item,
		},
	)
	c.sorted = false
}

// Remove deletes every occurrence of item and returns how many were removed
func (c *PriorityCollection[T]) Remove(item T) int {
	return c.RemoveFunc(func(element T) bool {
		return c.equal(element, item)
	})
}

func (c *PriorityCollection[T]) RemoveFunc(match func(T) bool) int {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	kept := c.chain[:0]
	for _, element := range c.chain {
		if !match(element.item) {
			kept = append(kept, element)
		}
	}
	removed := len(c.chain) - len(kept)

	for i := len(kept); i < len(c.chain); i++ {
		c.chain[i] = nil
	}
	c.chain = kept

	return removed
}

func (c *PriorityCollection[T]) Contains(item T) bool {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	for _, element := range c.chain {
		if c.equal(element.item, item) {
			return true
		}
	}

	return false
}

// OrderedElements returns a snapshot, later changes of the collection do not affect it
func (c *PriorityCollection[T]) OrderedElements() []T {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if !c.sorted {
		sort.Sort(c.chain)
		c.sorted = true
	}

	result := make([]T, 0, len(c.chain))
	for _, element := range c.chain {
		result = append(result, element.item)
	}

	return result
}

func (c *PriorityCollection[T]) Count() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return len(c.chain)
}

func (c *PriorityCollection[T]) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.chain = make(priorityChain[T], 0)
	c.sorted = true
}

//--------------------

// NewPriorityCollection creates empty collection, equal is used by Remove and Contains
func NewPriorityCollection[T any](equal func(a, b T) bool) *PriorityCollection[T] {
	return &PriorityCollection[T]{
		chain:  make(priorityChain[T], 0),
		sorted: true,
		equal:  equal,
	}
}
