package wordbank

import (
	"sync"

	"github.com/NivBraz/anagram-service/pkg/anagram"
)

// WordBank guards an anagram table for use from several goroutines.
type WordBank struct {
	table *anagram.Table
	mu    sync.RWMutex
}

func New() *WordBank {
	return &WordBank{
		table: anagram.New(),
	}
}

// Add stores word and reports whether it had any letters to store.
func (wb *WordBank) Add(word string) bool {
	if anagram.Normalize(word) == "" {
		return false
	}
	wb.mu.Lock()
	defer wb.mu.Unlock()
	wb.table.Insert(word)
	return true
}

// Anagrams returns the stored anagrams of letters in insertion order.
func (wb *WordBank) Anagrams(letters string) []string {
	wb.mu.RLock()
	defer wb.mu.RUnlock()

	var words []string
	wb.table.Lookup(letters, func(w string) {
		words = append(words, w)
	})
	return words
}

func (wb *WordBank) Len() int {
	wb.mu.RLock()
	defer wb.mu.RUnlock()
	return wb.table.Len()
}
