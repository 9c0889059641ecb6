// pkg/anagram/anagram.go
package anagram

import "iter"

// TableSize is the fixed number of buckets. It is prime to reduce clustering.
const TableSize = 49999

// letterPrimes maps a..z to distinct primes, smaller primes for more common letters.
var letterPrimes = [26]uint32{
	5, 71, 37, 31, 2, 47, 59, 23, 11, 89, 79, 29, 43,
	13, 7, 53, 97, 19, 17, 3, 41, 73, 61, 83, 67, 101,
}

type node struct {
	word        string
	fingerprint uint32
	next        *node
}

// Table stores words keyed by their anagram fingerprint.
// It is not safe for concurrent use.
type Table struct {
	buckets [TableSize]*node
	tails   [TableSize]*node
	size    int
}

func New() *Table {
	return &Table{}
}

// Insert normalizes word and appends it to its bucket.
// Words with no letters are ignored.
func (t *Table) Insert(word string) {
	word = Normalize(word)
	if word == "" {
		return
	}

	fp, _ := Fingerprint(word)
	n := &node{word: word, fingerprint: fp}

	idx := fp % TableSize
	if t.tails[idx] == nil {
		t.buckets[idx] = n
	} else {
		t.tails[idx].next = n
	}
	t.tails[idx] = n
	t.size++
}

// Lookup calls visit once for every stored anagram of letters, in insertion order.
func (t *Table) Lookup(letters string, visit func(string)) {
	if visit == nil {
		return
	}
	for word := range t.Anagrams(letters) {
		visit(word)
	}
}

// Anagrams returns the stored anagrams of letters as a lazy sequence.
// A match requires equal full fingerprints and equal letter counts.
func (t *Table) Anagrams(letters string) iter.Seq[string] {
	return func(yield func(string) bool) {
		fp, count := Fingerprint(letters)
		if count == 0 {
			return
		}
		for p := t.buckets[fp%TableSize]; p != nil; p = p.next {
			if p.fingerprint == fp && len(p.word) == count {
				if !yield(p.word) {
					return
				}
			}
		}
	}
}

// Len returns the number of stored entries, duplicates included.
func (t *Table) Len() int {
	return t.size
}
