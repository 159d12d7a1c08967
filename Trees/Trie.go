package Trees

import "github.com/g-m-twostay/go-dsa/Queues"

// TrieNode is a node of a Trie. A word ends at a node iff its WordCount>0.
type TrieNode struct {
	ch       rune
	count    int
	children map[rune]*TrieNode
}

// Char on the edge leading to this node. 0 for the root.
func (n *TrieNode) Char() rune {
	return n.ch
}

// WordCount is how many times the word ending here was stored.
func (n *TrieNode) WordCount() int {
	return n.count
}

// Child reached through r, nil if there's none.
func (n *TrieNode) Child(r rune) *TrieNode {
	return n.children[r]
}

// Len is the number of children.
func (n *TrieNode) Len() int {
	return len(n.children)
}

// Trie stores words by their runes. In distinct mode, the default, adding a
// stored word again doesn't change anything; with duplicates every addition
// is counted.
type Trie struct {
	root       *TrieNode
	duplicates bool
}

// TrieOption configures NewTrie.
type TrieOption func(*trieConfig)

type trieConfig struct {
	words      []string
	duplicates bool
}

// WithWords adds words after construction.
func WithWords(words ...string) TrieOption {
	return func(c *trieConfig) {
		c.words = append(c.words, words...)
	}
}

// WithDuplicates sets whether repeated additions of a word are counted.
func WithDuplicates(store bool) TrieOption {
	return func(c *trieConfig) {
		c.duplicates = store
	}
}

func NewTrie(opts ...TrieOption) *Trie {
	var c trieConfig
	for _, opt := range opts {
		opt(&c)
	}
	u := &Trie{root: &TrieNode{children: map[rune]*TrieNode{}}, duplicates: c.duplicates}
	for _, w := range c.words {
		u.Add(w)
	}
	return u
}

// Add word, creating the missing nodes. word is walked rune by rune, so each
// invalid UTF-8 byte is stored as utf8.RuneError and comes back as U+FFFD
// from FindAll.
// Time: O(len(word))
func (u *Trie) Add(word string) {
	cur := u.root
	for _, r := range word {
		nx := cur.children[r]
		if nx == nil {
			nx = &TrieNode{ch: r, children: map[rune]*TrieNode{}}
			cur.children[r] = nx
		}
		cur = nx
	}
	if u.duplicates {
		cur.count++
	} else {
		cur.count = 1
	}
}

// Remove one occurrence of word. Returns false if word isn't stored.
// Time: O(len(word))
func (u *Trie) Remove(word string) bool {
	n := u.NodeMatchingPrefix(word)
	if n == nil || n.count == 0 {
		return false
	}
	n.count--
	return true
}

// RemoveAll occurrences of word. Returns false if word isn't stored.
// Time: O(len(word))
func (u *Trie) RemoveAll(word string) bool {
	n := u.NodeMatchingPrefix(word)
	if n == nil || n.count == 0 {
		return false
	}
	n.count = 0
	return true
}

// Has word.
// Time: O(len(word))
func (u *Trie) Has(word string) bool {
	n := u.NodeMatchingPrefix(word)
	return n != nil && n.count > 0
}

// NodeMatchingPrefix returns the node reached by following prefix, nil if
// no stored path matches it. The empty prefix gives the root.
// Time: O(len(prefix))
func (u *Trie) NodeMatchingPrefix(prefix string) *TrieNode {
	cur := u.root
	for _, r := range prefix {
		if cur = cur.children[r]; cur == nil {
			return nil
		}
	}
	return cur
}

// FindAll stored words starting with prefix. When distinct is false, a word
// is repeated as many times as it's stored. The order is unspecified.
// Words are rebuilt from runes, see [Trie.Add] for invalid UTF-8.
// Time: O(m), m is the number of nodes below the prefix.
func (u *Trie) FindAll(prefix string, distinct bool) []string {
	n := u.NodeMatchingPrefix(prefix)
	if n == nil {
		return nil
	}
	type item struct {
		n    *TrieNode
		word []rune
	}
	var words []string
	q := Queues.NewArrayQueue[item](16)
	for q.Enqueue(item{n, []rune(prefix)}); !q.IsEmpty(); {
		cur, _ := q.Dequeue()
		if cur.n.count > 0 {
			w := string(cur.word)
			if distinct {
				words = append(words, w)
			} else {
				for range cur.n.count {
					words = append(words, w)
				}
			}
		}
		for r, c := range cur.n.children {
			q.Enqueue(item{c, append(cur.word[:len(cur.word):len(cur.word)], r)})
		}
	}
	return words
}
