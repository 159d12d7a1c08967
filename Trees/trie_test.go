package Trees

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sorted(s []string) []string {
	slices.Sort(s)
	return s
}

func TestTrie_Distinct(t *testing.T) {
	tr := NewTrie(WithWords("car", "cart", "care", "cat", "dog"))
	tr.Add("car")
	assert.True(t, tr.Has("car"))
	assert.False(t, tr.Has("ca"))
	assert.False(t, tr.Has("cars"))
	assert.Equal(t, []string{"car", "care", "cart"}, sorted(tr.FindAll("car", false)))
	assert.Equal(t, []string{"car", "care", "cart", "cat", "dog"}, sorted(tr.FindAll("", true)))
	assert.Empty(t, tr.FindAll("x", true))

	assert.True(t, tr.Remove("car"))
	assert.False(t, tr.Has("car"))
	assert.False(t, tr.Remove("car"))
	assert.True(t, tr.Has("cart"))
	assert.False(t, tr.RemoveAll("nope"))
}

func TestTrie_Duplicates(t *testing.T) {
	tr := NewTrie(WithDuplicates(true), WithWords("go", "go", "gopher"))
	tr.Add("go")
	assert.Equal(t, 3, tr.NodeMatchingPrefix("go").WordCount())
	assert.Equal(t, []string{"go", "go", "go", "gopher"}, sorted(tr.FindAll("go", false)))
	assert.Equal(t, []string{"go", "gopher"}, sorted(tr.FindAll("go", true)))

	assert.True(t, tr.Remove("go"))
	assert.True(t, tr.Has("go"))
	assert.Len(t, tr.FindAll("go", false), 3)
	assert.True(t, tr.RemoveAll("go"))
	assert.False(t, tr.Has("go"))
	assert.False(t, tr.Remove("go"))
	assert.Equal(t, []string{"gopher"}, tr.FindAll("go", false))
}

func TestTrie_Nodes(t *testing.T) {
	tr := NewTrie(WithWords("héllo", "hey"))
	root := tr.NodeMatchingPrefix("")
	assert.Equal(t, rune(0), root.Char())
	assert.Equal(t, 1, root.Len())
	h := root.Child('h')
	assert.Equal(t, 'h', h.Char())
	assert.Equal(t, 2, h.Len())
	assert.NotNil(t, h.Child('é'))
	assert.Nil(t, h.Child('x'))
	assert.Nil(t, tr.NodeMatchingPrefix("hz"))
	assert.Equal(t, 0, tr.NodeMatchingPrefix("hé").WordCount())
	assert.Equal(t, []string{"héllo"}, tr.FindAll("hé", true))
}

func TestTrie_EmptyWord(t *testing.T) {
	tr := NewTrie()
	assert.False(t, tr.Has(""))
	tr.Add("")
	assert.True(t, tr.Has(""))
	assert.Equal(t, []string{""}, tr.FindAll("", true))
}

func TestTrie_InvalidUTF8(t *testing.T) {
	tr := NewTrie(WithWords("\xff", "a\xfeb"))
	assert.True(t, tr.Has("\xff"))
	assert.True(t, tr.Has("\uFFFD"))
	assert.True(t, tr.Has("a\uFFFDb"))
	assert.Equal(t, []string{"a\uFFFDb", "\uFFFD"}, sorted(tr.FindAll("", true)))
	assert.Equal(t, []string{"\uFFFD"}, tr.FindAll("\xff", true))
}
