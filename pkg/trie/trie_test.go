package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(words ...string) *Trie {
	b := NewBuilder()
	for _, w := range words {
		b.Insert(w)
	}
	return b.Build()
}

func TestMatchFlags(t *testing.T) {
	tr := build("教育", "教育學", "總統", "總統大選", "中")

	testCases := []struct {
		span   string
		match  bool
		prefix bool
	}{
		{"教育", true, true},
		{"教育學", true, false},
		{"教", false, true},
		{"總統大", false, true},
		{"總統大選", true, false},
		{"中", true, false},
		{"貓", false, false},
		{"教育學貓", false, false},
		{"教貓", false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.span, func(t *testing.T) {
			buf := []rune(tc.span)
			hit := tr.Match(buf, 0, len(buf))
			assert.Equal(t, tc.match, hit.IsMatch(), "IsMatch")
			assert.Equal(t, tc.prefix, hit.IsPrefix(), "IsPrefix")
			assert.Equal(t, !tc.match && !tc.prefix, hit.IsUnmatch(), "IsUnmatch")
		})
	}
}

func TestMatchSpanInsideBuffer(t *testing.T) {
	tr := build("中国", "中国人")
	buf := []rune("我是中国人民")

	hit := tr.Match(buf, 2, 3)
	assert.True(t, hit.IsMatch())
	assert.False(t, hit.IsPrefix())
	assert.Equal(t, 2, hit.Begin())
	assert.Equal(t, 5, hit.End())
	assert.Equal(t, 3, hit.Len())

	miss := tr.Match(buf, 0, 2)
	assert.True(t, miss.IsUnmatch())
	assert.Equal(t, 1, miss.End(), "a miss stops at the first failing character")
}

func TestIncrementalMatch(t *testing.T) {
	tr := build("中国", "中国人")
	buf := []rune("中国人")

	hit := tr.Match(buf, 0, 1)
	require.True(t, hit.IsPrefix())
	require.False(t, hit.IsMatch())

	hit = tr.MatchWithHit(buf, 1, 1, hit)
	assert.True(t, hit.IsMatch())
	assert.True(t, hit.IsPrefix())
	assert.Equal(t, 0, hit.Begin())
	assert.Equal(t, 2, hit.End())

	hit = hit.Continue(buf, 2, 1)
	assert.True(t, hit.IsMatch())
	assert.False(t, hit.IsPrefix())
	assert.Equal(t, 3, hit.End())
}

func TestIncrementalMatchesWholeSpan(t *testing.T) {
	words := []string{"中华人民共和国", "中华", "人民", "共和国", "共和", "和平"}
	tr := build(words...)

	probes := append([]string{"中华人民", "共和国家", "和平共处"}, words...)
	for _, w := range probes {
		t.Run(w, func(t *testing.T) {
			buf := []rune(w)
			whole := tr.Match(buf, 0, len(buf))

			step := tr.Match(buf, 0, 1)
			for i := 1; i < len(buf) && !step.IsUnmatch(); i++ {
				step = step.Continue(buf, i, 1)
			}
			assert.Equal(t, whole.IsMatch(), step.IsMatch())
			assert.Equal(t, whole.IsPrefix(), step.IsPrefix())
		})
	}
}

func TestResumeFromUnmatched(t *testing.T) {
	tr := build("中国")
	buf := []rune("美国")

	miss := tr.Match(buf, 0, 1)
	require.True(t, miss.IsUnmatch())
	assert.True(t, tr.MatchWithHit(buf, 1, 1, miss).IsUnmatch())

	var zero Hit
	assert.True(t, zero.Continue(buf, 1, 1).IsUnmatch())

	other := build("美国")
	fromOther := other.Match(buf, 0, 1)
	require.True(t, fromOther.IsPrefix())
	assert.True(t, tr.MatchWithHit(buf, 1, 1, fromOther).IsUnmatch())
}

func TestZeroLengthProbe(t *testing.T) {
	tr := build("中国")
	buf := []rune("中国")

	hit := tr.Match(buf, 0, 0)
	assert.False(t, hit.IsMatch())
	assert.True(t, hit.IsPrefix(), "the root has children")
	assert.Equal(t, 0, hit.Len())

	first := tr.Match(buf, 0, 1)
	same := tr.MatchWithHit(buf, 1, 0, first)
	assert.Equal(t, first.IsMatch(), same.IsMatch())
	assert.Equal(t, first.IsPrefix(), same.IsPrefix())

	empty := NewBuilder().Build()
	assert.True(t, empty.Match(buf, 0, 0).IsUnmatch())
}

func TestOutOfRangeSpan(t *testing.T) {
	tr := build("中国")
	buf := []rune("中国")

	for name, span := range map[string][2]int{
		"negative begin":  {-1, 1},
		"negative length": {0, -1},
		"past the end":    {1, 2},
		"begin past end":  {3, 0},
	} {
		t.Run(name, func(t *testing.T) {
			assert.True(t, tr.Match(buf, span[0], span[1]).IsUnmatch())
		})
	}
}

func TestEmptyTrie(t *testing.T) {
	tr := NewBuilder().Build()
	assert.Equal(t, 1, tr.Len())
	assert.Equal(t, 0, tr.Words())
	assert.True(t, tr.Lookup("中").IsUnmatch())
}

func TestBuilderIsIdempotent(t *testing.T) {
	once := build("你好", "世界")

	b := NewBuilder()
	assert.True(t, b.Insert("你好"))
	assert.True(t, b.Insert("世界"))
	assert.False(t, b.Insert("你好"))
	assert.False(t, b.Insert(""))
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, 1, b.Duplicates())

	twice := b.Build()
	assert.Equal(t, once.Len(), twice.Len())
	assert.Equal(t, once.Words(), twice.Words())
	for _, w := range []string{"你好", "世界", "你", "世", "好"} {
		assert.Equal(t, once.Lookup(w), withTrie(twice.Lookup(w), once), w)
	}
}

func TestCaseIsPreserved(t *testing.T) {
	tr := build("iPhone")
	assert.True(t, tr.Lookup("iPhone").IsMatch())
	assert.True(t, tr.Lookup("iphone").IsUnmatch())
}

func TestHitString(t *testing.T) {
	tr := build("中国", "中国人")
	assert.Equal(t, "Hit[0,2) match|prefix", tr.Lookup("中国").String())
	assert.Equal(t, "Hit[0,1) unmatch", tr.Lookup("美").String())
}

// withTrie rebinds a hit to another trie so hits from equal tries compare equal.
func withTrie(h Hit, t *Trie) Hit {
	h.trie = t
	return h
}
