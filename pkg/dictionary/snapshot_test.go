package dictionary

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	opts := quietOptions(testBase())
	opts.Ext = fstest.MapFS{"extra.dic": {Data: []byte("北京\n中国\n")}}
	opts.Source = Properties{ExtDictKey: "extra.dic"}
	orig, err := Load(opts)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, orig.WriteSnapshot(&buf))
	assert.Equal(t, FormatSnapshot, DetectFormat(buf.Bytes()))

	restored, err := ReadSnapshot(&buf)
	require.NoError(t, err)

	for i, st := range restored.Stats() {
		want := orig.Stats()[i]
		assert.Equal(t, want.Words, st.Words, st.Kind.String())
		assert.Equal(t, want.Nodes, st.Nodes, st.Kind.String())
		assert.Equal(t, want.Duplicates, st.Duplicates, st.Kind.String())
	}

	for _, k := range Kinds {
		for _, w := range []string{"中国", "中国人", "北京", "中", "欧阳", "公里", "省", "在", "the", "th"} {
			a, b := lookup(orig, k, w), lookup(restored, k, w)
			assert.Equal(t, a.IsMatch(), b.IsMatch(), "%s/%s", k, w)
			assert.Equal(t, a.IsPrefix(), b.IsPrefix(), "%s/%s", k, w)
		}
	}
}

func TestReadSnapshotRejectsBadInput(t *testing.T) {
	d, err := Load(quietOptions(testBase()))
	require.NoError(t, err)
	var good bytes.Buffer
	require.NoError(t, d.WriteSnapshot(&good))

	testCases := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"word list", []byte("中国\n中国人\n")},
		{"truncated", good.Bytes()[:good.Len()/2]},
		{"header only", append([]byte(nil), snapshotMagic...)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadSnapshot(bytes.NewReader(tc.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadFromSnapshotFile(t *testing.T) {
	d, err := Load(quietOptions(testBase()))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "dict.snap")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, d.WriteSnapshot(f))
	require.NoError(t, f.Close())

	// The base lists are gone, so only the snapshot can satisfy the
	// critical dictionaries.
	opts := quietOptions(fstest.MapFS{})
	opts.Snapshot = path
	fromSnap, err := Load(opts)
	require.NoError(t, err)
	assert.True(t, lookup(fromSnap, Surname, "欧阳").IsMatch())
	assert.True(t, lookup(fromSnap, Main, "中国").IsPrefix())
}

func TestLoadFallsBackWhenSnapshotUnusable(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.snap")
	require.NoError(t, os.WriteFile(bad, []byte("not a snapshot"), 0644))

	for _, path := range []string{filepath.Join(dir, "missing.snap"), bad} {
		opts := quietOptions(testBase())
		opts.Snapshot = path
		d, err := Load(opts)
		require.NoError(t, err, path)
		assert.True(t, lookup(d, Main, "中国人").IsMatch(), path)
	}

	opts := quietOptions(fstest.MapFS{})
	opts.Snapshot = filepath.Join(dir, "missing.snap")
	_, err := Load(opts)
	assert.ErrorIs(t, err, ErrMissingDictionary)
}
