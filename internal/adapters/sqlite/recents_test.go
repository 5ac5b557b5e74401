package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestRecents(t *testing.T) *Recents {
	t.Helper()
	r := NewRecents()
	require.NoError(t, r.Open(filepath.Join(t.TempDir(), "recents.db")))
	t.Cleanup(func() { r.Close() })
	return r
}

func TestRecentsTouchAndList(t *testing.T) {
	r := openTestRecents(t)

	require.NoError(t, r.Touch("/tmp/a.json", "Alpha"))
	require.NoError(t, r.Touch("/tmp/b.json", "Beta"))

	docs, err := r.List(10)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "Beta", docs[0].Label)
}

func TestRecentsTouchReplacesEntry(t *testing.T) {
	r := openTestRecents(t)

	require.NoError(t, r.Touch("/tmp/a.json", "old"))
	require.NoError(t, r.Touch("/tmp/a.json", "new"))

	docs, err := r.List(10)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "new", docs[0].Label)
}

func TestRecentsListLimit(t *testing.T) {
	r := openTestRecents(t)

	for _, p := range []string{"/a", "/b", "/c"} {
		require.NoError(t, r.Touch(p, ""))
	}

	docs, err := r.List(2)
	require.NoError(t, err)
	assert.Len(t, docs, 2)
}

func TestDocumentLabel(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		want     string
	}{
		{name: "name key", contents: `{"name":"My Doc","x":1}`, want: "My Doc"},
		{name: "title fallback", contents: `{"title":"Titled"}`, want: "Titled"},
		{name: "name wins over title", contents: `{"title":"T","name":"N"}`, want: "N"},
		{name: "no label", contents: `{"x":1}`, want: ""},
		{name: "not an object", contents: `[1,2]`, want: ""},
		{name: "invalid json", contents: `{{{`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DocumentLabel(tt.contents))
		})
	}
}
