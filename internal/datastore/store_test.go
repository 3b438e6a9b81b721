package datastore

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir(), log.New(io.Discard, "", 0))
	require.NoError(t, err)
	return s
}

type record struct {
	Name  string   `json:"name"`
	Level int      `json:"level"`
	Items []string `json:"items"`
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	in := record{Name: "Goblin", Level: 3, Items: []string{"Goblin Ear", "Gold Pouch"}}
	require.True(t, s.Save("encounter_1", in))

	var out record
	require.True(t, s.Load("encounter_1", &out))
	assert.Equal(t, in, out)
}

func TestSave_WritesIndentedJSON(t *testing.T) {
	s := newTestStore(t)
	require.True(t, s.Save("doc", map[string]int{"a": 1}))

	b, err := os.ReadFile(filepath.Join(s.Dir(), "doc.json"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "{\n  \"a\": 1\n}")
}

func TestLoad_MissingIsAbsentNotError(t *testing.T) {
	s := newTestStore(t)
	var out record
	assert.False(t, s.Load("never_saved", &out))
}

func TestLoad_CorruptJSONIsAbsent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "bad.json"), []byte("{nope"), 0o644))

	var out record
	assert.False(t, s.Load("bad", &out))
}

func TestSave_UnmarshalableValueReportsFalse(t *testing.T) {
	s := newTestStore(t)
	assert.False(t, s.Save("ch", make(chan int)))
}

func TestSave_UnwritableDirReportsFalse(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits not enforced here")
	}
	s := newTestStore(t)
	require.NoError(t, os.Chmod(s.Dir(), 0o555))
	t.Cleanup(func() { _ = os.Chmod(s.Dir(), 0o755) })

	assert.False(t, s.Save("doc", record{}))
}

func TestKeys_TraversalRejected(t *testing.T) {
	s := newTestStore(t)

	assert.False(t, s.Save("../escape", record{}))
	assert.False(t, s.Save("a/b", record{}))
	assert.False(t, s.Save("", record{}))

	var out record
	assert.False(t, s.Load("../escape", &out))
}

func TestKeys_JSONSuffixIsOptional(t *testing.T) {
	s := newTestStore(t)
	require.True(t, s.Save("quest_1.json", record{Name: "x"}))

	var out record
	assert.True(t, s.Load("quest_1", &out))
	assert.Equal(t, "x", out.Name)
}

func TestListAndDelete(t *testing.T) {
	s := newTestStore(t)
	require.True(t, s.Save("b", record{}))
	require.True(t, s.Save("a", record{}))

	assert.Equal(t, []string{"a", "b"}, s.List())

	assert.True(t, s.Delete("a"))
	assert.Equal(t, []string{"b"}, s.List())

	// deleting a missing key is not a failure
	assert.True(t, s.Delete("a"))
}
