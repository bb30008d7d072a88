package workbench

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Workbench, func()) {
	t.Helper()
	dir, err := ioutil.TempDir("", "")
	require.NoError(t, err)

	wb, err := NewWorkbench(dir + "/test.data")
	require.NoError(t, err)

	return wb, func() {
		wb.Close()
		os.RemoveAll(dir)
	}
}

func TestStoreSaveLoad(t *testing.T) {
	wb, cleanup := newTestStore(t)
	defer cleanup()

	rec, err := wb.store.Save("identity", "|- (A^ | A)", 100)
	require.NoError(t, err)
	require.NotEmpty(t, rec.ID)
	require.Equal(t, "identity", rec.Name)

	loaded, err := wb.store.Load("identity")
	require.NoError(t, err)
	require.Equal(t, rec.ID, loaded.ID)
	require.Equal(t, "|- (A^ | A)", loaded.Sequent)
	require.Equal(t, 100, loaded.Depth)
	require.False(t, loaded.CreatedAt.IsZero())
}

func TestStoreDuplicateName(t *testing.T) {
	wb, cleanup := newTestStore(t)
	defer cleanup()

	_, err := wb.store.Save("thm", "|- 1", 100)
	require.NoError(t, err)

	_, err = wb.store.Save("thm", "|- 1", 100)
	require.Error(t, err)
	require.Equal(t, "theorem already exists: thm", err.Error())
}

func TestStoreLoadMissing(t *testing.T) {
	wb, cleanup := newTestStore(t)
	defer cleanup()

	_, err := wb.store.Load("nope")
	require.Error(t, err)
	require.Equal(t, "no such theorem: nope", err.Error())
}

func TestStoreList(t *testing.T) {
	wb, cleanup := newTestStore(t)
	defer cleanup()

	require.Equal(t, 0, wb.store.count())

	_, err := wb.store.Save("one", "|- 1", 100)
	require.NoError(t, err)
	_, err = wb.store.Save("two", "|- top, B", 100)
	require.NoError(t, err)

	records, err := wb.store.List()
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, 2, wb.store.count())
}
