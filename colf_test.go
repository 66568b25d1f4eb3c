package colf

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/arloliu/colf/errs"
	"github.com/arloliu/colf/format"
	"github.com/stretchr/testify/require"
)

func TestWriteFileReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "people.colf")

	cols := []format.Column{
		format.NewInt32Column("id", []int32{1, 2, 3}),
		format.NewFloat64Column("score", []float64{98.5, 87.0, 91.2}),
		format.NewStringColumn("name", []string{"Alice", "Bob", "Charlie"}),
	}

	require.NoError(t, WriteFile(path, cols...))

	got, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, cols, got)
}

func TestOpenFile_SelectiveRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "people.colf")

	require.NoError(t, WriteFile(path,
		format.NewInt32Column("id", []int32{1, 2, 3}),
		format.NewFloat64Column("score", []float64{98.5, 87.0, 91.2}),
		format.NewStringColumn("name", []string{"Alice", "Bob", "Charlie"}),
	))

	r, err := OpenFile(path)
	require.NoError(t, err)
	defer r.Close()

	require.Equal(t, int64(3), r.RowCount())

	cols, err := r.ReadColumns("name", "score")
	require.NoError(t, err)
	require.Len(t, cols, 2)
	require.Equal(t, []string{"Alice", "Bob", "Charlie"}, cols["name"].Strings)
	require.Equal(t, []float64{98.5, 87.0, 91.2}, cols["score"].Floats)
}

func TestNewReader_InMemory(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.Add(format.NewStringColumn("tag", []string{"a", "b"})))

	data, err := w.Finish()
	require.NoError(t, err)

	r, err := NewReader(bytes.NewReader(data))
	require.NoError(t, err)

	col, err := r.ReadColumn("tag")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, col.Strings)
}

func TestWriteFile_Validation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.colf")

	err := WriteFile(path,
		format.NewInt32Column("id", []int32{1, 2}),
		format.NewInt32Column("id", []int32{3, 4}),
	)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrDuplicateColumnName)
}
