package file

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-sif/tidy/datasource/parser/dsv"
	"github.com/stretchr/testify/require"
)

func TestLoadGlob(t *testing.T) {
	dir, err := ioutil.TempDir("", "tidy-file-test")
	require.Nil(t, err)
	defer os.RemoveAll(dir)
	require.Nil(t, ioutil.WriteFile(filepath.Join(dir, "b.csv"), []byte("name\nthree\n"), 0644))
	require.Nil(t, ioutil.WriteFile(filepath.Join(dir, "a.csv"), []byte("name\none\ntwo\n"), 0644))

	tbl, err := Load(filepath.Join(dir, "*.csv"), dsv.CreateParser(&dsv.ParserConf{}), nil)
	require.Nil(t, err)
	names, err := tbl.Column("name")
	require.Nil(t, err)
	require.Equal(t, []interface{}{"one", "two", "three"}, names)

	_, err = Load(filepath.Join(dir, "*.tsv"), dsv.CreateParser(&dsv.ParserConf{}), nil)
	require.NotNil(t, err)
}
