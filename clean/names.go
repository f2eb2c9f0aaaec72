package clean

import (
	"bytes"
	_ "embed" // for the default name list
	"io"
	"os"
	"strings"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/datasource/parser/dsv"
	"github.com/go-sif/tidy/errors"
)

//go:embed data/names.csv
var defaultNames []byte

// NameList is an ordered list of personal names to redact from text
type NameList struct {
	names []string
}

// CreateNameList builds a NameList from literal names. Empty names are ignored.
func CreateNameList(names ...string) *NameList {
	list := &NameList{names: make([]string, 0, len(names))}
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			list.names = append(list.names, name)
		}
	}
	return list
}

// DefaultNameList returns the built-in list of common English first names
func DefaultNameList() *NameList {
	list, err := ReadNameList(bytes.NewReader(defaultNames))
	if err != nil {
		panic(err)
	}
	return list
}

// LoadNameList reads a NameList from a delimited file whose header contains a "name" column
func LoadNameList(path string) (*NameList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadNameList(f)
}

// ReadNameList reads a NameList from delimited data whose header contains a "name" column
func ReadNameList(r io.Reader) (*NameList, error) {
	t, err := dsv.CreateParser(&dsv.ParserConf{}).Parse(r, nil)
	if err != nil {
		return nil, err
	}
	if !t.Schema().HasColumn("name") {
		return nil, errors.ColumnNotFoundError{Name: "name"}
	}
	names := make([]string, 0, t.NumRows())
	err = t.ForEachRow(func(row tidy.Row) error {
		if row.IsNil("name") {
			return nil
		}
		name, err := row.GetString("name")
		if err != nil {
			return err
		}
		names = append(names, name)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return CreateNameList(names...), nil
}

// Len returns the number of names in this NameList
func (l *NameList) Len() int {
	return len(l.names)
}

// RemoveNames replaces each occurrence of each name with a single space, unless the occurrence is
// followed by a lowercase ASCII letter (and is therefore likely part of a longer word). Names are
// applied in list order, each to the output of the last.
func (l *NameList) RemoveNames(text string) string {
	cleaned := text
	for _, name := range l.names {
		cleaned = removeName(cleaned, name)
	}
	return cleaned
}

func removeName(text string, name string) string {
	if !strings.Contains(text, name) {
		return text
	}
	var res strings.Builder
	pos := 0
	for pos < len(text) {
		i := strings.Index(text[pos:], name)
		if i < 0 {
			break
		}
		start := pos + i
		end := start + len(name)
		if end < len(text) && text[end] >= 'a' && text[end] <= 'z' {
			// part of another word; keep the first byte and search again from the next one
			res.WriteString(text[pos : start+1])
			pos = start + 1
			continue
		}
		res.WriteString(text[pos:start])
		res.WriteByte(' ')
		pos = end
	}
	res.WriteString(text[pos:])
	return res.String()
}
