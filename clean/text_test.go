package clean

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/errors"
	"github.com/go-sif/tidy/nlp"
	"github.com/stretchr/testify/require"
)

const testEmail = `
    Hello Jane,

    My name is Kristie. I have a question for you.

    Thanks for your help,
    Kristie
    Head of PR at FakeCompany
    `

// fakeEngine tags whitespace-separated words, treating only the given words as verbs
type fakeEngine struct {
	verbs map[string]bool
	err   error
}

func (e *fakeEngine) Tokens(text string) ([]nlp.Token, error) {
	if e.err != nil {
		return nil, e.err
	}
	var tokens []nlp.Token
	for _, word := range strings.Fields(text) {
		lemma := strings.ToLower(strings.Trim(word, ".,"))
		pos := nlp.NounPOS
		if e.verbs[lemma] {
			pos = nlp.VerbPOS
		}
		tokens = append(tokens, nlp.Token{Text: word, Lemma: lemma, POS: pos})
	}
	return tokens, nil
}

func createFakeEngine(verbs ...string) *fakeEngine {
	e := &fakeEngine{verbs: make(map[string]bool)}
	for _, v := range verbs {
		e.verbs[v] = true
	}
	return e
}

func TestRemoveNames(t *testing.T) {
	names := CreateNameList("John", " ", "Jane")
	require.Equal(t, 2, names.Len())
	require.Equal(t, "Hello  ", names.RemoveNames("Hello John"))
	require.Equal(t, "Johnny says hi", names.RemoveNames("Johnny says hi"))
	require.Equal(t, "  and  !", names.RemoveNames("John and Jane!"))
	require.Equal(t, "  ", names.RemoveNames("JohnJohn"))
	require.Equal(t, "Hello  ", RemoveNames("Hello John"))
}

func TestDefaultNameList(t *testing.T) {
	names := DefaultNameList()
	require.Greater(t, names.Len(), 100)
	require.Equal(t, "Dear  ,", names.RemoveNames("Dear Kristie,"))
}

func TestReadNameList(t *testing.T) {
	names, err := ReadNameList(strings.NewReader("name,origin\nAlice,x\n\nBob,y\n"))
	require.Nil(t, err)
	require.Equal(t, 2, names.Len())
	require.Equal(t, "  met  ", names.RemoveNames("Alice met Bob"))

	_, err = ReadNameList(strings.NewReader("first\nAlice\n"))
	require.NotNil(t, err)
	_, ok := err.(errors.ColumnNotFoundError)
	require.True(t, ok)
}

func TestLoadNameList(t *testing.T) {
	dir, err := ioutil.TempDir("", "names")
	require.Nil(t, err)
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "names.csv")
	require.Nil(t, ioutil.WriteFile(path, []byte("name\nZed\n"), 0644))
	names, err := LoadNameList(path)
	require.Nil(t, err)
	require.Equal(t, "Hi  ", names.RemoveNames("Hi Zed"))
	_, err = LoadNameList(filepath.Join(dir, "missing.csv"))
	require.NotNil(t, err)
}

func TestRemoveLinks(t *testing.T) {
	cleaned := RemoveLinks("Here's a link: www.google.com Thanks!")
	require.False(t, strings.Contains(cleaned, ".com"))
	require.Equal(t, "Here's a link:  Thanks!", cleaned)
	require.Equal(t, "see  now", RemoveLinks("see https://example.org/path?q=1 now"))
	require.Equal(t, "no links here.", RemoveLinks("no links here."))
}

func TestLemmatize(t *testing.T) {
	engine := &fakeEngine{}
	lemmas, err := Lemmatize(engine, "Running Dogs")
	require.Nil(t, err)
	require.Equal(t, []string{"running", "dogs"}, lemmas)

	spaced := tokenFunc(func(text string) ([]nlp.Token, error) {
		return []nlp.Token{{Text: "a", Lemma: "a"}, {Text: " ", Lemma: " ", IsSpace: true}, {Text: "b", Lemma: "b"}}, nil
	})
	lemmas, err = Lemmatize(spaced, "a  b")
	require.Nil(t, err)
	require.Equal(t, []string{"a", "b"}, lemmas)

	_, err = Lemmatize(nil, "text")
	require.NotNil(t, err)
}

type tokenFunc func(text string) ([]nlp.Token, error)

func (f tokenFunc) Tokens(text string) ([]nlp.Token, error) {
	return f(text)
}

func TestRemoveEmailGreetingsSignatures(t *testing.T) {
	cleaned, err := RemoveEmailGreetingsSignatures(createFakeEngine("is", "have"), testEmail)
	require.Nil(t, err)
	require.False(t, strings.Contains(cleaned, "Hello"))
	require.False(t, strings.Contains(cleaned, "Thanks for your help"))
	require.False(t, strings.Contains(cleaned, "Head of PR"))
	require.True(t, strings.Contains(cleaned, "I have a question for you."))
}

func TestRemoveEmailGreetingsSignaturesKeepsLinksAndPunctuation(t *testing.T) {
	text := "Visit http://example.com\n-\nRegards"
	cleaned, err := RemoveEmailGreetingsSignatures(createFakeEngine(), text)
	require.Nil(t, err)
	require.Equal(t, "Visit http://example.com\n-\n", cleaned)
}

func TestRemoveEmailGreetingsSignaturesFailures(t *testing.T) {
	_, err := RemoveEmailGreetingsSignatures(nil, testEmail)
	require.NotNil(t, err)
	engineErr := fmt.Errorf("engine failure")
	_, err = RemoveEmailGreetingsSignatures(&fakeEngine{err: engineErr}, testEmail)
	require.Equal(t, engineErr, err)
}

func TestRemoveEmailGreetingsSignaturesWithProse(t *testing.T) {
	engine, err := nlp.CreateProseEngine()
	require.Nil(t, err)
	cleaned, err := RemoveEmailGreetingsSignatures(engine, testEmail)
	require.Nil(t, err)
	require.False(t, strings.Contains(cleaned, "Hello Jane"))
	require.True(t, strings.Contains(cleaned, "I have a question for you."))
}

func TestTransformText(t *testing.T) {
	tbl := createTestTable(t)
	upper, err := TransformText(tbl, "text", func(s string) (string, error) {
		return strings.ToUpper(s), nil
	})
	require.Nil(t, err)
	text, err := upper.GetRow(2).GetString("text")
	require.Nil(t, err)
	require.Equal(t, "I LIKE BANANAS", text)
	// the source is untouched
	text, err = tbl.GetRow(2).GetString("text")
	require.Nil(t, err)
	require.Equal(t, "i like bananas", text)

	_, err = TransformText(tbl, "int", func(s string) (string, error) { return s, nil })
	require.NotNil(t, err)
	_, err = TransformText(tbl, "missing", func(s string) (string, error) { return s, nil })
	require.NotNil(t, err)
	fnErr := fmt.Errorf("failed")
	_, err = TransformText(tbl, "text", func(s string) (string, error) { return "", fnErr })
	require.Equal(t, fnErr, err)
}

func TestTransformTextOnCategories(t *testing.T) {
	compressed, err := CompressTable(createTestTable(t))
	require.Nil(t, err)
	res, err := TransformText(compressed, "text", func(s string) (string, error) {
		return RemoveNames(s + " John"), nil
	})
	require.Nil(t, err)
	require.IsType(t, &tidy.VarStringColumnType{}, res.Schema().ColumnTypes()[0])
	text, err := res.GetRow(0).GetString("text")
	require.Nil(t, err)
	require.Equal(t, "some text  ", text)
}
