package clean

import (
	"regexp"
	"strings"
	"sync"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/errors"
	"github.com/go-sif/tidy/nlp"
	"github.com/go-sif/tidy/table"
)

// SignatureVerbRatio is the highest proportion of verbal tokens a line may contain and
// still be treated as a greeting or signature
const SignatureVerbRatio = 0.05

const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// http(s) and www links. The http forms accept an optional www. prefix.
var linkPattern = regexp.MustCompile(
	`https?://(?:www\.)?[a-zA-Z0-9][a-zA-Z0-9-]+[a-zA-Z0-9]\.[^\s]{2,}` +
		`|www\.[a-zA-Z0-9][a-zA-Z0-9-]+[a-zA-Z0-9]\.[^\s]{2,}` +
		`|https?://(?:www\.)?[a-zA-Z0-9]\.[^\s]{2,}` +
		`|www\.[a-zA-Z0-9]\.[^\s]{2,}`)

var (
	defaultNameList     *NameList
	defaultNameListOnce sync.Once
)

// RemoveNames redacts the names in DefaultNameList from text
func RemoveNames(text string) string {
	defaultNameListOnce.Do(func() {
		defaultNameList = DefaultNameList()
	})
	return defaultNameList.RemoveNames(text)
}

// RemoveLinks deletes http(s) and www links from text
func RemoveLinks(text string) string {
	return linkPattern.ReplaceAllString(text, "")
}

// Lemmatize returns the lemma of every non-space token in text
func Lemmatize(engine nlp.Engine, text string) ([]string, error) {
	if engine == nil {
		return nil, errors.InvalidArgumentError{Name: "engine", Reason: "must not be nil"}
	}
	tokens, err := engine.Tokens(text)
	if err != nil {
		return nil, err
	}
	lemmas := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if !token.IsSpace {
			lemmas = append(lemmas, token.Lemma)
		}
	}
	return lemmas, nil
}

// RemoveEmailGreetingsSignatures strips lines which read like greetings or signatures from an
// email body. A line is stripped when at most SignatureVerbRatio of its tokens are verbal, unless
// it contains a link or is a fragment of punctuation. Each stripped line is removed wherever it
// occurs in text.
func RemoveEmailGreetingsSignatures(engine nlp.Engine, text string) (string, error) {
	if engine == nil {
		return "", errors.InvalidArgumentError{Name: "engine", Reason: "must not be nil"}
	}
	var stripped []string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		ratio, err := verbRatio(engine, strings.TrimSpace(line))
		if err != nil {
			return "", err
		}
		if ratio <= SignatureVerbRatio {
			stripped = append(stripped, line)
		}
	}
	for _, line := range stripped {
		if strings.Contains(line, "http") || strings.Contains(punctuation, line) {
			continue
		}
		text = strings.ReplaceAll(text, line, "")
	}
	return text, nil
}

// verbRatio is the proportion of tokens in a line which are verbal. Empty lines have a ratio of 1.
func verbRatio(engine nlp.Engine, line string) (float64, error) {
	tokens, err := engine.Tokens(line)
	if err != nil {
		return 0, err
	}
	if len(tokens) == 0 {
		return 1.0, nil
	}
	verbs := 0
	for _, token := range tokens {
		if token.IsVerbal() {
			verbs++
		}
	}
	return float64(verbs) / float64(len(tokens)), nil
}

// TransformText produces a new Table in which every non-nil value of a string column has been
// passed through fn. The column becomes a VarString column.
func TransformText(t tidy.Table, colName string, fn func(string) (string, error)) (tidy.Table, error) {
	col, err := t.Schema().GetColumn(colName)
	if err != nil {
		return nil, err
	}
	if tidy.KindOf(col.Type()) != tidy.StringKind {
		return nil, errors.InvalidArgumentError{Name: colName, Reason: "must be a string column"}
	}
	values, err := t.Column(colName)
	if err != nil {
		return nil, err
	}
	for i, v := range values {
		if v == nil {
			continue
		}
		if values[i], err = fn(v.(string)); err != nil {
			return nil, err
		}
	}
	return table.ReplaceColumn(t, colName, &tidy.VarStringColumnType{}, values)
}
