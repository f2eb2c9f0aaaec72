package nlp

import (
	"strings"
	"unicode"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/jdkato/prose/v2"
)

var auxiliaries = map[string]bool{
	"be": true, "am": true, "is": true, "are": true, "was": true, "were": true, "been": true, "being": true,
	"have": true, "has": true, "had": true, "do": true, "does": true, "did": true,
	"'s": true, "'re": true, "'m": true, "'ve": true, "'d": true,
}

// ProseEngine is an English Engine, tagging with prose and lemmatizing with golem
type ProseEngine struct {
	lemmatizer *golem.Lemmatizer
}

// CreateProseEngine loads the English lemma dictionary and returns a new ProseEngine
func CreateProseEngine() (*ProseEngine, error) {
	lemmatizer, err := golem.New(en.New())
	if err != nil {
		return nil, err
	}
	return &ProseEngine{lemmatizer: lemmatizer}, nil
}

// Tokens tokenizes and tags text. prose discards whitespace, so no returned Token is a space.
func (e *ProseEngine) Tokens(text string) ([]Token, error) {
	if strings.TrimSpace(text) == "" {
		return []Token{}, nil
	}
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, err
	}
	tokens := make([]Token, 0, len(doc.Tokens()))
	for _, tok := range doc.Tokens() {
		pos := universalPOS(tok.Tag, tok.Text)
		lemma := tok.Text
		if pos != PunctPOS && pos != PropnPOS {
			lemma = e.lemmatizer.Lemma(strings.ToLower(tok.Text))
		}
		tokens = append(tokens, Token{
			Text:    tok.Text,
			Lemma:   lemma,
			POS:     pos,
			IsSpace: strings.TrimFunc(tok.Text, unicode.IsSpace) == "",
		})
	}
	return tokens, nil
}

// universalPOS maps a Penn Treebank tag to a universal part-of-speech tag
func universalPOS(tag string, text string) string {
	switch {
	case tag == "MD":
		return AuxPOS
	case strings.HasPrefix(tag, "VB"):
		if auxiliaries[strings.ToLower(text)] {
			return AuxPOS
		}
		return VerbPOS
	case tag == "NNP" || tag == "NNPS":
		return PropnPOS
	case strings.HasPrefix(tag, "NN"):
		return NounPOS
	case strings.HasPrefix(tag, "JJ"):
		return AdjPOS
	case strings.HasPrefix(tag, "RB") || tag == "WRB":
		return AdvPOS
	case tag == "PRP" || tag == "PRP$" || tag == "WP" || tag == "WP$" || tag == "EX":
		return PronPOS
	case tag == "DT" || tag == "PDT" || tag == "WDT":
		return DetPOS
	case tag == "IN":
		return AdpPOS
	case tag == "CC":
		return CConjPOS
	case tag == "CD":
		return NumPOS
	case tag == "UH":
		return IntjPOS
	case tag == "TO" || tag == "RP" || tag == "POS":
		return PartPOS
	case tag == "SYM" || tag == "$" || tag == "#":
		return SymPOS
	case tag == "-LRB-" || tag == "-RRB-" || strings.IndexFunc(tag, unicode.IsLetter) < 0:
		return PunctPOS
	default:
		return OtherPOS
	}
}
