// Package nlp defines the natural-language collaborator used by Tidy's text cleaning helpers,
// along with an implementation built on prose (tokenization and tagging) and golem (lemmatization).
package nlp

// Universal part-of-speech tags produced by Engines
const (
	AdjPOS   = "ADJ"
	AdpPOS   = "ADP"
	AdvPOS   = "ADV"
	AuxPOS   = "AUX"
	CConjPOS = "CCONJ"
	DetPOS   = "DET"
	IntjPOS  = "INTJ"
	NounPOS  = "NOUN"
	NumPOS   = "NUM"
	PartPOS  = "PART"
	PronPOS  = "PRON"
	PropnPOS = "PROPN"
	PunctPOS = "PUNCT"
	SpacePOS = "SPACE"
	SymPOS   = "SYM"
	VerbPOS  = "VERB"
	OtherPOS = "X"
)

// Token is a single unit of text, as understood by an Engine
type Token struct {
	Text    string // Text is the literal text of the token
	Lemma   string // Lemma is the base form of the token
	POS     string // POS is the universal part-of-speech tag of the token
	IsSpace bool   // IsSpace is true iff the token consists only of whitespace
}

// Engine tokenizes, tags and lemmatizes text
type Engine interface {
	Tokens(text string) ([]Token, error)
}

// IsVerbal returns true iff a token acts as a verb or auxiliary
func (t Token) IsVerbal() bool {
	return t.POS == VerbPOS || t.POS == AuxPOS
}
