package nlp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUniversalPOS(t *testing.T) {
	require.Equal(t, VerbPOS, universalPOS("VBG", "running"))
	require.Equal(t, AuxPOS, universalPOS("VBZ", "is"))
	require.Equal(t, AuxPOS, universalPOS("MD", "will"))
	require.Equal(t, PropnPOS, universalPOS("NNP", "Kristie"))
	require.Equal(t, NounPOS, universalPOS("NNS", "bananas"))
	require.Equal(t, PunctPOS, universalPOS(".", "."))
	require.Equal(t, PunctPOS, universalPOS(",", ","))
	require.Equal(t, OtherPOS, universalPOS("FW", "c'est"))
}

func TestProseEngineLemmas(t *testing.T) {
	engine, err := CreateProseEngine()
	require.Nil(t, err)
	tokens, err := engine.Tokens("I went running today.")
	require.Nil(t, err)
	lemmas := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		require.False(t, tok.IsSpace)
		lemmas = append(lemmas, tok.Lemma)
	}
	require.Contains(t, lemmas, "run")
	require.Contains(t, lemmas, "go")

	tokens, err = engine.Tokens("   ")
	require.Nil(t, err)
	require.Empty(t, tokens)
}
