package preprocess_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KevinM0ney/thesis/pkg/dataset"
	"github.com/KevinM0ney/thesis/pkg/preprocess"
)

func TestTokenizer(t *testing.T) {
	tk := preprocess.NewTokenizer(preprocess.ItalianStopwords)

	got := tk.Tokens("Il Governo lancia un piano per l'Intelligenza Artificiale 2024")
	assert.Equal(t, []string{"governo", "lancia", "piano", "intelligenza", "artificiale"}, got)
}

func TestTokenizer_KeepDigits(t *testing.T) {
	tk := preprocess.NewTokenizer(nil)
	tk.KeepDigits = true

	assert.Equal(t, []string{"sole", "24", "ore"}, tk.Tokens("Sole 24 Ore"))
}

func TestTokenizer_MinLength(t *testing.T) {
	tk := preprocess.NewTokenizer(nil)
	tk.MinLength = 5

	assert.Equal(t, []string{"mondo"}, tk.Tokens("ciao al mondo"))
}

func TestTokenizer_CompoundTermsSurvive(t *testing.T) {
	tk := preprocess.NewTokenizer(nil)
	assert.Equal(t, []string{"machine_learning"}, tk.Tokens("machine_learning"))
}

func TestExpandColumn(t *testing.T) {
	tk := preprocess.NewTokenizer(preprocess.ItalianStopwords)
	d := categorical([]string{"giornale", "titolo"},
		[]string{"corriere", "Il futuro del lavoro"},
		[]string{"wired", "Robot e automazione"},
	)

	out, err := tk.ExpandColumn(d, "titolo")
	require.NoError(t, err)
	assert.Equal(t, []string{"giornale", "term"}, out.Columns)
	assert.Equal(t, [][]string{
		{"corriere", "futuro"},
		{"corriere", "lavoro"},
		{"wired", "robot"},
		{"wired", "automazione"},
	}, out.Rows)
}

func TestExpandColumn_UnknownColumn(t *testing.T) {
	tk := preprocess.NewTokenizer(nil)
	d := categorical([]string{"a"}, []string{"x"})

	_, err := tk.ExpandColumn(d, "testo")
	require.ErrorIs(t, err, dataset.ErrDataFormat)
}
