package dataset_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KevinM0ney/thesis/pkg/dataset"
)

func TestReadNumeric(t *testing.T) {
	d, err := dataset.ReadNumeric(strings.NewReader("a,b\n1,2\n3.5,4\n"))
	require.NoError(t, err)

	n, p := d.Dims()
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, p)
	assert.Equal(t, []string{"a", "b"}, d.Columns)
	assert.Equal(t, 3.5, d.Rows[1][0])

	col, err := d.Column("b")
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4}, col)
}

func TestReadNumeric_MissingRequiredColumn(t *testing.T) {
	_, err := dataset.ReadNumeric(strings.NewReader("a,b\n1,2\n"), dataset.WithRequired("c"))
	require.ErrorIs(t, err, dataset.ErrDataFormat)
	assert.Contains(t, err.Error(), `"c"`)
}

func TestReadNumeric_EmptyInput(t *testing.T) {
	_, err := dataset.ReadNumeric(strings.NewReader(""))
	require.ErrorIs(t, err, dataset.ErrDataFormat)

	_, err = dataset.ReadNumeric(strings.NewReader("a,b\n"))
	require.ErrorIs(t, err, dataset.ErrDataFormat)
}

func TestReadNumeric_NonNumericCell(t *testing.T) {
	_, err := dataset.ReadNumeric(strings.NewReader("a,b\n1,x\n"))
	require.ErrorIs(t, err, dataset.ErrDataFormat)
	assert.Contains(t, err.Error(), `"x"`)
}

func TestReadNumeric_RaggedRows(t *testing.T) {
	_, err := dataset.ReadNumeric(strings.NewReader("a,b\n1,2\n3\n"))
	require.ErrorIs(t, err, dataset.ErrDataFormat)
}

func TestReadNumeric_CustomDelimiter(t *testing.T) {
	d, err := dataset.ReadNumeric(strings.NewReader("a;b\n1;2\n"), dataset.WithComma(';'))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, d.Columns)
}

func TestLoadNumeric_MissingFile(t *testing.T) {
	_, err := dataset.LoadNumeric("does-not-exist.csv")
	require.ErrorIs(t, err, dataset.ErrDataFormat)
}

func TestReadCategorical(t *testing.T) {
	d, err := dataset.ReadCategorical(strings.NewReader("giornale,tema\ncorriere,etica\nwired,tecnologia\n"))
	require.NoError(t, err)

	n, p := d.Dims()
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, p)

	col, err := d.Column("tema")
	require.NoError(t, err)
	assert.Equal(t, []string{"etica", "tecnologia"}, col)

	_, err = d.Column("autore")
	require.ErrorIs(t, err, dataset.ErrDataFormat)
}

func TestMissing(t *testing.T) {
	assert.True(t, dataset.Missing(""))
	assert.True(t, dataset.Missing("NA"))
	assert.True(t, dataset.Missing("NaN"))
	assert.False(t, dataset.Missing("na"))
	assert.False(t, dataset.Missing("0"))
}
