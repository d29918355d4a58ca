package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	draws := []Draw{
		{
			Inputs:  [][]float64{{0, 0.5}, {1, -1}},
			Outputs: [][]float64{{0.25}, {-3}},
		},
		{
			Inputs:  [][]float64{{0, 0.5}, {1, -1}},
			Outputs: [][]float64{{1e-9}, {2}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, draws))

	want := "draw,x0,x1,y0\n" +
		"0,0,0.5,0.25\n" +
		"0,1,-1,-3\n" +
		"1,0,0.5,1e-09\n" +
		"1,1,-1,2\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Empty(t, buf.String())
}

func TestWriteCSV_ShapeMismatch(t *testing.T) {
	var buf bytes.Buffer

	err := WriteCSV(&buf, []Draw{{Inputs: [][]float64{{0}}, Outputs: nil}})
	assert.EqualError(t, err, "export: draw 0 has 1 inputs but 0 outputs")

	err = WriteCSV(&buf, []Draw{
		{Inputs: [][]float64{{0}}, Outputs: [][]float64{{1}}},
		{Inputs: [][]float64{{0, 1}}, Outputs: [][]float64{{1}}},
	})
	assert.EqualError(t, err, "export: draw 1 sample 0 has shape (2, 1), want (1, 1)")
}
