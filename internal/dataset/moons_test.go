package dataset_test

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/micrograd/internal/dataset"
)

func TestReadMoonsCSV(t *testing.T) {
	input := "x0,x1,y\n0.5,-1.25,0\n 2, 3e-1, 1\n-0.1,0.2,1\n"
	data, err := dataset.ReadMoonsCSV(strings.NewReader(input), 0)
	require.NoError(t, err)

	assert.Equal(t, 3, data.NumSamples())
	assert.Equal(t, [2]float64{0.5, -1.25}, data.X[0])
	assert.Equal(t, [2]float64{2, 0.3}, data.X[1])
	assert.Equal(t, []int{0, 1, 1}, data.Y)
	assert.Equal(t, -1.0, data.Signed(0))
	assert.Equal(t, 1.0, data.Signed(1))
}

func TestReadMoonsCSV_MaxSamples(t *testing.T) {
	input := "x0,x1,y\n0,0,0\n1,1,1\n2,2,0\n"
	data, err := dataset.ReadMoonsCSV(strings.NewReader(input), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, data.NumSamples())
}

func TestReadMoonsCSV_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"BadCoordinate", "h,h,h\nabc,0,1\n", "invalid coordinate at row 1, column 1"},
		{"BadLabel", "h,h,h\n0,0,x\n", "invalid label at row 1"},
		{"LabelRange", "h,h,h\n0,0,0\n0,0,2\n", "label out of range {0, 1} at row 2"},
		{"FieldCount", "h,h,h\n0,0\n", "failed to read CSV row 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := dataset.ReadMoonsCSV(strings.NewReader(tt.input), 0)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, err := dataset.ReadMoonsCSV(strings.NewReader(""), 0)
	assert.ErrorIs(t, err, dataset.ErrEmpty)
	_, err = dataset.ReadMoonsCSV(strings.NewReader("x0,x1,y\n"), 0)
	assert.ErrorIs(t, err, dataset.ErrEmpty)
}

func TestLoadMoonsCSV_RoundTrip(t *testing.T) {
	original := dataset.MakeMoons(50, 0.1, rand.New(rand.NewSource(5)))
	var buf bytes.Buffer
	require.NoError(t, original.WriteCSV(&buf))

	path := filepath.Join(t.TempDir(), "make_moons.csv")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	loaded, err := dataset.LoadMoonsCSV(path, 0)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)

	_, err = dataset.LoadMoonsCSV(filepath.Join(t.TempDir(), "missing.csv"), 0)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMakeMoons(t *testing.T) {
	data := dataset.MakeMoons(101, 0, rand.New(rand.NewSource(9)))
	require.Equal(t, 101, data.NumSamples())

	counts := map[int]int{}
	for i, p := range data.X {
		counts[data.Y[i]]++
		// Without noise every point lies on its unit half circle.
		cx, cy := 0.0, 0.0
		if data.Y[i] == 1 {
			cx, cy = 1, 0.5
		}
		r2 := (p[0]-cx)*(p[0]-cx) + (p[1]-cy)*(p[1]-cy)
		assert.InDelta(t, 1.0, r2, 1e-9)
	}
	assert.Equal(t, 50, counts[0])
	assert.Equal(t, 51, counts[1])

	again := dataset.MakeMoons(101, 0, rand.New(rand.NewSource(9)))
	assert.Equal(t, data, again)
}

func TestSplitAndBatches(t *testing.T) {
	data := dataset.MakeMoons(10, 0.05, nil)
	train, val := data.Split(0.2)
	assert.Equal(t, 8, train.NumSamples())
	assert.Equal(t, 2, val.NumSamples())

	batches := data.Batches(4, nil)
	require.Len(t, batches, 3)
	assert.Equal(t, []int{0, 1, 2, 3}, batches[0])
	assert.Equal(t, []int{8, 9}, batches[2])

	assert.Len(t, data.Batches(0, nil), 1)

	seen := map[int]bool{}
	for _, b := range data.Batches(3, rand.New(rand.NewSource(1))) {
		for _, i := range b {
			seen[i] = true
		}
	}
	assert.Len(t, seen, 10)
}
