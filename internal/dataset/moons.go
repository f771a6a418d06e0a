// Package dataset loads and generates the two-moons binary classification data.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"strconv"
)

// Moons holds two-dimensional points with 0/1 class labels.
type Moons struct {
	X [][2]float64 // [num_samples][2]
	Y []int        // [num_samples], each 0 or 1
}

// ErrEmpty is returned when a CSV file holds no data rows.
var ErrEmpty = errors.New("dataset: no samples")

// LoadMoonsCSV loads points from a CSV file.
//
// CSV Format:
//
//	x0,x1,label
//	0.97,0.24,0
//	1.84,-0.11,1
//
// The header row is skipped. maxSamples limits how many rows are read
// (0 = load all).
func LoadMoonsCSV(filename string, maxSamples int) (*Moons, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ReadMoonsCSV(file, maxSamples)
}

// ReadMoonsCSV parses the CSV format accepted by LoadMoonsCSV from r.
func ReadMoonsCSV(r io.Reader, maxSamples int) (*Moons, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 3
	reader.TrimLeadingSpace = true

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("CSV file is missing header: %w", ErrEmpty)
		}
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	data := &Moons{}
	for row := 1; maxSamples <= 0 || data.NumSamples() < maxSamples; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row %d: %w", row, err)
		}

		var point [2]float64
		for j := range point {
			point[j], err = strconv.ParseFloat(record[j], 64)
			if err != nil {
				return nil, fmt.Errorf("invalid coordinate at row %d, column %d: %w", row, j+1, err)
			}
		}
		label, err := strconv.Atoi(record[2])
		if err != nil {
			return nil, fmt.Errorf("invalid label at row %d: %w", row, err)
		}
		if label != 0 && label != 1 {
			return nil, fmt.Errorf("label out of range {0, 1} at row %d: %d", row, label)
		}

		data.X = append(data.X, point)
		data.Y = append(data.Y, label)
	}

	if data.NumSamples() == 0 {
		return nil, ErrEmpty
	}
	return data, nil
}

// MakeMoons generates n points on two interleaving half circles with
// Gaussian noise of the given standard deviation, shuffled with rng.
//
// The outer moon (label 0) is (cos t, sin t) and the inner moon (label 1) is
// (1 - cos t, 0.5 - sin t) for t evenly spaced over [0, π].
func MakeMoons(n int, noise float64, rng *rand.Rand) *Moons {
	if rng == nil {
		rng = rand.New(rand.NewSource(1)) //nolint:gosec // Deterministic synthetic data
	}
	nOuter := n / 2
	nInner := n - nOuter

	data := &Moons{
		X: make([][2]float64, 0, n),
		Y: make([]int, 0, n),
	}
	for i := range nOuter {
		t := linspace(i, nOuter)
		data.X = append(data.X, [2]float64{math.Cos(t), math.Sin(t)})
		data.Y = append(data.Y, 0)
	}
	for i := range nInner {
		t := linspace(i, nInner)
		data.X = append(data.X, [2]float64{1 - math.Cos(t), 0.5 - math.Sin(t)})
		data.Y = append(data.Y, 1)
	}

	for i := range data.X {
		data.X[i][0] += noise * rng.NormFloat64()
		data.X[i][1] += noise * rng.NormFloat64()
	}
	data.Shuffle(rng)
	return data
}

// linspace returns the i-th of n evenly spaced points over [0, π].
func linspace(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return math.Pi * float64(i) / float64(n-1)
}

// NumSamples returns the total number of samples in the dataset.
func (d *Moons) NumSamples() int {
	return len(d.X)
}

// Signed returns the label of sample i mapped to -1 or +1.
func (d *Moons) Signed(i int) float64 {
	if d.Y[i] == 0 {
		return -1
	}
	return 1
}

// Shuffle permutes the samples in place.
func (d *Moons) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.X), func(i, j int) {
		d.X[i], d.X[j] = d.X[j], d.X[i]
		d.Y[i], d.Y[j] = d.Y[j], d.Y[i]
	})
}

// Split splits the dataset into train and validation sets.
// The returned sets share storage with d.
func (d *Moons) Split(validationRatio float64) (*Moons, *Moons) {
	splitIdx := int(float64(d.NumSamples()) * (1.0 - validationRatio))
	splitIdx = max(0, min(splitIdx, d.NumSamples()))

	return &Moons{X: d.X[:splitIdx], Y: d.Y[:splitIdx]},
		&Moons{X: d.X[splitIdx:], Y: d.Y[splitIdx:]}
}

// Batches returns index batches of at most batchSize samples.
// A nil rng keeps the original order; batchSize <= 0 yields one batch.
func (d *Moons) Batches(batchSize int, rng *rand.Rand) [][]int {
	n := d.NumSamples()
	if batchSize <= 0 || batchSize > n {
		batchSize = n
	}
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	if rng != nil {
		rng.Shuffle(n, func(i, j int) { indices[i], indices[j] = indices[j], indices[i] })
	}

	var batches [][]int
	for i := 0; i < n; i += batchSize {
		batches = append(batches, indices[i:min(i+batchSize, n)])
	}
	return batches
}

// WriteCSV writes the dataset in the format read by ReadMoonsCSV.
func (d *Moons) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"x0", "x1", "label"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for i, p := range d.X {
		record := []string{
			strconv.FormatFloat(p[0], 'g', -1, 64),
			strconv.FormatFloat(p[1], 'g', -1, 64),
			strconv.Itoa(d.Y[i]),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", i+1, err)
		}
	}
	writer.Flush()
	return writer.Error()
}
