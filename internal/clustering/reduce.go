package clustering

import (
	"errors"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Normalize scales every vector to unit L2 length; zero vectors stay zero
func Normalize(vectors [][]float32) [][]float64 {
	out := make([][]float64, len(vectors))
	for i, v := range vectors {
		row := make([]float64, len(v))
		for j, x := range v {
			row[j] = float64(x)
		}
		normalizeInPlace(row)
		out[i] = row
	}
	return out
}

func normalizeInPlace(row []float64) {
	norm := floats.Norm(row, 2)
	if norm == 0 {
		return
	}
	floats.Scale(1/norm, row)
}

// Reduce projects unit vectors onto their first dims principal components and re-normalizes them.
// Points are returned unchanged when there is nothing to reduce.
func Reduce(points [][]float64, dims int) ([][]float64, error) {
	if dims <= 0 || len(points) == 0 {
		return points, nil
	}
	n, d := len(points), len(points[0])
	if d <= dims || n < dims {
		return points, nil
	}

	flat := make([]float64, 0, n*d)
	for _, p := range points {
		if len(p) != d {
			return nil, errors.New("points have inconsistent dimensions")
		}
		flat = append(flat, p...)
	}
	a := mat.NewDense(n, d, flat)

	var pc stat.PC
	if ok := pc.PrincipalComponents(a, nil); !ok {
		return nil, errors.New("principal components analysis did not converge")
	}
	var vecs mat.Dense
	pc.VectorsTo(&vecs)

	// Centering only shifts every point, so distances are the same without it
	var proj mat.Dense
	proj.Mul(a, vecs.Slice(0, d, 0, dims))

	out := make([][]float64, n)
	for i := range out {
		row := mat.Row(nil, i, &proj)
		normalizeInPlace(row)
		out[i] = row
	}
	return out, nil
}
