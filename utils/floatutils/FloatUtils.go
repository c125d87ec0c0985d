// Package floatutils provides utilities for working with floats
package floatutils

// MaxSlice gets the maximum value and the indices of all entries equal
// to the maximum value in a slice of float64. It panics if values is
// empty.
func MaxSlice(values []float64) (max float64, indices []int) {
	max, indices = values[0], []int{0}

	for i := 1; i < len(values); i++ {
		if values[i] > max {
			max = values[i]
			indices = []int{i}
		} else if values[i] == max {
			indices = append(indices, i)
		}
	}
	return
}
