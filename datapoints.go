package rawkit

import (
	"fmt"
	"sort"
)

// DataPointList is a growable buffer of mass spectrum data points, stored
// as parallel m/z and intensity arrays. Downstream importers fill the
// buffers up to the allocated capacity and then commit the final point
// count with SetSize, which also restores m/z ordering.
//
// A DataPointList is not safe for concurrent use.
type DataPointList struct {
	mz        []float64
	intensity []float32
	size      int
}

// NewDataPointList creates an empty data point list with no allocated
// capacity. Call Allocate before filling the buffers.
func NewDataPointList() *DataPointList {
	return &DataPointList{}
}

// Allocate ensures the buffers hold at least capacity data points.
// Existing points and the current size are preserved.
func (l *DataPointList) Allocate(capacity int) {
	if capacity <= cap(l.mz) {
		return
	}

	mz := make([]float64, capacity)
	intensity := make([]float32, capacity)
	copy(mz, l.mz[:l.size])
	copy(intensity, l.intensity[:l.size])
	l.mz = mz
	l.intensity = intensity
}

// SetSize commits the number of valid data points and sorts them by m/z
// ascending, keeping each (m/z, intensity) pair together. Returns an
// error wrapping [ErrInvalidSize] if size exceeds the allocated capacity.
func (l *DataPointList) SetSize(size int) error {
	if size < 0 || size > cap(l.mz) {
		return fmt.Errorf("%w: %d exceeds capacity %d", ErrInvalidSize, size, cap(l.mz))
	}

	l.size = size
	sort.Sort(byMz{l})
	return nil
}

// Size returns the number of committed data points.
func (l *DataPointList) Size() int {
	return l.size
}

// Capacity returns the allocated capacity in data points.
func (l *DataPointList) Capacity() int {
	return cap(l.mz)
}

// MzBuffer returns the backing m/z array. Valid entries are [0, Size());
// the slice extends to the full capacity for filling.
func (l *DataPointList) MzBuffer() []float64 {
	return l.mz
}

// IntensityBuffer returns the backing intensity array, parallel to
// MzBuffer.
func (l *DataPointList) IntensityBuffer() []float32 {
	return l.intensity
}

// byMz sorts the committed points of a DataPointList by m/z ascending.
type byMz struct{ l *DataPointList }

func (s byMz) Len() int           { return s.l.size }
func (s byMz) Less(i, j int) bool { return s.l.mz[i] < s.l.mz[j] }
func (s byMz) Swap(i, j int) {
	s.l.mz[i], s.l.mz[j] = s.l.mz[j], s.l.mz[i]
	s.l.intensity[i], s.l.intensity[j] = s.l.intensity[j], s.l.intensity[i]
}
