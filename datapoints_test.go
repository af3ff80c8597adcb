package rawkit

import (
	"errors"
	"math"
	"testing"
)

func TestDataPointListSetSize(t *testing.T) {
	dpl := NewDataPointList()
	dpl.Allocate(100)

	mz := dpl.MzBuffer()
	intensity := dpl.IntensityBuffer()
	for i := 0; i < 100; i++ {
		mz[i] = math.Pi / float64(i+1)
		intensity[i] = float32(math.Pi) * float32(i)
	}

	if err := dpl.SetSize(50); err != nil {
		t.Fatalf("SetSize(50) error = %v", err)
	}
	if got := dpl.Size(); got != 50 {
		t.Errorf("Size() = %d, want 50", got)
	}

	// Growing the capacity must not disturb the committed size
	dpl.Allocate(10000)
	if got := dpl.Size(); got != 50 {
		t.Errorf("Size() after Allocate = %d, want 50", got)
	}

	// The m/z buffer must come back sorted ascending
	mz = dpl.MzBuffer()
	for i := 1; i < dpl.Size(); i++ {
		if mz[i] <= mz[i-1] {
			t.Fatalf("m/z buffer not sorted at %d: %v <= %v", i, mz[i], mz[i-1])
		}
	}

	// The largest m/z was paired with the zero intensity; the pairing
	// must survive the sort
	intensity = dpl.IntensityBuffer()
	if got := intensity[dpl.Size()-1]; math.Abs(float64(got)) > 0.0001 {
		t.Errorf("last intensity = %v, want 0.0", got)
	}
}

func TestDataPointListSetSizeBeyondCapacity(t *testing.T) {
	dpl := NewDataPointList()
	dpl.Allocate(10)

	err := dpl.SetSize(1000000)
	if err == nil {
		t.Fatal("SetSize() beyond capacity did not fail")
	}
	if !errors.Is(err, ErrInvalidSize) {
		t.Errorf("error = %v, want ErrInvalidSize", err)
	}

	if err := dpl.SetSize(-1); err == nil {
		t.Error("SetSize(-1) did not fail")
	}
}

func TestDataPointListAllocatePreservesContent(t *testing.T) {
	dpl := NewDataPointList()
	dpl.Allocate(4)

	mz := dpl.MzBuffer()
	intensity := dpl.IntensityBuffer()
	mz[0], mz[1] = 100.5, 200.25
	intensity[0], intensity[1] = 1.0, 2.0
	if err := dpl.SetSize(2); err != nil {
		t.Fatal(err)
	}

	dpl.Allocate(64)

	if got := dpl.Capacity(); got < 64 {
		t.Errorf("Capacity() = %d, want >= 64", got)
	}
	mz = dpl.MzBuffer()
	intensity = dpl.IntensityBuffer()
	if mz[0] != 100.5 || mz[1] != 200.25 {
		t.Errorf("m/z content lost after Allocate: %v", mz[:2])
	}
	if intensity[0] != 1.0 || intensity[1] != 2.0 {
		t.Errorf("intensity content lost after Allocate: %v", intensity[:2])
	}

	// Shrinking requests are ignored
	dpl.Allocate(8)
	if got := dpl.Capacity(); got < 64 {
		t.Errorf("Capacity() shrank to %d", got)
	}
}
