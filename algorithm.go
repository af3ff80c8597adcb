package rawkit

import "sync"

// Algorithm is the progress-reporting protocol shared by the long-running
// operations of the surrounding toolkit. Fast operations may implement
// Cancel as a no-op.
type Algorithm interface {
	// Execute runs the algorithm to completion.
	Execute() error

	// FinishedPercentage returns the completed fraction in [0.0, 1.0].
	// The value is monotonic: it never decreases across calls.
	FinishedPercentage() float64

	// Cancel requests the algorithm to stop. Implementations that finish
	// faster than a cancellation can be observed may ignore it.
	Cancel()
}

// FileTypeDetection is a one-shot [Algorithm] wrapping [DetectFileType]
// for callers that drive work through the progress protocol. Create one
// instance per path, call Execute exactly once, then read Result.
//
// Prefer calling [DetectFileType] directly unless the protocol is needed.
type FileTypeDetection struct {
	path string

	mu       sync.Mutex
	finished float64
	result   FileType
	done     bool
}

// NewFileTypeDetection creates a detection algorithm for the given path.
func NewFileTypeDetection(path string) *FileTypeDetection {
	return &FileTypeDetection{path: path}
}

// Execute runs the detection. On success the result becomes available and
// the finished percentage jumps from 0.0 to 1.0; the operation is atomic,
// no intermediate fractions are reported.
func (d *FileTypeDetection) Execute() error {
	t, err := DetectFileType(d.path)
	if err != nil {
		return err
	}

	d.mu.Lock()
	d.result = t
	d.done = true
	d.finished = 1.0
	d.mu.Unlock()
	return nil
}

// FinishedPercentage implements [Algorithm].
func (d *FileTypeDetection) FinishedPercentage() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.finished
}

// Result returns the detected file type. The boolean is false until
// Execute has completed successfully.
func (d *FileTypeDetection) Result() (FileType, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.result, d.done
}

// Cancel implements [Algorithm]. Detection completes faster than a
// cancellation can be observed, so this is a no-op.
func (d *FileTypeDetection) Cancel() {}
