package rawkit

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/gobwas/glob"
)

// FileInfo describes a filesystem entry considered during a scan.
type FileInfo struct {
	Name    string
	Path    string
	Size    int64
	ModTime time.Time
	IsDir   bool
}

// FileSelector filters candidate entries during directory scans.
type FileSelector interface {
	// Match returns true if the entry should be classified.
	Match(file *FileInfo) bool

	// TraverseDescendants returns true if a directory's children should
	// be visited during recursive scans. Only called for directories.
	TraverseDescendants(file *FileInfo) bool
}

// AllSelector matches every entry and traverses every directory.
type AllSelector struct{}

func (AllSelector) Match(*FileInfo) bool { return true }
func (AllSelector) TraverseDescendants(*FileInfo) bool { return true }

// All returns a selector that matches all entries.
func All() FileSelector {
	return AllSelector{}
}

type globSelector struct {
	g glob.Glob
}

// Glob creates a selector matching entry names against a glob pattern.
// Supports *, ?, [abc], [a-z] and brace alternatives, e.g.
// "*.{mzML,mzXML}". An invalid pattern matches nothing.
func Glob(pattern string) FileSelector {
	g, err := glob.Compile(pattern)
	if err != nil {
		return &globSelector{}
	}
	return &globSelector{g: g}
}

func (s *globSelector) Match(file *FileInfo) bool {
	return s.g != nil && s.g.Match(file.Name)
}

func (s *globSelector) TraverseDescendants(*FileInfo) bool { return true }

type funcSelector struct {
	fn func(*FileInfo) bool
}

// FuncSelector creates a selector from a custom match function.
func FuncSelector(fn func(*FileInfo) bool) FileSelector {
	return &funcSelector{fn: fn}
}

func (s *funcSelector) Match(file *FileInfo) bool { return s.fn(file) }
func (s *funcSelector) TraverseDescendants(*FileInfo) bool { return true }

type andSelector struct {
	selectors []FileSelector
}

// And matches only if all selectors match.
func And(selectors ...FileSelector) FileSelector {
	return &andSelector{selectors: selectors}
}

func (s *andSelector) Match(file *FileInfo) bool {
	for _, sel := range s.selectors {
		if !sel.Match(file) {
			return false
		}
	}
	return true
}

func (s *andSelector) TraverseDescendants(file *FileInfo) bool {
	for _, sel := range s.selectors {
		if !sel.TraverseDescendants(file) {
			return false
		}
	}
	return true
}

type notSelector struct {
	selector FileSelector
}

// Not inverts a selector's match result.
func Not(selector FileSelector) FileSelector {
	return &notSelector{selector: selector}
}

func (s *notSelector) Match(file *FileInfo) bool { return !s.selector.Match(file) }
func (s *notSelector) TraverseDescendants(*FileInfo) bool { return true }

// fileInfo builds a FileInfo from a stat of path.
func fileInfo(path string) (*FileInfo, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	return &FileInfo{
		Name:    stat.Name(),
		Path:    path,
		Size:    stat.Size(),
		ModTime: stat.ModTime(),
		IsDir:   stat.IsDir(),
	}, nil
}

// ScanResult is one classified entry produced by a scan.
type ScanResult struct {
	Path     string
	Type     FileType
	Size     int64
	Checksum string // set only when fingerprinting is enabled
}

// ScanOption configures a directory scan.
type ScanOption func(*scanOptions)

type scanOptions struct {
	selector  FileSelector
	recursive bool
	checksum  ChecksumAlgorithm
}

// WithSelector sets the selector applied to candidate entries.
func WithSelector(selector FileSelector) ScanOption {
	return func(o *scanOptions) {
		o.selector = selector
	}
}

// WithPattern is shorthand for WithSelector(Glob(pattern)).
func WithPattern(pattern string) ScanOption {
	return func(o *scanOptions) {
		o.selector = Glob(pattern)
	}
}

// WithRecursive enables descending into subdirectories. Waters .raw
// directories are reported as single results and never descended into.
func WithRecursive(recursive bool) ScanOption {
	return func(o *scanOptions) {
		o.recursive = recursive
	}
}

// WithChecksum enables fingerprinting of every recognized file using the
// given algorithm.
func WithChecksum(algorithm ChecksumAlgorithm) ScanOption {
	return func(o *scanOptions) {
		o.checksum = algorithm
	}
}

// ScanDirectory classifies the raw data files under root.
//
// Every entry matching the selector is run through [DetectFileType] and
// reported, including unsupported ones (classification is never an
// error). Directories recognized as Waters .raw appear as single results;
// other directories are descended into only when WithRecursive is set.
// The context is checked between entries, so large trees can be
// abandoned early. I/O failures abort the scan.
func ScanDirectory(ctx context.Context, root string, opts ...ScanOption) ([]ScanResult, error) {
	options := scanOptions{selector: All()}
	for _, opt := range opts {
		opt(&options)
	}
	if options.selector == nil {
		options.selector = All()
	}

	var results []ScanResult
	if err := scanDir(ctx, root, &options, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func scanDir(ctx context.Context, dir string, options *scanOptions, results *[]ScanResult) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return &PathError{Op: "scan", Path: dir, Err: mapOSError(err)}
	}

	for _, entry := range entries {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		path := filepath.Join(dir, entry.Name())
		stat, err := entry.Info()
		if err != nil {
			return &PathError{Op: "scan", Path: path, Err: mapOSError(err)}
		}

		file := &FileInfo{
			Name:    entry.Name(),
			Path:    path,
			Size:    stat.Size(),
			ModTime: stat.ModTime(),
			IsDir:   entry.IsDir(),
		}

		if entry.IsDir() {
			t, err := DetectFileType(path)
			if err != nil {
				return err
			}
			if t == FileTypeWatersRaw {
				if options.selector.Match(file) {
					*results = append(*results, ScanResult{Path: path, Type: t})
				}
				continue
			}
			if options.recursive && options.selector.TraverseDescendants(file) {
				if err := scanDir(ctx, path, options, results); err != nil {
					return err
				}
			}
			continue
		}

		if !options.selector.Match(file) {
			continue
		}

		t, err := DetectFileType(path)
		if err != nil {
			return err
		}

		result := ScanResult{Path: path, Type: t, Size: stat.Size()}
		if options.checksum != "" && IsSupported(t) {
			sum, err := ChecksumFile(path, options.checksum)
			if err != nil {
				return err
			}
			result.Checksum = sum
		}

		*results = append(*results, result)
	}

	return nil
}
