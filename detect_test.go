package rawkit

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// thermoHeader is the exact on-disk Thermo .raw signature.
var thermoHeader = []byte{
	0x01, 0xA1,
	'F', 0x00, 'i', 0x00, 'n', 0x00, 'n', 0x00,
	'i', 0x00, 'g', 0x00, 'a', 0x00, 'n', 0x00,
}

func writeFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestDetectFileTypeHeaders(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content []byte
		want    FileType
	}{
		{
			name:    "thermo raw signature",
			file:    "sample.raw",
			content: thermoHeader,
			want:    FileTypeThermoRaw,
		},
		{
			name:    "thermo raw with trailing data",
			file:    "sample2.raw",
			content: append(append([]byte{}, thermoHeader...), bytes.Repeat([]byte{0xDE, 0xAD}, 600)...),
			want:    FileTypeThermoRaw,
		},
		{
			name:    "netcdf prefix",
			file:    "run.cdf",
			content: []byte("CDF\x01 binary follows"),
			want:    FileTypeNetCDF,
		},
		{
			name:    "mzml at start",
			file:    "a.mzML",
			content: []byte(`<mzML xmlns="http://psi.hupo.org/ms/mzml">`),
			want:    FileTypeMzML,
		},
		{
			name:    "mzml behind indexed wrapper and xml declaration",
			file:    "b.mzML",
			content: []byte(`<?xml version="1.0" encoding="UTF-8"?><indexedmzML><mzML>`),
			want:    FileTypeMzML,
		},
		{
			name:    "mzdata root tag",
			file:    "c.xml",
			content: []byte(`<?xml version="1.0"?><mzData version="1.05">`),
			want:    FileTypeMzData,
		},
		{
			name:    "mzxml msrun tag behind wrapper",
			file:    "d.mzXML",
			content: []byte(`<?xml version="1.0"?><mzXML><msRun scanCount="7">`),
			want:    FileTypeMzXML,
		},
		{
			name:    "netcdf prefix wins over contained mzml tag",
			file:    "e.cdf",
			content: []byte("CDF\x01 <mzML>"),
			want:    FileTypeNetCDF,
		},
		{
			name:    "cdf not at offset zero is no match",
			file:    "f.bin",
			content: []byte("xxCDF"),
			want:    FileTypeUnsupported,
		},
		{
			name:    "empty file",
			file:    "empty.bin",
			content: nil,
			want:    FileTypeUnsupported,
		},
		{
			name:    "short file without signature",
			file:    "short.bin",
			content: []byte{0x42},
			want:    FileTypeUnsupported,
		},
		{
			name:    "unrelated binary content",
			file:    "noise.bin",
			content: bytes.Repeat([]byte{0x00, 0xFF, 0x13, 0x37}, 512),
			want:    FileTypeUnsupported,
		},
	}

	dir := t.TempDir()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, tt.file, tt.content)

			got, err := DetectFileType(path)
			if err != nil {
				t.Fatalf("DetectFileType() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DetectFileType() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectFileTypeHeaderWindow(t *testing.T) {
	dir := t.TempDir()

	// A tag past the first kilobyte must not be seen
	content := append(bytes.Repeat([]byte{' '}, 1024), []byte("<mzML>")...)
	path := writeFile(t, dir, "late.mzML.xml", content)

	got, err := DetectFileType(path)
	if err != nil {
		t.Fatalf("DetectFileType() error = %v", err)
	}
	if got != FileTypeUnsupported {
		t.Errorf("tag beyond 1024 bytes detected as %v, want %v", got, FileTypeUnsupported)
	}

	// The same tag ending exactly at the window boundary must be seen
	content = append(bytes.Repeat([]byte{' '}, 1024-len("<mzML")), []byte("<mzML")...)
	path = writeFile(t, dir, "edge.xml", content)

	got, err = DetectFileType(path)
	if err != nil {
		t.Fatalf("DetectFileType() error = %v", err)
	}
	if got != FileTypeMzML {
		t.Errorf("tag at window boundary detected as %v, want %v", got, FileTypeMzML)
	}
}

func TestDetectFileTypeCSVExtension(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content []byte
	}{
		{name: "lowercase", file: "export.csv", content: []byte("rt,mz,intensity\n")},
		{name: "uppercase", file: "EXPORT.CSV", content: []byte("rt,mz,intensity\n")},
		{name: "mixed case", file: "Export.Csv", content: []byte("rt,mz,intensity\n")},
		{name: "empty file", file: "empty.csv", content: nil},
		// The extension shortcut never reads content: even a Thermo
		// signature classifies by the name alone
		{name: "binary content", file: "disguised.csv", content: thermoHeader},
	}

	dir := t.TempDir()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, tt.file, tt.content)

			got, err := DetectFileType(path)
			if err != nil {
				t.Fatalf("DetectFileType() error = %v", err)
			}
			if got != FileTypeAgilentCSV {
				t.Errorf("DetectFileType() = %v, want %v", got, FileTypeAgilentCSV)
			}
		})
	}
}

func TestDetectFileTypeDirectories(t *testing.T) {
	tests := []struct {
		name  string
		files []string // regular files created inside the directory
		dirs  []string // subdirectories created inside the directory
		want  FileType
	}{
		{
			name:  "waters function file",
			files: []string{"_FUNC007.DAT"},
			want:  FileTypeWatersRaw,
		},
		{
			name:  "waters function file among others",
			files: []string{"_HEADER.TXT", "_FUNC123.DAT", "_INLET.INF"},
			want:  FileTypeWatersRaw,
		},
		{
			name: "empty directory",
			want: FileTypeUnsupported,
		},
		{
			name:  "no waters layout",
			files: []string{"readme.txt", "data.mzML"},
			want:  FileTypeUnsupported,
		},
		{
			name:  "wrong case is not waters",
			files: []string{"_func007.dat"},
			want:  FileTypeUnsupported,
		},
		{
			name:  "wrong digit count is not waters",
			files: []string{"_FUNC07.DAT", "_FUNC0071.DAT"},
			want:  FileTypeUnsupported,
		},
		{
			name: "matching name on a subdirectory does not count",
			dirs: []string{"_FUNC001.DAT"},
			want: FileTypeUnsupported,
		},
		{
			name: "never descends into children",
			dirs: []string{"nested"},
			want: FileTypeUnsupported,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for _, f := range tt.files {
				writeFile(t, dir, f, []byte("x"))
			}
			for _, d := range tt.dirs {
				if err := os.MkdirAll(filepath.Join(dir, d), 0755); err != nil {
					t.Fatal(err)
				}
				if d == "nested" {
					// A valid Waters file one level down must be ignored
					writeFile(t, filepath.Join(dir, d), "_FUNC001.DAT", []byte("x"))
				}
			}

			got, err := DetectFileType(dir)
			if err != nil {
				t.Fatalf("DetectFileType() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DetectFileType() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectFileTypeMissingPath(t *testing.T) {
	_, err := DetectFileType(filepath.Join(t.TempDir(), "does-not-exist.raw"))
	if err == nil {
		t.Fatal("expected an error for a missing path")
	}

	if !IsNotExist(err) {
		t.Errorf("IsNotExist() = false for %v", err)
	}

	var pathErr *PathError
	if !errors.As(err, &pathErr) {
		t.Fatalf("error %v is not a *PathError", err)
	}
	if pathErr.Op != "detect" {
		t.Errorf("Op = %q, want %q", pathErr.Op, "detect")
	}
}

func TestDetectFileTypeIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "run.cdf", []byte("CDF\x02"))

	first, err := DetectFileType(path)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := DetectFileType(path)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if first != second {
		t.Errorf("results differ: %v then %v", first, second)
	}
}
