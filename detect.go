package rawkit

import (
	"bytes"
	"io"
	"os"
	"regexp"
	"strings"
)

// headerSize is the number of bytes inspected at the start of a file.
// No signature in the table occurs past this window.
const headerSize = 1024

// thermoMagic is the Thermo .raw signature: 0x01 0xA1 followed by
// "Finnigan" with each character padded by a zero byte.
// See https://code.google.com/p/unfinnigan/wiki/FileHeader
var thermoMagic = []byte{
	0x01, 0xA1,
	'F', 0, 'i', 0, 'n', 0, 'n', 0, 'i', 0, 'g', 0, 'a', 0, 'n', 0,
}

// netCDFMagic is the netCDF signature. See
// https://www.unidata.ucar.edu/software/netcdf/docs/file_format_specifications.html
var netCDFMagic = []byte("CDF")

// XML interchange formats are identified by their root tags, which may be
// preceded by an <indexed...> wrapper tag, so these are searched anywhere
// in the header window rather than at offset 0.
var (
	mzMLTag   = []byte("<mzML")
	mzDataTag = []byte("<mzData")
	mzXMLTag  = []byte("<msRun")
)

// headerSignature maps a byte pattern in the header window to a file type.
// Prefix signatures always occur at offset 0 and are checked before the
// floating tag searches.
type headerSignature struct {
	Type   FileType
	Magic  []byte
	Prefix bool // match at offset 0 only
}

// headerSignatures is matched in order; the first hit wins. The three XML
// root tags are mutually exclusive, but the order must stay stable.
var headerSignatures = []headerSignature{
	{Type: FileTypeThermoRaw, Magic: thermoMagic, Prefix: true},
	{Type: FileTypeNetCDF, Magic: netCDFMagic, Prefix: true},
	{Type: FileTypeMzML, Magic: mzMLTag},
	{Type: FileTypeMzData, Magic: mzDataTag},
	{Type: FileTypeMzXML, Magic: mzXMLTag},
}

// watersFuncFile matches the per-function data files inside a Waters .raw
// directory, e.g. _FUNC001.DAT. The vendor convention is case-sensitive.
var watersFuncFile = regexp.MustCompile(`^_FUNC[0-9]{3}\.DAT$`)

// DetectFileType classifies the raw data file at path into one of the
// recognized [FileType] values.
//
// Directories are checked for the Waters .raw layout and nothing else.
// Regular files named *.csv (any case) classify as [FileTypeAgilentCSV]
// without their content being read; all other files are classified by
// matching the first kilobyte against known format signatures. When no
// rule matches, the result is [FileTypeUnsupported], not an error.
//
// The only failure mode is I/O: open, list, or read errors come back
// wrapped in a [*PathError]. Detection reads at most one kilobyte and
// holds no state, so calls are idempotent and safe to run concurrently
// on different paths.
func DetectFileType(path string) (FileType, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", &PathError{Op: "detect", Path: path, Err: mapOSError(err)}
	}

	if info.IsDir() {
		return detectDirectoryType(path)
	}

	if strings.HasSuffix(strings.ToLower(info.Name()), ".csv") {
		return FileTypeAgilentCSV, nil
	}

	header, err := readHeader(path)
	if err != nil {
		return "", &PathError{Op: "detect", Path: path, Err: mapOSError(err)}
	}

	return matchHeader(header), nil
}

// detectDirectoryType checks the immediate children of dir for the Waters
// .raw layout. Directories of any other shape are unsupported and are
// never descended into.
func detectDirectoryType(dir string) (FileType, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", &PathError{Op: "detect", Path: dir, Err: mapOSError(err)}
	}

	for _, entry := range entries {
		if entry.Type().IsRegular() && watersFuncFile.MatchString(entry.Name()) {
			return FileTypeWatersRaw, nil
		}
	}

	return FileTypeUnsupported, nil
}

// readHeader reads the first headerSize bytes of the file at path. Files
// shorter than the window yield a shorter buffer; an empty file yields an
// empty buffer, not an error.
func readHeader(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, headerSize)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, err
	}

	return buf[:n], nil
}

// matchHeader runs the ordered signature table over the header window.
func matchHeader(header []byte) FileType {
	for _, sig := range headerSignatures {
		if sig.Prefix {
			if bytes.HasPrefix(header, sig.Magic) {
				return sig.Type
			}
			continue
		}
		if bytes.Contains(header, sig.Magic) {
			return sig.Type
		}
	}
	return FileTypeUnsupported
}
