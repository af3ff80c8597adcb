package rawkit

import (
	"crypto/md5"  //nolint:gosec // MD5 used for integrity fingerprints, not security
	"crypto/sha1" //nolint:gosec // SHA1 used for integrity fingerprints, not security
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"hash/crc32"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
)

// ChecksumAlgorithm selects the hash used for raw-file integrity
// fingerprints. Instrument files are large and immutable once acquired;
// a fingerprint taken before import lets a pipeline detect truncated or
// re-acquired files without re-reading them.
type ChecksumAlgorithm string

const (
	ChecksumMD5    ChecksumAlgorithm = "md5"
	ChecksumSHA1   ChecksumAlgorithm = "sha1"
	ChecksumSHA256 ChecksumAlgorithm = "sha256"
	ChecksumCRC32  ChecksumAlgorithm = "crc32"
	// ChecksumXXHash is the fastest option and the default for scan
	// fingerprints; it is not cryptographically secure.
	ChecksumXXHash ChecksumAlgorithm = "xxhash"
)

// NewHasher creates a hash.Hash for the given algorithm.
// Returns an error if the algorithm is not supported.
func NewHasher(algorithm ChecksumAlgorithm) (hash.Hash, error) {
	switch algorithm {
	case ChecksumMD5:
		return md5.New(), nil //nolint:gosec
	case ChecksumSHA1:
		return sha1.New(), nil //nolint:gosec
	case ChecksumSHA256:
		return sha256.New(), nil
	case ChecksumCRC32:
		return crc32.NewIEEE(), nil
	case ChecksumXXHash:
		return xxhash.New(), nil
	default:
		return nil, fmt.Errorf("%w: unsupported checksum algorithm: %s", ErrNotSupported, algorithm)
	}
}

// Checksum reads r to EOF and returns the hex-encoded checksum.
func Checksum(r io.Reader, algorithm ChecksumAlgorithm) (string, error) {
	h, err := NewHasher(algorithm)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(h, r); err != nil {
		return "", fmt.Errorf("failed to calculate checksum: %w", err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// ChecksumFile returns the hex-encoded checksum of the file at path.
func ChecksumFile(path string, algorithm ChecksumAlgorithm) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", &PathError{Op: "checksum", Path: path, Err: mapOSError(err)}
	}
	defer f.Close()

	sum, err := Checksum(f, algorithm)
	if err != nil {
		return "", &PathError{Op: "checksum", Path: path, Err: err}
	}

	return sum, nil
}
