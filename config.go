package rawkit

import (
	"time"

	"github.com/gobeaver/beaver-kit/config"
)

type Config struct {
	// Directory scanned or watched for incoming raw data files
	InboxPath string `env:"RAWKIT_INBOX_PATH,default:./inbox"`

	// Glob pattern candidate files must match during scans
	ScanPattern string `env:"RAWKIT_SCAN_PATTERN,default:*"`

	// Whether scans descend into subdirectories
	ScanRecursive bool `env:"RAWKIT_SCAN_RECURSIVE,default:false"`

	// Whether scans fingerprint each recognized file
	ChecksumEnabled bool `env:"RAWKIT_CHECKSUM_ENABLED,default:false"`

	// Algorithm used for fingerprints (md5, sha1, sha256, crc32, xxhash)
	ChecksumAlgorithm string `env:"RAWKIT_CHECKSUM_ALGORITHM,default:xxhash"`

	// How long the watcher waits for a new file to stop growing before
	// detecting it, in milliseconds; instrument software streams
	// acquisitions to disk over several seconds
	WatchSettleDelayMS int64 `env:"RAWKIT_WATCH_SETTLE_DELAY_MS,default:2000"`
}

// SettleDelay returns the watcher settle delay as a duration.
func (c *Config) SettleDelay() time.Duration {
	return time.Duration(c.WatchSettleDelayMS) * time.Millisecond
}

// GetConfig returns config loaded from environment
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
