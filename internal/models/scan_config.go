package models

const (
	// DefaultMaxFileSizeBytes is the hard per-file read cap
	DefaultMaxFileSizeBytes int64 = 512_000

	// DefaultEntropyThreshold is the Shannon entropy (bits/char) at which a token is reported
	DefaultEntropyThreshold = 4.0

	// DefaultMaxFindingsPerFile bounds the output of a single pathological file
	DefaultMaxFindingsPerFile = 200
)

// ScanConfig holds the per-invocation tuning of the scan engine.
// It is read-only for the duration of a scan.
type ScanConfig struct {
	MaxFileSizeBytes   int64   // Files larger than this are skipped, never truncated
	EntropyThreshold   float64 // Minimum entropy for a HighEntropy finding
	EntropyEnabled     bool    // Run the entropy detector at all
	MaxWorkers         int     // Worker pool size (0 = auto)
	MaxFindingsPerFile int     // Per-file finding cap
}

// DefaultScanConfig returns the engine defaults
func DefaultScanConfig() ScanConfig {
	return ScanConfig{
		MaxFileSizeBytes:   DefaultMaxFileSizeBytes,
		EntropyThreshold:   DefaultEntropyThreshold,
		EntropyEnabled:     true,
		MaxWorkers:         0,
		MaxFindingsPerFile: DefaultMaxFindingsPerFile,
	}
}

// Normalized returns a copy with non-positive size and cap limits replaced by
// their defaults. MaxWorkers is left alone; 0 means auto and is resolved by the
// scanner.
func (c ScanConfig) Normalized() ScanConfig {
	if c.MaxFileSizeBytes <= 0 {
		c.MaxFileSizeBytes = DefaultMaxFileSizeBytes
	}
	if c.MaxFindingsPerFile <= 0 {
		c.MaxFindingsPerFile = DefaultMaxFindingsPerFile
	}
	if c.MaxWorkers < 0 {
		c.MaxWorkers = 0
	}
	return c
}
