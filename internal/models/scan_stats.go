package models

// ScanStats counts what happened to each discovered file during one scan
type ScanStats struct {
	Discovered int // Regular files found under the target
	Ignored    int // Dropped by the ignore spec
	Scanned    int // Decoded and scanned line by line
	Skipped    int // Binary, oversized or undecodable
	Failed     int // Read errors or panics, absorbed per file
	Capped     int // Files that hit the per-file finding cap
	Findings   int // Total findings returned
}
