package models

import (
	"encoding/json"
	"testing"
)

func TestFindingString(t *testing.T) {
	f := Finding{Path: "src/app.go", Line: 42, Rule: "GitHub Token", Match: "ghp_x"}

	want := "src/app.go:42: GitHub Token -> ghp_x"
	if got := f.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestFindingJSONFieldNames(t *testing.T) {
	data, err := json.Marshal(Finding{Path: "a.txt", Line: 1, Rule: "JWT", Match: "eyJ"})
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	want := `{"path":"a.txt","line":1,"rule":"JWT","match":"eyJ"}`
	if string(data) != want {
		t.Errorf("json.Marshal() = %s, want %s", data, want)
	}
}

func TestDefaultScanConfig(t *testing.T) {
	cfg := DefaultScanConfig()

	if cfg.MaxFileSizeBytes != 512000 {
		t.Errorf("MaxFileSizeBytes = %d, want 512000", cfg.MaxFileSizeBytes)
	}
	if cfg.EntropyThreshold != 4.0 {
		t.Errorf("EntropyThreshold = %v, want 4.0", cfg.EntropyThreshold)
	}
	if !cfg.EntropyEnabled {
		t.Error("EntropyEnabled = false, want true")
	}
	if cfg.MaxWorkers != 0 {
		t.Errorf("MaxWorkers = %d, want 0", cfg.MaxWorkers)
	}
	if cfg.MaxFindingsPerFile != 200 {
		t.Errorf("MaxFindingsPerFile = %d, want 200", cfg.MaxFindingsPerFile)
	}
}

func TestScanConfigNormalized(t *testing.T) {
	tests := []struct {
		name string
		in   ScanConfig
		want ScanConfig
	}{
		{
			name: "zero value gets defaults except entropy",
			in:   ScanConfig{},
			want: ScanConfig{MaxFileSizeBytes: DefaultMaxFileSizeBytes, MaxFindingsPerFile: DefaultMaxFindingsPerFile},
		},
		{
			name: "negative values",
			in:   ScanConfig{MaxFileSizeBytes: -1, MaxWorkers: -3, MaxFindingsPerFile: -5, EntropyThreshold: 3},
			want: ScanConfig{MaxFileSizeBytes: DefaultMaxFileSizeBytes, MaxFindingsPerFile: DefaultMaxFindingsPerFile, EntropyThreshold: 3},
		},
		{
			name: "explicit values kept",
			in:   ScanConfig{MaxFileSizeBytes: 10, MaxWorkers: 2, MaxFindingsPerFile: 1, EntropyEnabled: true, EntropyThreshold: 5},
			want: ScanConfig{MaxFileSizeBytes: 10, MaxWorkers: 2, MaxFindingsPerFile: 1, EntropyEnabled: true, EntropyThreshold: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Normalized(); got != tt.want {
				t.Errorf("Normalized() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
