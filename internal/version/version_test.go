package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestGetInfo(t *testing.T) {
	// Set test values
	Version = "1.0.0"
	GitCommit = "abc123def456"
	BuildTime = "2025-01-02_12:00:00_UTC"

	info := GetInfo()

	if info.Version != "1.0.0" {
		t.Errorf("Expected version 1.0.0, got %s", info.Version)
	}

	if info.GitCommit != "abc123def456" {
		t.Errorf("Expected commit abc123def456, got %s", info.GitCommit)
	}

	if info.BuildTime != "2025-01-02_12:00:00_UTC" {
		t.Errorf("Expected build time 2025-01-02_12:00:00_UTC, got %s", info.BuildTime)
	}

	if info.GoVersion != runtime.Version() {
		t.Errorf("Expected Go version %s, got %s", runtime.Version(), info.GoVersion)
	}
}

func TestInfoString(t *testing.T) {
	info := Info{
		Version:   "1.0.0",
		GitCommit: "abc123",
		BuildTime: "2025-01-02",
		GoVersion: "go1.25.0",
	}

	result := info.String()

	expectedParts := []string{
		"forecastio v1.0.0",
		"Commit: abc123",
		"Built: 2025-01-02",
		"Go: go1.25.0",
	}

	for _, part := range expectedParts {
		if !strings.Contains(result, part) {
			t.Errorf("String() output missing expected part: %s\nGot: %s", part, result)
		}
	}
}

func TestInfoShort(t *testing.T) {
	info := Info{
		Version:   "1.0.0",
		GitCommit: "abc123def456",
	}

	result := info.Short()

	if result != "v1.0.0 (abc123d)" {
		t.Errorf("Expected v1.0.0 (abc123d), got %s", result)
	}
}

func TestInfoShort_ShortCommit(t *testing.T) {
	info := Info{
		Version:   "1.0.0",
		GitCommit: "abc",
	}

	if got := info.Short(); got != "v1.0.0 (abc)" {
		t.Errorf("Expected v1.0.0 (abc), got %s", got)
	}
}
