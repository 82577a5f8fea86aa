package git

import "context"

// MockDiffSource is a test double for Fetcher.
// It allows tests to provide predefined diff data without needing a real Git repository.
type MockDiffSource struct {
	Output  *DiffOutput
	Entries []FileEntry
	Stats   []FileStat
	Error   error
}

// Fetch returns the predefined output or error.
func (m *MockDiffSource) Fetch(_ context.Context, _ string, _ []string) (*DiffOutput, error) {
	return m.Output, m.Error
}

// ListChanged returns the predefined entries or error.
func (m *MockDiffSource) ListChanged(_ context.Context, _ string, _ []string) ([]FileEntry, error) {
	return m.Entries, m.Error
}

// DiffStat returns the predefined stats or error.
func (m *MockDiffSource) DiffStat(_ context.Context, _ string, _ []string) ([]FileStat, error) {
	return m.Stats, m.Error
}

// Compile-time interface conformance check.
var _ DiffSource = (*MockDiffSource)(nil)
