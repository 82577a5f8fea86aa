package git

import "context"

// DiffSource defines the interface for fetching diffs from a repository.
// This abstraction allows for easier testing and potential alternative implementations.
type DiffSource interface {
	// Fetch returns the raw diff output for the given revision range and path filters.
	Fetch(ctx context.Context, revRange string, pathFilters []string) (*DiffOutput, error)
	// ListChanged returns the files changed for the given revision range and path filters.
	ListChanged(ctx context.Context, revRange string, pathFilters []string) ([]FileEntry, error)
	// DiffStat returns per-file line counts for the given revision range and path filters.
	DiffStat(ctx context.Context, revRange string, pathFilters []string) ([]FileStat, error)
}

// Compile-time interface conformance check.
var _ DiffSource = (*Fetcher)(nil)
