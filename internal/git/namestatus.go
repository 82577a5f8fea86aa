package git

import (
	"bytes"
	"context"
	"fmt"
	"strings"
)

// ListChanged runs `git --no-pager diff --name-status -z` with the same
// revision-range and path-filter handling as Fetch, and returns the parsed
// file entries after applying the configured include/exclude globs.
func (f *Fetcher) ListChanged(ctx context.Context, revRange string, pathFilters []string) ([]FileEntry, error) {
	out, err := f.run(ctx, f.diffArgs([]string{"--name-status", "-z"}, revRange, pathFilters))
	if err != nil {
		return nil, err
	}

	entries, err := parseNameStatus(out)
	if err != nil {
		return nil, err
	}

	filter := newPathFilter(f.opts.Include, f.opts.Exclude)
	kept := entries[:0]
	for _, e := range entries {
		match, err := filter.matches(e.Path)
		if err != nil {
			return nil, err
		}
		if match {
			kept = append(kept, e)
		}
	}
	return kept, nil
}

// parseNameStatus parses NUL-delimited `git diff --name-status -z` output.
// Format: STATUS\0PATH\0, or STATUS\0OLDPATH\0NEWPATH\0 for renames/copies.
func parseNameStatus(data []byte) ([]FileEntry, error) {
	parts := bytes.Split(data, []byte{0x00})

	// NUL-terminated output splits into a trailing empty element; drop it so
	// the bounds checks below see truncated records for what they are.
	if n := len(parts); n > 0 && len(parts[n-1]) == 0 {
		parts = parts[:n-1]
	}

	entries := make([]FileEntry, 0, len(parts)/2)
	i := 0

	for i < len(parts) {
		status := strings.TrimSpace(string(parts[i]))
		if status == "" {
			i++
			continue
		}

		if i+1 >= len(parts) {
			break
		}

		kind, twoPaths := statusToChangeKind(status)

		if twoPaths {
			if i+2 >= len(parts) {
				return nil, fmt.Errorf("unexpected diff output: rename entry missing new path")
			}
			entries = append(entries, FileEntry{
				Path:    string(parts[i+2]),
				OldPath: string(parts[i+1]),
				Kind:    kind,
			})
			i += 3
		} else {
			entries = append(entries, FileEntry{
				Path: string(parts[i+1]),
				Kind: kind,
			})
			i += 2
		}
	}

	return entries, nil
}

// statusToChangeKind converts a git diff status letter to ChangeKind.
// The second return reports whether the entry carries two paths.
func statusToChangeKind(status string) (ChangeKind, bool) {
	if len(status) == 0 {
		return ChangeKindModified, false
	}
	switch status[0] {
	case 'A':
		return ChangeKindAdded, false
	case 'D':
		return ChangeKindDeleted, false
	case 'R':
		return ChangeKindRenamed, true
	case 'C':
		return ChangeKindCopied, true
	default:
		return ChangeKindModified, false
	}
}
