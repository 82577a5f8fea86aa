package git

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
)

// DiffStat runs `git --no-pager diff --numstat -z` and returns per-file
// added/deleted line counts, honoring the configured include/exclude globs.
func (f *Fetcher) DiffStat(ctx context.Context, revRange string, pathFilters []string) ([]FileStat, error) {
	out, err := f.run(ctx, f.diffArgs([]string{"--numstat", "-z"}, revRange, pathFilters))
	if err != nil {
		return nil, err
	}

	stats, err := parseNumstat(out)
	if err != nil {
		return nil, err
	}

	filter := newPathFilter(f.opts.Include, f.opts.Exclude)
	kept := stats[:0]
	for _, s := range stats {
		match, err := filter.matches(s.Path)
		if err != nil {
			return nil, err
		}
		if match {
			kept = append(kept, s)
		}
	}
	return kept, nil
}

// parseNumstat parses NUL-delimited `git diff --numstat -z` output.
// Each entry is ADDED\tDELETED\tPATH\0; for renames and copies the path
// field is empty and followed by OLDPATH\0NEWPATH\0. Binary files report
// "-" for both counts.
func parseNumstat(data []byte) ([]FileStat, error) {
	stats := make([]FileStat, 0, 32)
	i := 0

	for i < len(data) {
		added, binary, ok, err := readNumstatInt(data, &i, '\t')
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}

		deleted, _, ok, err := readNumstatInt(data, &i, '\t')
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("unexpected git --numstat format (deleted)")
		}

		path, ok := readStringUntilNUL(data, &i)
		if !ok {
			return nil, fmt.Errorf("unexpected git --numstat format (path)")
		}

		st := FileStat{Path: path, Added: added, Deleted: deleted, Binary: binary}

		// An empty path field signals a rename/copy: old and new paths follow
		// as two more NUL-terminated fields.
		if path == "" {
			oldPath, ok := readStringUntilNUL(data, &i)
			if !ok {
				return nil, fmt.Errorf("unexpected git --numstat format (old path)")
			}
			newPath, ok := readStringUntilNUL(data, &i)
			if !ok {
				return nil, fmt.Errorf("unexpected git --numstat format (new path)")
			}
			st.Path = newPath
			st.OldPath = oldPath
		}

		stats = append(stats, st)
	}

	return stats, nil
}

func readUntilNUL(b []byte, i *int) ([]byte, bool) {
	if *i >= len(b) {
		return nil, false
	}
	j := bytes.IndexByte(b[*i:], 0)
	if j == -1 {
		return nil, false
	}
	start := *i
	end := *i + j
	*i = end + 1
	return b[start:end], true
}

func readStringUntilNUL(b []byte, i *int) (string, bool) {
	raw, ok := readUntilNUL(b, i)
	if !ok {
		return "", false
	}
	return string(raw), true
}

func readNumstatInt(b []byte, i *int, delim byte) (n int, binary bool, ok bool, err error) {
	if *i >= len(b) {
		return 0, false, false, nil
	}
	j := bytes.IndexByte(b[*i:], delim)
	if j == -1 {
		return 0, false, false, nil
	}
	field := b[*i : *i+j]
	*i = *i + j + 1

	if len(field) == 1 && field[0] == '-' {
		return 0, true, true, nil
	}
	n, convErr := strconv.Atoi(string(field))
	if convErr != nil {
		return 0, false, true, fmt.Errorf("parse numstat int %q: %w", string(field), convErr)
	}
	return n, false, true, nil
}
