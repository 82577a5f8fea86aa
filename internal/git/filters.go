package git

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// pathFilter matches paths against include/exclude glob patterns. A filter
// is built per call, so the match cache never escapes a single invocation.
type pathFilter struct {
	include []string
	exclude []string
	cache   map[string]bool
}

func newPathFilter(include, exclude []string) *pathFilter {
	return &pathFilter{
		include: include,
		exclude: exclude,
		cache:   make(map[string]bool),
	}
}

// matches reports whether a path passes the filters. Exclude patterns win
// over include patterns; an empty include list accepts everything.
func (f *pathFilter) matches(path string) (bool, error) {
	path = strings.ReplaceAll(path, "\\", "/")

	if m, ok := f.cache[path]; ok {
		return m, nil
	}

	for _, pattern := range f.exclude {
		matched, err := doublestar.Match(pattern, path)
		if err != nil {
			return false, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		if matched {
			f.cache[path] = false
			return false, nil
		}
	}

	if len(f.include) == 0 {
		f.cache[path] = true
		return true, nil
	}

	for _, pattern := range f.include {
		matched, err := doublestar.Match(pattern, path)
		if err != nil {
			return false, fmt.Errorf("invalid include pattern %q: %w", pattern, err)
		}
		if matched {
			f.cache[path] = true
			return true, nil
		}
	}

	f.cache[path] = false
	return false, nil
}
