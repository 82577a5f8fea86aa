package output

import (
	"encoding/json"
	"fmt"
	"time"
)

// JSONFileListWriter writes changed-file listings as JSON.
type JSONFileListWriter struct{}

// JSONFileListReport is the JSON output structure for a changed-file listing.
type JSONFileListReport struct {
	RepoPath    string         `json:"repo"`
	RevRange    string         `json:"revRange,omitempty"`
	GeneratedAt string         `json:"generatedAt"`
	TotalFiles  int            `json:"totalFiles"`
	Files       []JSONFileItem `json:"files"`
}

// JSONFileItem is the JSON output structure for a single changed file.
type JSONFileItem struct {
	Path    string `json:"path"`
	OldPath string `json:"oldPath,omitempty"`
	Status  string `json:"status"`
}

// Write outputs the changed-file listing as JSON.
func (w *JSONFileListWriter) Write(report *FileListReport, options OutputOptions) error {
	out := JSONFileListReport{
		RepoPath:    report.RepoPath,
		RevRange:    report.RevRange,
		GeneratedAt: report.GeneratedAt.Format(time.RFC3339),
		TotalFiles:  len(report.Entries),
		Files:       make([]JSONFileItem, 0, len(report.Entries)),
	}
	for _, e := range report.Entries {
		out.Files = append(out.Files, JSONFileItem{
			Path:    e.Path,
			OldPath: e.OldPath,
			Status:  e.Kind.String(),
		})
	}
	return writeJSON(out, options)
}

// JSONStatWriter writes diff stat summaries as JSON.
type JSONStatWriter struct{}

// JSONStatReport is the JSON output structure for a stat summary.
type JSONStatReport struct {
	RepoPath     string         `json:"repo"`
	RevRange     string         `json:"revRange,omitempty"`
	GeneratedAt  string         `json:"generatedAt"`
	TotalAdded   int            `json:"totalAdded"`
	TotalDeleted int            `json:"totalDeleted"`
	Files        []JSONStatItem `json:"files"`
}

// JSONStatItem is the JSON output structure for a single file's counts.
type JSONStatItem struct {
	Path    string `json:"path"`
	OldPath string `json:"oldPath,omitempty"`
	Added   int    `json:"added"`
	Deleted int    `json:"deleted"`
	Binary  bool   `json:"binary,omitempty"`
}

// Write outputs the stat summary as JSON.
func (w *JSONStatWriter) Write(report *StatReport, options OutputOptions) error {
	added, deleted := report.Totals()
	out := JSONStatReport{
		RepoPath:     report.RepoPath,
		RevRange:     report.RevRange,
		GeneratedAt:  report.GeneratedAt.Format(time.RFC3339),
		TotalAdded:   added,
		TotalDeleted: deleted,
		Files:        make([]JSONStatItem, 0, len(report.Stats)),
	}
	for _, s := range report.Stats {
		out.Files = append(out.Files, JSONStatItem{
			Path:    s.Path,
			OldPath: s.OldPath,
			Added:   s.Added,
			Deleted: s.Deleted,
			Binary:  s.Binary,
		})
	}
	return writeJSON(out, options)
}

func writeJSON(v any, options OutputOptions) error {
	writer, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	enc := json.NewEncoder(writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode JSON output: %w", err)
	}
	return nil
}
