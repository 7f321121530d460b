// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ExtractionStatus indicates the outcome of one archive extraction attempt.
type ExtractionStatus string

const (
	ExtractionDone          ExtractionStatus = "extracted"
	ExtractionBadArchive    ExtractionStatus = "bad_archive"
	ExtractionWrongPassword ExtractionStatus = "wrong_password"
	ExtractionFailed        ExtractionStatus = "failed"
)

// ArchiveFile is a zip archive discovered by the recursive scan.
type ArchiveFile struct {
	// Path is the absolute path to the archive.
	Path string `json:"path" yaml:"path"`

	// Dir is the archive's parent directory, which is also the extraction target.
	Dir string `json:"dir" yaml:"dir"`
}

// ExtractionResult records what happened to one archive.
type ExtractionResult struct {
	Archive ArchiveFile      `json:"archive" yaml:"archive"`
	Status  ExtractionStatus `json:"status" yaml:"status"`

	// Error holds the failure message. Empty on success.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Succeeded reports whether the archive was fully extracted.
func (r ExtractionResult) Succeeded() bool {
	return r.Status == ExtractionDone
}

// RunSummary is the record of a whole extraction run.
type RunSummary struct {
	// Root is the absolute directory that was scanned.
	Root string `json:"root" yaml:"root"`

	// Strategy names the extraction strategy used ("native" or "library").
	Strategy string `json:"strategy" yaml:"strategy"`

	// Results holds one entry per archive, in scan order.
	Results []ExtractionResult `json:"results" yaml:"results"`

	// Removed lists the archives deleted after confirmation.
	Removed []string `json:"removed,omitempty" yaml:"removed,omitempty"`
}

// Extracted returns the archives that extracted successfully.
func (s RunSummary) Extracted() []ArchiveFile {
	var out []ArchiveFile
	for _, r := range s.Results {
		if r.Succeeded() {
			out = append(out, r.Archive)
		}
	}
	return out
}

// Failed returns the number of archives that did not extract.
func (s RunSummary) Failed() int {
	n := 0
	for _, r := range s.Results {
		if !r.Succeeded() {
			n++
		}
	}
	return n
}
