package libscan

// MissingLibrary is one unresolved library name together with every scanned
// object that requires it, in submission order.
type MissingLibrary struct {
	Name       string   `json:"name"`
	RequiredBy []string `json:"required_by"`
}

// Warning describes a file that could not be read during the scan.
type Warning struct {
	Path   string `json:"path"`
	Detail string `json:"detail,omitempty"`
}

// ExtractionStats counts extraction outcomes across a run.
type ExtractionStats struct {
	Submitted      int `json:"submitted"`
	DynamicObjects int `json:"dynamic_objects"`
	StaticObjects  int `json:"static_objects"`
	NonELF         int `json:"non_elf"`
	AccessDenied   int `json:"access_denied"`
}

// Report is the complete outcome of one dependency check.
type Report struct {
	RunID              string           `json:"run_id,omitempty"`
	LibraryRoots       []string         `json:"library_roots"`
	BinaryRoots        []string         `json:"binary_roots"`
	Missing            []MissingLibrary `json:"missing"`
	Warnings           []Warning        `json:"warnings,omitempty"`
	LibrariesAvailable int              `json:"libraries_available"`
	Extraction         ExtractionStats  `json:"extraction"`
	DurationMS         int64            `json:"duration_ms"`
}

// HasFindings returns true when at least one required library is missing.
func (r *Report) HasFindings() bool {
	return len(r.Missing) > 0
}
