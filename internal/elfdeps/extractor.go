package elfdeps

import "fmt"

// ExtractionResult represents the result type of dependency extraction.
type ExtractionResult int

const (
	// DynamicObject indicates a valid ELF object with a dynamic section.
	// The libraries it requires were read from its DT_NEEDED entries.
	DynamicObject ExtractionResult = iota

	// StaticObject indicates a valid ELF object without a dynamic section.
	// Statically linked objects require no libraries at run time.
	StaticObject

	// NotELFObject indicates the file is not a parseable ELF object.
	// This includes scripts, text files, non-regular files and files whose
	// content is malformed despite a correct magic number.
	NotELFObject

	// AccessDenied indicates the file could not be read, typically because
	// of missing permissions. Callers surface these paths as warnings.
	AccessDenied
)

// String returns a string representation of ExtractionResult.
func (r ExtractionResult) String() string {
	switch r {
	case DynamicObject:
		return "dynamic_object"
	case StaticObject:
		return "static_object"
	case NotELFObject:
		return "not_elf_object"
	case AccessDenied:
		return "access_denied"
	default:
		return fmt.Sprintf("unknown(%d)", int(r))
	}
}

// ExtractionOutput contains the complete result of dependency extraction.
type ExtractionOutput struct {
	// Result is the overall extraction result type
	Result ExtractionResult

	// Libraries contains the required library names from DT_NEEDED entries,
	// in file order. Only populated when Result == DynamicObject; a dynamic
	// object that requires nothing has an empty list.
	Libraries []string

	// Err contains the error details when Result == AccessDenied.
	// May also be set for NotELFObject to provide diagnostic context
	// (e.g., when the content was malformed rather than a different format).
	Err error
}

// HasMetadata returns true if the extraction produced dynamic-linking
// metadata callers can act on.
func (o ExtractionOutput) HasMetadata() bool {
	return o.Result == DynamicObject
}

// DependencyExtractor defines the interface for reading dynamic-linking
// metadata from binary objects.
type DependencyExtractor interface {
	// ExtractDependencies examines the object at the given path and
	// determines which shared libraries it requires at run time.
	//
	// Returns:
	//   - DynamicObject: valid object, Libraries holds the DT_NEEDED names
	//   - StaticObject: valid object without a dynamic section
	//   - NotELFObject: file is not a parseable ELF object
	//   - AccessDenied: file could not be read (check Err)
	ExtractDependencies(path string) ExtractionOutput
}
