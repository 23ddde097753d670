// Package elfdeps reads dynamic-linking metadata from ELF objects.
//
// This package extracts the DT_NEEDED entries of an ELF object's dynamic
// section, which name the shared libraries the object must have loaded at
// run time. It is designed to work with executables and shared libraries on
// Linux systems.
//
// # Usage
//
//	extractor := elfdeps.NewStandardExtractor()
//	output := extractor.ExtractDependencies("/usr/bin/ls")
//
//	if output.Result == elfdeps.DynamicObject {
//	    fmt.Printf("requires: %v\n", output.Libraries)
//	}
//
// # Limitations
//
//   - Statically linked objects (e.g., Go binaries) return StaticObject
//   - Requires read access to the object; unreadable files return AccessDenied
//   - Only DT_NEEDED entries are read (RPATH/RUNPATH resolution is out of scope)
package elfdeps
