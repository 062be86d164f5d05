// Package libdiff computes line diffs of event listings.
//
// # Usage
//
//	// Diff the normalised serialisations of two event lists
//	hunks := libdiff.Events(oldEvents, newEvents)
//	libdiff.Write(os.Stdout, hunks, nil)
//
// Lines are compared whole, so a changed float shows up as one deleted and
// one inserted record.
//
// # Related Packages
//
//   - github.com/signadot/go-hepmc2/encode - the serialisation being compared
package libdiff
