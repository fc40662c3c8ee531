// Package store writes rendered artifacts to the output directory.
//
// Each artifact is written to a temporary file in the target directory and
// renamed over the final name, so a reader never sees a half-written plot or
// CSV. The run manifest, written last, records a BLAKE2b digest of every
// input and artifact; Verify re-checks a directory against it.
//
// The package includes:
//   - Dir, the artifact store rooted at the output directory
//   - Manifest, BuildManifest and Verify
package store
