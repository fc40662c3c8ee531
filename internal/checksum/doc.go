// Package checksum computes content digests for inputs and rendered artifacts.
//
// Digests are BLAKE2b-256, hex encoded. Fingerprint truncates a digest to 10
// bytes (20 hex chars) for log lines.
package checksum
