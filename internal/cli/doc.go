// Package cli parses command-line arguments into a validated query and maps
// failures to process exit codes. Invalid input exits 2, a failed fetch 1.
package cli
