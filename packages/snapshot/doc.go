// Package snapshot stores expected values on disk and compares later runs
// against them.
//
// Snapshots are JSON files under <baseDir>/__snapshots__, one file per suite
// (usually one test). Values are normalised through JSON before comparison,
// so an int written today compares equal to the float64 read back tomorrow.
package snapshot
