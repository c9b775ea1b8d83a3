// Package cases models uploaded case archives: the case folders found inside
// an archive, the per-type document groups within each case, and the
// contracts of the archive processing pipeline.
package cases
