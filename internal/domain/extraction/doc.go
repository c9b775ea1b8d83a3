// Package extraction defines the contracts and result shapes for model backed
// field extraction and document classification.
package extraction
