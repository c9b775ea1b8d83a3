// Package jobs contains the processing job entity, its query filter and the
// service and repository contracts for accepting uploads, tracking runs and
// serving finished reports.
package jobs
