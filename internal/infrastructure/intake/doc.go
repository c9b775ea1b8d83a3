// Package intake stores uploaded archives, unpacks them and scans the
// resulting case folders into typed document groups.
package intake
