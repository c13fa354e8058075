// Package testsupport holds fixture and golden-file helpers shared by package
// tests. Set UPDATE_GOLDENS=1 to rewrite golden files.
package testsupport

import "path/filepath"

// FixturePath returns the path of a shared fixture relative to a test's
// working directory, which is the package under test.
func FixturePath(relRoot, name string) string {
	return filepath.Join(relRoot, "pkg", "testsupport", "testdata", name)
}
