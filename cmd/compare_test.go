package cmd

import "testing"

func TestRunCompare_MissingBaselineIsGraceful(t *testing.T) {
	origRoot := flagRoot
	defer func() { flagRoot = origRoot }()

	// A project with no baseline saved yet: compare must print guidance and
	// stop cleanly instead of returning an error.
	flagRoot = t.TempDir()

	if err := runCompare(nil, nil); err != nil {
		t.Fatalf("runCompare without baseline = %v, want nil", err)
	}
}
