package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestStructureWellFormedArtifactPasses(t *testing.T) {
	path := writeArtifact(t, `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <meta http-equiv="Content-Security-Policy" content="default-src 'self'">
  <title>App</title>
</head>
<body></body>
</html>`)

	if err := structureCmd.RunE(structureCmd, []string{path}); err != nil {
		t.Fatalf("well-formed artifact should pass the checklist: %v", err)
	}
}

func TestStructureBareFragmentFails(t *testing.T) {
	path := writeArtifact(t, `<div>fragment</div>`)

	err := structureCmd.RunE(structureCmd, []string{path})
	var failed *StructureFailedError
	if !errors.As(err, &failed) {
		t.Fatalf("expected StructureFailedError, got %v", err)
	}
	if failed.Failed == 0 {
		t.Error("failure must carry the failed check count")
	}
}

func TestFixturesWritesCorpus(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "corpus")
	if err := fixturesCmd.Flags().Set("output-dir", outDir); err != nil {
		t.Fatal(err)
	}
	defer func() { _ = fixturesCmd.Flags().Set("output-dir", defaultOutputDir) }()

	if err := fixturesCmd.RunE(fixturesCmd, nil); err != nil {
		t.Fatalf("fixtures generation failed: %v", err)
	}

	for _, name := range []string{"transactions.csv", "edge_cases.qif", "edge_cases.ofx", "numeric_cases.txt", "date_cases.txt", "string_cases.txt"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("fixture %s not written: %v", name, err)
		}
	}
}
