package cmd

import "fmt"

// ArtifactNotFoundError indicates the audit target could not be read.
type ArtifactNotFoundError struct {
	Path string
}

func (e *ArtifactNotFoundError) Error() string {
	return fmt.Sprintf("artifact %s not found or unreadable", e.Path)
}

// AuditFailedError signals that the audit finished with vulnerable verdicts.
// It drives the non-zero exit status; the report itself has already been
// rendered by the time this error surfaces.
type AuditFailedError struct {
	Path            string
	Vulnerabilities int
}

func (e *AuditFailedError) Error() string {
	if e.Vulnerabilities == 1 {
		return fmt.Sprintf("audit of %s found 1 vulnerability", e.Path)
	}
	return fmt.Sprintf("audit of %s found %d vulnerabilities", e.Path, e.Vulnerabilities)
}

// StructureFailedError signals failed checks in the structural checklist.
type StructureFailedError struct {
	Path   string
	Failed int
}

func (e *StructureFailedError) Error() string {
	return fmt.Sprintf("structural checklist for %s: %d check(s) failed", e.Path, e.Failed)
}

// InvalidFormatError rejects an unsupported report format flag value.
type InvalidFormatError struct {
	Format string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format: %s (must be text, json, md, or pdf)", e.Format)
}
