package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pagesec/pagesec-cli/internal/artifact"
	"github.com/pagesec/pagesec-cli/internal/structure"
)

var structureCmd = &cobra.Command{
	Use:   "structure [file]",
	Short: "Run the structural checklist against an HTML artifact",
	Long: `Presence and counting checks: document skeleton, security meta tags,
script hygiene, accessibility labels, style conventions. Independent of the
adversarial rule engine; a structural failure never changes a security
verdict.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := defaultArtifactPath
		if len(args) == 1 {
			path = args[0]
		}

		doc, err := artifact.Load(path)
		if err != nil {
			return &ArtifactNotFoundError{Path: path}
		}

		checklist := structure.Run(doc)
		logger.Infow("structure checklist", "artifact", path,
			"passed", checklist.Passed, "failed", checklist.Failed, "warnings", checklist.Warnings)

		fmt.Printf("%s %s\n", colorInfo("Checking:"), path)
		for _, r := range checklist.Results {
			tag := "[" + formatOutcomeWithColor(strings.ToUpper(string(r.Status))) + "]"
			line := fmt.Sprintf("  %s %s", tag, r.Name)
			if r.Detail != "" {
				line += " — " + r.Detail
			}
			fmt.Println(line)
		}

		fmt.Printf("\n%s %d passed, %d failed, %d warnings (%.0f%%)\n",
			colorInfo("Summary:"), checklist.Passed, checklist.Failed,
			checklist.Warnings, checklist.Score())

		if checklist.Failed > 0 {
			return &StructureFailedError{Path: path, Failed: checklist.Failed}
		}
		return nil
	},
}
