package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Skufu/GoTriage/internal/dashboard"
	"github.com/Skufu/GoTriage/internal/triage"
)

func newAssessCmd() *cobra.Command {
	var (
		symptoms []string
		hasImage bool
		hasAudio bool
		quality  string
		asJSON   bool
		plain    bool
	)

	cmd := &cobra.Command{
		Use:   "assess [symptom...]",
		Short: "Assess a set of symptoms",
		Example: `  triage assess -s Fever -s Cough -s "Body Aches"
  triage assess "Skin Rash" --image --quality good --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := triage.ImageQuality(quality)
			if !q.Valid() {
				return fmt.Errorf("--quality must be %q or %q", triage.ImageQualityGood, triage.ImageQualityUnknown)
			}

			engine, err := newEngine()
			if err != nil {
				return err
			}
			a := engine.Analyze(triage.Input{
				Symptoms:     append(symptoms, args...),
				HasImage:     hasImage,
				HasAudio:     hasAudio,
				ImageQuality: q,
			})

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(a)
			}
			fmt.Fprintln(out, dashboard.New(plainOutput(out, plain)).Render(a))
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&symptoms, "symptom", "s", nil, "Selected symptom (repeatable)")
	cmd.Flags().BoolVar(&hasImage, "image", false, "An image of the affected area is available")
	cmd.Flags().BoolVar(&hasAudio, "audio", false, "A voice description is available")
	cmd.Flags().StringVar(&quality, "quality", "", "Image quality hint: good or unknown")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the assessment as JSON")
	cmd.Flags().BoolVar(&plain, "plain", false, "Disable colours")
	return cmd
}
