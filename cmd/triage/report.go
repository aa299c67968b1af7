package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Skufu/GoTriage/internal/advisor"
	"github.com/Skufu/GoTriage/internal/report"
	"github.com/Skufu/GoTriage/internal/symptom"
)

func newReportCmd() *cobra.Command {
	var (
		name     string
		symptoms []string
		outPath  string
	)

	cmd := &cobra.Command{
		Use:   "report [symptom...]",
		Short: "Write a plain-text assessment report",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine()
			if err != nil {
				return err
			}
			selected := append(symptoms, args...)
			c := advisor.New(engine, advisor.DefaultConfig()).Consult(cmd.Context(), advisor.Request{Symptoms: selected})

			r := report.TextReport(report.Input{
				PatientName: name,
				Assessment:  c.Response,
				Symptoms:    symptom.Names(c.Assessment.Symptoms),
				Alerts:      c.Assessment.Alerts,
			}, time.Now())

			if outPath == "" {
				fmt.Fprint(cmd.OutOrStdout(), r.Body)
				return nil
			}
			if err := os.WriteFile(outPath, []byte(r.Body), 0o644); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "report %s written to %s\n", r.ID, outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Patient name")
	cmd.Flags().StringArrayVarP(&symptoms, "symptom", "s", nil, "Selected symptom (repeatable)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the report to a file instead of stdout")
	return cmd
}
