package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Skufu/GoTriage/internal/catalogue"
	"github.com/Skufu/GoTriage/internal/triage"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "triage",
		Short: "Symptom triage from the terminal",
		Long:  "triage matches selected symptoms against the condition catalogue and prints an urgency assessment.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			_ = godotenv.Load()
		},
		SilenceUsage: true,
	}

	root.AddCommand(
		newAssessCmd(),
		newConsultCmd(),
		newConditionsCmd(),
		newSymptomsCmd(),
		newReportCmd(),
		versionCmd,
	)
	return root
}

func Execute() error {
	return newRootCmd().Execute()
}

func newEngine() (*triage.Engine, error) {
	engine, err := triage.NewEngine(catalogue.Default(), triage.DefaultRules())
	if err != nil {
		return nil, fmt.Errorf("build engine: %w", err)
	}
	return engine, nil
}

// plainOutput reports whether w should receive unstyled text: when asked,
// when NO_COLOR is set, or when w is not a terminal.
func plainOutput(w io.Writer, forced bool) bool {
	if forced || os.Getenv("NO_COLOR") != "" {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return true
	}
	info, err := f.Stat()
	if err != nil {
		return true
	}
	return info.Mode()&os.ModeCharDevice == 0
}
