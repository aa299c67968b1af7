package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Skufu/GoTriage/internal/catalogue"
)

func newConditionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "conditions [id]",
		Short: "List catalogue conditions, or show one in detail",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := catalogue.Default()
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				cond, ok := cat.Lookup(args[0])
				if !ok {
					return fmt.Errorf("unknown condition %q", args[0])
				}
				fmt.Fprintf(out, "%s (%s)\n", cond.Name, cond.ID)
				fmt.Fprintf(out, "Urgency:  %s\n", cond.Urgency)
				fmt.Fprintf(out, "Symptoms: %s\n", strings.Join(cond.Symptoms, ", "))
				fmt.Fprintf(out, "Advice:   %s\n", cond.Advice)
				fmt.Fprintf(out, "Remedy:   %s\n", cond.Remedy)
				if qs := cat.FollowUpQuestions(cond.ID); len(qs) > 0 {
					fmt.Fprintln(out, "\nFollow-up questions:")
					for _, q := range qs {
						fmt.Fprintf(out, "  - %s\n", q)
					}
				}
				return nil
			}

			fmt.Fprintf(out, "%-20s  %-28s  %s\n", "ID", "Condition", "Urgency")
			fmt.Fprintln(out, strings.Repeat("─", 80))
			for _, c := range cat.Conditions() {
				fmt.Fprintf(out, "%-20s  %-28s  %s\n", c.ID, c.Name, c.Urgency)
			}
			return nil
		},
	}
}

func newSymptomsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "symptoms",
		Short: "List selectable symptoms by category",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for i, c := range catalogue.Taxonomy() {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "%s [%s]\n", c.Title, c.Key)
				for _, s := range c.Symptoms {
					fmt.Fprintf(out, "  %s\n", s)
				}
			}
		},
	}
}
