package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nmartin84/askpath/loader"
	"github.com/nmartin84/askpath/walk"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <questionnaire.yaml>",
	Short: "Validate and describe a questionnaire graph",
	Long:  "Load a question graph and print its structure in breadth-first order without asking anything.",
	Args:  cobra.ExactArgs(1),
	RunE:  inspectQuestionnaire,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func inspectQuestionnaire(cmd *cobra.Command, args []string) error {
	g, err := loader.LoadFile(args[0])
	if err != nil {
		return fmt.Errorf("loading questionnaire: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Questions: %d\n", g.VertexCount())
	fmt.Fprintf(os.Stdout, "Edges: %d\n", g.EdgeCount())
	if root := g.Root(); root != nil {
		fmt.Fprintf(os.Stdout, "Root: %s\n", root.ID)
	}
	fmt.Fprintf(os.Stdout, "Connected: %t\n", g.IsConnected())

	seq, err := walk.BreadthFirst(g)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Reachable questions (breadth-first):\n")
	for v := range seq {
		fmt.Fprintf(os.Stdout, "  - %s: %s\n", v.ID, v.Prompt)
		for _, he := range g.Adjacent(v) {
			fmt.Fprintf(os.Stdout, "      [%s] -> %s\n", he.Condition, he.To.ID)
		}
	}

	return nil
}
