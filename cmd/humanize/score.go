package main

import (
	"encoding/json"
	"fmt"

	"github.com/germanamz/humanize/pkg/humanizer"
	"github.com/spf13/cobra"
)

func newScoreCmd() *cobra.Command {
	var (
		file   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "score [text...]",
		Short: "Print heuristic scores for a text",
		Long: `Print burstiness, lexical variety and the heuristic confidence score.

No detector or language model is consulted, so confidence is floored at 50.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args, file)
			if err != nil {
				return err
			}

			s := humanizer.Score(text)
			w := cmd.OutOrStdout()

			if asJSON {
				return json.NewEncoder(w).Encode(s)
			}

			st := newStyles(w)
			fmt.Fprintf(w, "%s %d\n", st.label.Render("words:          "), s.Words)
			fmt.Fprintf(w, "%s %.3f\n", st.label.Render("burstiness:     "), s.Burstiness)
			fmt.Fprintf(w, "%s %.3f\n", st.label.Render("lexical variety:"), s.LexicalVariety)
			fmt.Fprintf(w, "%s %d\n", st.label.Render("confidence:     "), s.Confidence)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read input from file instead of args or stdin")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print scores as JSON")

	return cmd
}
