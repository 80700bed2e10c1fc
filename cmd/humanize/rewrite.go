package main

import (
	"fmt"

	"github.com/germanamz/humanize/pkg/heuristics"
	"github.com/germanamz/humanize/pkg/humanizer"
	"github.com/spf13/cobra"
)

func newRewriteCmd(a *app) *cobra.Command {
	var (
		f     runFlags
		stage string
	)

	cmd := &cobra.Command{
		Use:   "rewrite [text...]",
		Short: "Run only the heuristic rewriter",
		Long: `Run the local heuristic rewriter without any language model or detector.

--stage pre strips stock phrases, swaps connectors and converts the
trailing-agent passive; --stage post rotates synonyms, rebalances sentence
lengths and varies punctuation; --stage both runs pre then post.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args, f.file)
			if err != nil {
				return err
			}

			req, err := f.request(a.cfg.Request(), text)
			if err != nil {
				return err
			}

			var out string
			switch stage {
			case "pre":
				out, err = humanizer.Rewrite(req, heuristics.Pre)
			case "post":
				out, err = humanizer.Rewrite(req, heuristics.Post)
			case "both":
				out, err = humanizer.Rewrite(req, heuristics.Pre)
				if err == nil {
					req.Text = out
					out, err = humanizer.Rewrite(req, heuristics.Post)
				}
			default:
				return fmt.Errorf("rewrite: unknown stage %q", stage)
			}
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, out)
			if f.diff {
				fmt.Fprint(w, "\n"+newStyles(w).diff(unifiedDiff(text, out)))
			}
			return nil
		},
	}

	addRunFlags(cmd, &f)
	for _, name := range []string{"model", "options", "json", "min-confidence"} {
		_ = cmd.Flags().MarkHidden(name)
	}
	cmd.Flags().StringVar(&stage, "stage", "both", "rewriter stage (pre, post, both)")

	return cmd
}
