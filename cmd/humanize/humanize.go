package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/germanamz/humanize/pkg/humanizer"
	"github.com/germanamz/humanize/pkg/style"
	"github.com/spf13/cobra"
)

// runFlags are the request flags shared by the root and batch commands.
type runFlags struct {
	level         string
	tone          string
	model         string
	options       string
	file          string
	json          bool
	diff          bool
	minConfidence int
}

func addRunFlags(cmd *cobra.Command, f *runFlags) {
	fl := cmd.Flags()
	fl.StringVarP(&f.level, "level", "l", "", "humanization level (light, medium, aggressive); defaults to config")
	fl.StringVarP(&f.tone, "tone", "t", "", "writing tone (conversational, professional, casual, academic, creative); defaults to config")
	fl.StringVarP(&f.model, "model", "m", "", "preferred model, used only when listed in the configured models")
	fl.StringVar(&f.options, "options", "", "free-form instructions passed to the rewrite stages")
	fl.StringVarP(&f.file, "file", "f", "", "read input from file instead of args or stdin")
	fl.BoolVar(&f.json, "json", false, "print the full result as JSON")
	fl.BoolVar(&f.diff, "diff", false, "print a unified diff of input and output after the text")
	fl.IntVar(&f.minConfidence, "min-confidence", 0, "fail when the confidence score is below this value")
}

// request builds a request from the config defaults and the flags.
func (f runFlags) request(base humanizer.Request, text string) (humanizer.Request, error) {
	req := base
	req.Text = text
	req.Model = f.model
	req.Options = f.options

	if f.level != "" {
		l, err := style.ParseLevel(f.level)
		if err != nil {
			return humanizer.Request{}, err
		}
		req.Level = l
	}
	if f.tone != "" {
		t, err := style.ParseTone(f.tone)
		if err != nil {
			return humanizer.Request{}, err
		}
		req.Tone = t
	}

	return req, nil
}

func (f runFlags) middleware() []humanizer.Middleware {
	if f.minConfidence <= 0 {
		return nil
	}
	return []humanizer.Middleware{humanizer.Guardrail(humanizer.MinConfidence(f.minConfidence))}
}

func (a *app) runHumanize(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd, args, a.run.file)
	if err != nil {
		return err
	}

	req, err := a.run.request(a.cfg.Request(), text)
	if err != nil {
		return err
	}

	res, err := a.pipeline("cli", a.run.middleware()...).Run(cmd.Context(), req)
	if err != nil {
		return err
	}

	return writeResult(cmd.OutOrStdout(), a.run, text, res)
}

func writeResult(w io.Writer, f runFlags, input string, res humanizer.Result) error {
	if f.json {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	if _, err := fmt.Fprintln(w, res.OutputText); err != nil {
		return err
	}

	if f.diff {
		if _, err := fmt.Fprint(w, "\n"+newStyles(w).diff(unifiedDiff(input, res.OutputText))); err != nil {
			return err
		}
	}

	return nil
}
