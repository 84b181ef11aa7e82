package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"trustscore/internal/domain"
	"trustscore/internal/nba"
	"trustscore/internal/rules"
	"trustscore/internal/scoring"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "trustscore",
		Short:         "Score estate trusts and rank next best actions offline",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newScoreCmd(), newRulesCmd())
	return root
}

func newScoreCmd() *cobra.Command {
	var inputPath, rulesPath string
	var compact bool
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Compute trust metrics and actions for an input file",
		Long:  "Reads {trust, assets, documents, evidence} JSON from --file (or - for stdin) and prints {result, actions}.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rs, err := loadRules(rulesPath)
			if err != nil {
				return err
			}
			in, err := readInput(cmd.InOrStdin(), inputPath)
			if err != nil {
				return err
			}
			if err := in.Validate(); err != nil {
				return fmt.Errorf("invalid input: %w", err)
			}
			res := scoring.Compute(in)
			out := struct {
				Result  domain.ComputeResult `json:"result"`
				Actions domain.NBAResult     `json:"actions"`
			}{res, nba.Evaluate(res, in.Trust, rs.Rules)}
			return writeJSON(cmd.OutOrStdout(), out, compact)
		},
	}
	cmd.Flags().StringVarP(&inputPath, "file", "f", "", "input JSON file, - for stdin")
	cmd.Flags().StringVar(&rulesPath, "rules", "", "rule set YAML (defaults to the built-in table)")
	cmd.Flags().BoolVar(&compact, "compact", false, "print JSON on one line")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newRulesCmd() *cobra.Command {
	var rulesPath string
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Print the rule set as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rs, err := loadRules(rulesPath)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), rs, false)
		},
	}
	cmd.Flags().StringVar(&rulesPath, "rules", "", "rule set YAML (defaults to the built-in table)")
	return cmd
}

func loadRules(path string) (rules.RuleSet, error) {
	if path == "" {
		return rules.Default()
	}
	return rules.LoadFile(path)
}

func readInput(stdin io.Reader, path string) (domain.Input, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return domain.Input{}, err
		}
		defer f.Close()
		r = f
	}
	var in domain.Input
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return domain.Input{}, fmt.Errorf("decode input: %w", err)
	}
	return in, nil
}

func writeJSON(w io.Writer, v any, compact bool) error {
	enc := json.NewEncoder(w)
	if !compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
