package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dshills/stringmod/internal/transform"
)

func (c *cli) newApplyCmd() *cobra.Command {
	var newline bool

	names := make([]string, len(transform.Actions))
	for i, a := range transform.Actions {
		names[i] = a.String()
	}

	cmd := &cobra.Command{
		Use:   "apply ACTION",
		Short: "Transform standard input with a text action",
		Long: `Reads a selection from standard input and writes its replacement to
standard output. Empty input writes nothing.

Actions: ` + strings.Join(names, ", ") + `

Custom delimiters and the array delimiters come from the configuration
file; STRINGMOD_<KEY> variables such as STRINGMOD_CUSTOM_START override
single values for this run.`,
		Example: `  echo -n abc | stringmod apply braces
  printf 'foo bar' | STRINGMOD_RADIO_WORD_ARRAY=1 stringmod apply word-array`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: names,
		RunE: func(cmd *cobra.Command, args []string) error {
			action, err := transform.ParseAction(args[0])
			if err != nil {
				return err
			}
			cfg, err := c.loadConfig(true)
			if err != nil {
				return err
			}
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return err
			}

			text, suffix := string(data), ""
			if newline {
				text, suffix = splitNewline(text)
			}

			out, ok, err := transform.Apply(action, text, cfg.Options())
			if err != nil {
				return err
			}
			if !ok {
				c.logger.Debug("empty selection", zap.Stringer("action", action))
				out = ""
			}
			_, err = io.WriteString(cmd.OutOrStdout(), out+suffix)
			return err
		},
	}
	cmd.Flags().BoolVarP(&newline, "newline", "n", false, "keep a trailing newline outside the transformed text")
	return cmd
}

// splitNewline separates one trailing line ending from s.
func splitNewline(s string) (text, suffix string) {
	switch {
	case strings.HasSuffix(s, "\r\n"):
		return s[:len(s)-2], "\r\n"
	case strings.HasSuffix(s, "\n"):
		return s[:len(s)-1], "\n"
	default:
		return s, ""
	}
}
