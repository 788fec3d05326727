package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dshills/stringmod/internal/config"
	"github.com/dshills/stringmod/internal/config/loader"
	"github.com/dshills/stringmod/internal/dialog"
	"github.com/dshills/stringmod/internal/input/key"
	"github.com/dshills/stringmod/internal/input/keymap"
	"github.com/dshills/stringmod/internal/plugin"
	"github.com/dshills/stringmod/internal/renderer/backend"
	"github.com/dshills/stringmod/internal/transform"
)

var (
	keyStyle   = lipgloss.NewStyle().Bold(true).Width(18)
	valueStyle = lipgloss.NewStyle()
	noteStyle  = lipgloss.NewStyle().Faint(true)
	titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

func (c *cli) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and edit the configuration file",
		Long: `The configuration file holds one key=value line per setting, in a fixed
order. Keys can be given as written in the file (AccelBraces) or in kebab
case (accel-braces).`,
	}
	cmd.AddCommand(
		c.newConfigShowCmd(),
		c.newConfigPathCmd(),
		c.newConfigGetCmd(),
		c.newConfigSetCmd(),
		c.newConfigResetCmd(),
		c.newConfigExportCmd(),
		c.newConfigImportCmd(),
		c.newConfigBindCmd(),
	)
	return cmd
}

func (c *cli) newConfigShowCmd() *cobra.Command {
	var effective bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print all settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.loadConfig(effective)
			if err != nil {
				return err
			}
			var overridden map[config.Key]string
			if effective {
				overridden = c.envLoader().Overrides()
			}
			return renderConfig(cmd.OutOrStdout(), c.store().Path(), cfg, overridden)
		},
	}
	cmd.Flags().BoolVar(&effective, "effective", false, "apply STRINGMOD_<KEY> environment overrides")
	return cmd
}

// renderConfig prints cfg as an aligned key/value listing.
func renderConfig(w io.Writer, path string, cfg *config.Config, overridden map[config.Key]string) error {
	var b strings.Builder
	b.WriteString(titleStyle.Render(path))
	b.WriteString("\n")
	for _, k := range config.Keys() {
		v, err := cfg.Get(k)
		if err != nil {
			return err
		}
		value := valueStyle.Render(v)
		switch {
		case k.IsChoice():
			p, _ := transform.PairAt(choiceValue(cfg, k))
			value += " " + noteStyle.Render(fmt.Sprintf("(%s)", p))
		case v == "":
			value = noteStyle.Render("(none)")
		}
		if _, ok := overridden[k]; ok {
			value += " " + noteStyle.Render("[env]")
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, keyStyle.Render(k.String()), value))
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func choiceValue(cfg *config.Config, k config.Key) int {
	if k == config.KeyRadioCharArray {
		return cfg.RadioCharArray
	}
	return cfg.RadioWordArray
}

func (c *cli) newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), c.store().Path())
			return err
		},
	}
}

func (c *cli) newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Print one setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := config.KeyByName(args[0])
			if err != nil {
				return err
			}
			cfg, err := c.loadConfig(false)
			if err != nil {
				return err
			}
			v, err := cfg.Get(k)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
			return err
		},
	}
}

func (c *cli) newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Change one setting",
		Long: `Changes one setting and saves the file. Accelerators may be written in
any form the key parser accepts ("Ctrl+b", "<C-b>", "<Control>b") and are
saved in accelerator form. An empty value removes an accelerator. An
accelerator already used by another action is rejected.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := config.KeyByName(args[0])
			if err != nil {
				return err
			}
			value := args[1]
			if k.IsAccel() {
				if value, err = key.Normalize(value); err != nil {
					return err
				}
			}

			store := c.store()
			cfg, _, err := store.Load()
			if err != nil {
				return err
			}
			if err := cfg.Set(k, value); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if k.IsAccel() {
				if err := dialog.ApplyAccels(keymap.NewAccelMap(), plugin.AccelPaths(), cfg); err != nil {
					return err
				}
			}
			if err := store.Save(cfg); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", k, value)
			return err
		},
	}
}

func (c *cli) newConfigResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Overwrite the configuration with the defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := c.store().Reset(); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "configuration reset to defaults")
			return err
		},
	}
}

func (c *cli) newConfigExportCmd() *cobra.Command {
	var format, output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the configuration as TOML, YAML or JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := exportFormat(format, output)
			if err != nil {
				return err
			}
			cfg, err := c.loadConfig(false)
			if err != nil {
				return err
			}

			if output == "" {
				return loader.Encode(cmd.OutOrStdout(), cfg, f)
			}
			file, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := loader.Encode(file, cfg, f); err != nil {
				file.Close()
				return err
			}
			return file.Close()
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "toml, yaml or json (default from --output, else toml)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	return cmd
}

// exportFormat picks the explicit format, else the output extension, else
// TOML.
func exportFormat(format, output string) (loader.Format, error) {
	switch {
	case format != "":
		return loader.ParseFormat(format)
	case output != "":
		return loader.FormatForPath(output)
	default:
		return loader.FormatTOML, nil
	}
}

func (c *cli) newConfigImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Replace the configuration with a TOML, YAML or JSON file",
		Long: `Reads FILE, choosing the format from its extension. Keys missing from
the file take their default values. The result is validated before it
replaces the configuration.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loader.NewFileLoader(nil).LoadFrom(args[0])
			if err != nil {
				return err
			}
			if err := dialog.ApplyAccels(keymap.NewAccelMap(), plugin.AccelPaths(), cfg); err != nil {
				return err
			}
			store := c.store()
			if err := store.Save(cfg); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "imported %s into %s\n", args[0], store.Path())
			return err
		},
	}
}

func (c *cli) newConfigBindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bind KEY",
		Short: "Capture an accelerator from the keyboard",
		Long: `Opens the terminal and waits for a key press to use as the accelerator
of KEY: a function key, or a character with Control, Alt or Super.
Backspace or Delete removes the accelerator, Escape keeps waiting and
Tab leaves the setting unchanged.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := config.KeyByName(args[0])
			if err != nil {
				return err
			}
			if !k.IsAccel() {
				return fmt.Errorf("%w: %s", dialog.ErrNotAccelField, k)
			}
			term, err := backend.NewTerminal()
			if err != nil {
				return err
			}
			return c.bind(cmd.Context(), term, k, cmd.OutOrStdout())
		},
	}
}

// screenNotifier shows dialog notifications below the prompt.
type screenNotifier struct {
	b backend.Backend
}

func (n screenNotifier) Error(message string) {
	w, _ := n.b.Size()
	for x := 0; x < w; x++ {
		n.b.SetCell(x, 2, ' ', backend.StyleDefault)
	}
	n.b.DrawText(0, 2, message, backend.StyleBold)
	n.b.Show()
}

// bind runs one accelerator capture for k on b and saves the result.
func (c *cli) bind(ctx context.Context, b backend.Backend, k config.Key, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	store := c.store()
	cfg, _, err := store.Load()
	if err != nil {
		return err
	}
	accels := keymap.NewAccelMap()
	if err := dialog.ApplyAccels(accels, plugin.AccelPaths(), cfg); err != nil {
		return err
	}

	d := dialog.New(store, accels, plugin.AccelPaths(),
		dialog.WithLogger(c.logger.Named("dialog")),
		dialog.WithNotifier(screenNotifier{b: b}))
	if err := d.Open(); err != nil {
		return err
	}

	if err := b.Init(); err != nil {
		return err
	}
	b.Clear()
	b.DrawText(0, 0, fmt.Sprintf("%s for %s", dialog.Prompt, k), backend.StyleBold)
	b.DrawText(0, 1, "Backspace clears, Escape keeps waiting, Tab leaves unchanged", backend.StyleDim)
	b.Show()

	result, err := d.Capture(ctx, k, backend.NewChordReader(b))
	b.Shutdown()
	if err != nil {
		d.Cancel()
		return err
	}

	switch result {
	case dialog.KeyAccepted, dialog.KeyCleared:
		saved, err := d.Confirm()
		if err != nil {
			return err
		}
		v, _ := saved.Get(k)
		_, err = fmt.Fprintf(out, "%s=%s\n", k, v)
		return err
	default:
		d.Cancel()
		_, err := fmt.Fprintf(out, "%s unchanged\n", k)
		return err
	}
}
