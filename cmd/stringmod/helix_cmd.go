package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/stringmod/internal/integration/helix"
)

func (c *cli) newHelixCmd() *cobra.Command {
	var opts helix.Options
	cmd := &cobra.Command{
		Use:   "helix",
		Short: "Print a Helix keymap that pipes selections through stringmod",
		Long: `Prints a [keys] section for ~/.config/helix/config.toml. Every action
is bound under the leader key (space s b, space s w, ...). Actions with an
accelerator in the configuration are also bound directly in normal and
select mode.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.loadConfig(false)
			if err != nil {
				return err
			}
			opts.ConfigPath = c.configPath

			km, err := helix.Build(cfg, opts)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
			}
			data, err := km.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVar(&opts.Binary, "binary", "stringmod", "command the keymap runs")
	cmd.Flags().StringVar(&opts.Leader, "leader", "space", "normal-mode key opening the stringmod menu")
	cmd.Flags().StringVar(&opts.Prefix, "prefix", "s", "key under the leader")
	cmd.Flags().BoolVar(&opts.SkipAccels, "no-accels", false, "do not bind the configured accelerators")
	return cmd
}
