package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dshills/stringmod/internal/app"
	"github.com/dshills/stringmod/internal/renderer/backend"
)

func (c *cli) newEditCmd() *cobra.Command {
	var noWatch bool
	cmd := &cobra.Command{
		Use:   "edit [FILE]",
		Short: "Edit a file in the terminal with the String Modifiers menu",
		Long: `Opens FILE in a minimal terminal editor hosting the String Modifiers
menu. F10 opens the Tools menu, Ctrl+S saves, Ctrl+Z undoes and Ctrl+Q
quits. Shift with the arrow keys selects text. Configured accelerators run
their actions directly. The configuration is reloaded when the file
changes on disk.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := app.NewDocument("", "")
			if len(args) == 1 {
				var err error
				if doc, err = app.OpenDocument(args[0]); err != nil {
					return err
				}
			}

			application := app.New(doc, app.Options{
				Store:         c.store(),
				Logger:        c.logger,
				Overrides:     c.envLoader().Apply,
				Watch:         !noWatch,
				WatchDebounce: 100 * time.Millisecond,
			})

			term, err := backend.NewTerminal()
			if err != nil {
				return err
			}
			application.SetBackend(term)

			signals := make(chan os.Signal, 1)
			signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(signals)
			go func() {
				if _, ok := <-signals; ok {
					if err := application.Quit(); err != nil {
						c.logger.Warn("quit request dropped", zap.Error(err))
					}
				}
			}()

			return application.Run()
		},
	}
	cmd.Flags().BoolVar(&noWatch, "no-watch", false, "do not reload the configuration when it changes")
	return cmd
}
