package main

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/dshills/stringmod/internal/config"
	strlua "github.com/dshills/stringmod/internal/plugin/lua"
)

var errScriptArgs = errors.New("script needs a FILE or --eval CODE")

func (c *cli) newScriptCmd() *cobra.Command {
	var (
		eval    string
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "script [FILE] [ARGS...]",
		Short: "Run a Lua script with the strmod module",
		Long: `Runs a Lua script in a sandbox with the base, table, string and math
libraries. The strmod module is available through require("strmod"):

  enclose(s, open [, close])   char_array(s [, choice])
  word_array(s [, choice])     words(s)
  apply(action, s)             actions()
  config()                     palette

Remaining arguments are passed in the global table arg.`,
		Example: `  stringmod script -e 'print(require("strmod").apply("braces", "x"))'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if eval == "" && len(args) == 0 {
				return errScriptArgs
			}
			cfg, err := c.loadConfig(true)
			if err != nil {
				return err
			}

			state := strlua.NewState(
				strlua.WithOutput(cmd.OutOrStdout()),
				strlua.WithConfig(func() *config.Config { return cfg }),
				strlua.WithLogger(c.logger.Named("lua")),
				strlua.WithExecutionTimeout(timeout),
			)
			defer state.Close()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			if eval != "" {
				state.SetGlobal("arg", argTable(state.LuaState(), args))
				return state.DoString(ctx, eval)
			}
			state.SetGlobal("arg", argTable(state.LuaState(), args[1:]))
			c.logger.Debug("running script", zap.String("path", args[0]))
			return state.DoFile(ctx, args[0])
		},
	}
	cmd.Flags().StringVarP(&eval, "eval", "e", "", "run CODE instead of a file")
	cmd.Flags().DurationVar(&timeout, "timeout", strlua.DefaultExecutionTimeout, "abort the script after this long (0 disables)")
	return cmd
}

func argTable(L *lua.LState, args []string) *lua.LTable {
	t := L.NewTable()
	for _, a := range args {
		t.Append(lua.LString(a))
	}
	return t
}
