package main

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/raphi011/rpc/internal/config"
	"github.com/raphi011/rpc/internal/log"
	"github.com/raphi011/rpc/internal/output"
	"github.com/raphi011/rpc/internal/selector"
	"github.com/raphi011/rpc/internal/ui/prompt"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage rpc configuration.

Config file: ~/.config/rpc/config.toml
Environment overrides: RPC_PACKAGE_NAME, RPC_MIN_NODE_VERSION`,
		Example: `  rpc config init          # Create default config
  rpc config show          # Show effective config`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Example: `  rpc config init      # Create config
  rpc config init -f   # Overwrite existing config
  rpc config init -s   # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)
			l := log.FromContext(ctx)

			if stdout {
				out.Print(config.DefaultFileContent())
				return nil
			}

			path, err := config.Path()
			if err != nil {
				return err
			}

			err = config.InitAt(path, force)
			if errors.Is(err, config.ErrExists) && selector.StdinIsTerminal() {
				var overwrite bool
				overwrite, err = prompt.Confirm(ctx, fmt.Sprintf("Config file %s already exists. Overwrite?", path))
				if err != nil {
					return err
				}
				if !overwrite {
					l.Println("Kept existing config")
					return nil
				}
				err = config.InitAt(path, true)
			}
			if errors.Is(err, config.ErrExists) {
				return fmt.Errorf("%w (use -f to overwrite)", err)
			}
			if err != nil {
				return fmt.Errorf("write config: %w", err)
			}

			l.Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Long: `Show effective configuration.

Prints the configuration after defaults and environment overrides
are applied, in config file format.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			cfg := config.FromContext(ctx)
			if cfg == nil {
				d := config.Default()
				cfg = &d
			}

			if path, err := config.Path(); err == nil {
				out.Printf("# %s\n", path)
			}
			if err := toml.NewEncoder(out.Writer()).Encode(cfg); err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			return nil
		},
	}
}
