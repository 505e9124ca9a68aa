package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"oroid/internal/app"
)

var (
	home       string
	passphrase string
	verbose    bool
	appCtx     *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "oroid",
		Short: "Decentralized identity management CLI",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".oroid")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			cfg, err := app.Load(home)
			if err != nil {
				return err
			}
			if verbose {
				cfg.Verbose = true
			}
			appCtx, err = app.NewWire(cfg)
			return err
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.oroid)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase to protect private keys")
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "debug-level logging")

	root.AddCommand(createCmd(), linkCmd(), revokeCmd(), resolveCmd(), listCmd(), proofsCmd())

	err := root.Execute()
	if appCtx != nil {
		if cerr := appCtx.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
