package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"oroid/internal/domain"
)

func linkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "link DID_A DID_B",
		Short: "Prove two local DIDs share a controller and merge their clusters",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			didA, didB := domain.DID(args[0]), domain.DID(args[1])

			privA, err := appCtx.Keys.LoadKey(passphrase, didA)
			if err != nil {
				return fmt.Errorf("load key for %s: %w", didA, err)
			}
			privB, err := appCtx.Keys.LoadKey(passphrase, didB)
			if err != nil {
				return fmt.Errorf("load key for %s: %w", didB, err)
			}

			proof, err := appCtx.Manager.LinkDIDs(didA, privA, didB, privB)
			if err != nil {
				return err
			}
			fmt.Printf("Linked %s and %s\n", proof.DIDA, proof.DIDB)
			fmt.Printf("Cluster: %s\n", proof.ClusterID)
			return nil
		},
	}
}
