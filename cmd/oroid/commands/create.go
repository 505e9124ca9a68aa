package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"oroid/internal/crypto"
)

func createCmd() *cobra.Command {
	var label string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a DID with a fresh Ed25519 keypair",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			node, priv, err := appCtx.Manager.CreateDID(label)
			if err != nil {
				return err
			}
			if err := appCtx.Keys.SaveKey(passphrase, node.DID, priv); err != nil {
				return err
			}
			fmt.Printf("Created %s\n", node.DID)
			if node.Label != "" {
				fmt.Printf("Label: %s\n", node.Label)
			}
			fmt.Printf("Fingerprint: %s\n", crypto.Fingerprint(node.PublicKey))
			return nil
		},
	}

	cmd.Flags().StringVarP(&label, "label", "l", "", "human-readable label for the new DID")
	return cmd
}
