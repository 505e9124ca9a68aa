package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"oroid/internal/domain"
)

func revokeCmd() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "revoke DID",
		Short: "Terminally invalidate a DID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			node, err := appCtx.Manager.RevokeDID(domain.DID(args[0]), reason)
			if err != nil {
				return err
			}
			fmt.Printf("Revoked %s\n", node.DID)
			if node.RevocationReason != "" {
				fmt.Printf("Reason: %s\n", node.RevocationReason)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&reason, "reason", "r", "", "reason recorded with the revocation")
	return cmd
}
