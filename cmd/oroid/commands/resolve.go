package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"oroid/internal/domain"
)

func resolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve DID",
		Short: "Show the identity cluster behind a DID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cluster, err := appCtx.Manager.ResolveIdentity(domain.DID(args[0]))
			if err != nil {
				return err
			}
			if cluster == nil {
				fmt.Printf("%s is not linked to any cluster\n", args[0])
				return nil
			}

			fmt.Printf("Cluster: %s\n", cluster.ClusterID)
			if cluster.Label != "" {
				fmt.Printf("Label: %s\n", cluster.Label)
			}
			fmt.Printf("Members (%d):\n", len(cluster.MemberDIDs))
			for _, member := range cluster.MemberDIDs {
				status := "unknown"
				if node, err := appCtx.Store.GetNode(member); err == nil {
					status = node.Status.String()
				}
				fmt.Printf("  %s  [%s]\n", member, status)
			}
			return nil
		},
	}
}
