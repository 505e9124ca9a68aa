package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all known DIDs",
		RunE: func(cmd *cobra.Command, args []string) error {
			nodes, err := appCtx.Manager.ListNodes()
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(nodes)
			}

			if len(nodes) == 0 {
				fmt.Println("No DIDs.")
				return nil
			}
			for _, n := range nodes {
				cluster := "-"
				if n.ClusterID != "" {
					cluster = n.ClusterID.String()
				}
				label := n.Label
				if label == "" {
					label = "-"
				}
				fmt.Printf("%s  [%s]  label=%s  cluster=%s\n", n.DID, n.Status, label, cluster)
			}
			fmt.Printf("%d DID(s)\n", len(nodes))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of text")
	return cmd
}
