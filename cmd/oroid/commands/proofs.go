package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

func proofsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "proofs",
		Short: "List recorded link proofs",
		RunE: func(cmd *cobra.Command, args []string) error {
			proofs, err := appCtx.Manager.ListProofs()
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(proofs)
			}

			if len(proofs) == 0 {
				fmt.Println("No link proofs.")
				return nil
			}
			for _, p := range proofs {
				fmt.Printf("%s <-> %s  cluster=%s  signed=%s\n",
					p.DIDA, p.DIDB, p.ClusterID, p.SignedAt.Format(time.RFC3339))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of text")
	return cmd
}
