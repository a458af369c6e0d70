package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"
)

type balance struct {
	Account string `json:"account"`
	Name    string `json:"name"`
	Balance uint   `json:"balance"`
}

type balances struct {
	LatestBlock string    `json:"latest_block"`
	Accounts    []balance `json:"accounts"`
}

var balancesCmd = &cobra.Command{
	Use:   "balances [account]",
	Short: "Print the current balances.",
	Args:  cobra.MaximumNArgs(1),
	Run:   balancesRun,
}

func init() {
	rootCmd.AddCommand(balancesCmd)
}

func balancesRun(cmd *cobra.Command, args []string) {
	endpoint := fmt.Sprintf("%s/v1/accounts", url)
	if len(args) == 1 {
		endpoint = fmt.Sprintf("%s/v1/accounts/%s", url, args[0])
	}

	resp, err := http.Get(endpoint)
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	var bals balances
	if err := json.NewDecoder(resp.Body).Decode(&bals); err != nil {
		log.Fatal(err)
	}

	fmt.Println("Latest block:", bals.LatestBlock)
	for _, bal := range bals.Accounts {
		fmt.Printf("%-20s %d\n", bal.Name, bal.Balance)
	}
}
