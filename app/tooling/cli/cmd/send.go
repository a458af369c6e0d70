package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"
)

var (
	from        string
	to          string
	amount      uint
	beneficiary string
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send a transfer to be mined into the chain.",
	Run:   sendRun,
}

func init() {
	rootCmd.AddCommand(sendCmd)
	sendCmd.Flags().StringVarP(&from, "from", "f", "", "Account to debit.")
	sendCmd.Flags().StringVarP(&to, "to", "t", "", "Account to credit.")
	sendCmd.Flags().UintVarP(&amount, "amount", "a", 0, "Amount to transfer.")
	sendCmd.Flags().StringVarP(&beneficiary, "beneficiary", "b", "", "Account credited with the coinbase.")
	sendCmd.MarkFlagRequired("from")
	sendCmd.MarkFlagRequired("to")
	sendCmd.MarkFlagRequired("amount")
	sendCmd.MarkFlagRequired("beneficiary")
}

func sendRun(cmd *cobra.Command, args []string) {
	submission := struct {
		Beneficiary string `json:"beneficiary"`
		Trans       []struct {
			From   string `json:"from"`
			To     string `json:"to"`
			Amount uint   `json:"amount"`
		} `json:"trans"`
	}{
		Beneficiary: beneficiary,
		Trans: []struct {
			From   string `json:"from"`
			To     string `json:"to"`
			Amount uint   `json:"amount"`
		}{
			{From: from, To: to, Amount: amount},
		},
	}

	data, err := json.Marshal(submission)
	if err != nil {
		log.Fatal(err)
	}

	resp, err := http.Post(fmt.Sprintf("%s/v1/tx", url), "application/json", bytes.NewBuffer(data))
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Fatal(err)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(out))
}
