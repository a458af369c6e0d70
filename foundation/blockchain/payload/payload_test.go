package payload_test

import (
	"encoding/base64"
	"testing"

	"github.com/minichain/minichain/foundation/blockchain/payload"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

func Test_CoinHashInput(t *testing.T) {
	t.Log("Given the need for a coin payload to produce a stable hash input.")
	{
		t.Logf("\tTest 0:\tWhen rendering two equal payloads.")
		{
			c1 := payload.NewCoin("thomas", 100, []payload.Tran{payload.NewTran("thomas", "mary", 50)})
			c2 := payload.NewCoin("thomas", 100, []payload.Tran{payload.NewTran("thomas", "mary", 50)})

			if c1.HashInput() != c2.HashInput() {
				t.Fatalf("\t%s\tTest 0:\tShould get identical hash inputs for equal payloads.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould get identical hash inputs for equal payloads.", success)

			if c1.HashInput() != c1.HashInput() {
				t.Fatalf("\t%s\tTest 0:\tShould get the same hash input on repeated calls.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould get the same hash input on repeated calls.", success)
		}

		t.Logf("\tTest 1:\tWhen changing any field of the payload.")
		{
			base := payload.NewCoin("thomas", 100, []payload.Tran{payload.NewTran("thomas", "mary", 50)})

			changed := []payload.Coin{
				payload.NewCoin("dave", 100, []payload.Tran{payload.NewTran("thomas", "mary", 50)}),
				payload.NewCoin("thomas", 99, []payload.Tran{payload.NewTran("thomas", "mary", 50)}),
				payload.NewCoin("thomas", 100, []payload.Tran{payload.NewTran("thomas", "mary", 51)}),
				payload.NewCoin("thomas", 100, nil),
			}

			for i, c := range changed {
				if c.HashInput() == base.HashInput() {
					t.Fatalf("\t%s\tTest 1:\tShould get a different hash input for variant %d.", failed, i)
				}
			}
			t.Logf("\t%s\tTest 1:\tShould get a different hash input for every variant.", success)
		}
	}
}

func Test_DataHashInput(t *testing.T) {
	t.Log("Given the need for a raw data payload to produce a stable hash input.")
	{
		t.Logf("\tTest 0:\tWhen encoding opaque bytes.")
		{
			d := payload.Data("genesis notes")

			want := base64.StdEncoding.EncodeToString([]byte("genesis notes"))
			if d.HashInput() != want {
				t.Fatalf("\t%s\tTest 0:\tShould get the base64 rendering of the bytes: got %s, exp %s", failed, d.HashInput(), want)
			}
			t.Logf("\t%s\tTest 0:\tShould get the base64 rendering of the bytes.", success)
		}
	}
}
