package digest_test

import (
	"strings"
	"testing"

	"github.com/minichain/minichain/foundation/blockchain/digest"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

func Test_Hash(t *testing.T) {
	type payload struct {
		Parent string `json:"parent"`
		Nonce  uint64 `json:"nonce"`
	}

	t.Log("Given the need to produce stable hashes for any value.")
	{
		t.Logf("\tTest 0:\tWhen hashing the same value twice.")
		{
			v := payload{Parent: digest.ZeroHash, Nonce: 42}

			h1 := digest.Hash(v)
			h2 := digest.Hash(v)

			if h1 != h2 {
				t.Fatalf("\t%s\tTest 0:\tShould get the same hash for the same value: %s != %s", failed, h1, h2)
			}
			t.Logf("\t%s\tTest 0:\tShould get the same hash for the same value.", success)

			if !strings.HasPrefix(h1, "0x") || len(h1) != len(digest.ZeroHash) {
				t.Fatalf("\t%s\tTest 0:\tShould get a fixed length 0x hex rendering: %s", failed, h1)
			}
			t.Logf("\t%s\tTest 0:\tShould get a fixed length 0x hex rendering.", success)
		}

		t.Logf("\tTest 1:\tWhen hashing two different values.")
		{
			h1 := digest.Hash(payload{Parent: digest.ZeroHash, Nonce: 42})
			h2 := digest.Hash(payload{Parent: digest.ZeroHash, Nonce: 43})

			if h1 == h2 {
				t.Fatalf("\t%s\tTest 1:\tShould get different hashes for different values.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould get different hashes for different values.", success)
		}
	}
}
