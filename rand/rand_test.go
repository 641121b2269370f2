package rand_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/awslabs/aws-query-go/rand"
)

func TestInt63n(t *testing.T) {
	cases := map[string]struct {
		Source    []byte
		N         int64
		Expect    int64
		ExpectErr string
	}{
		"zero source": {
			Source: make([]byte, 8),
			N:      100,
			Expect: 0,
		},
		"single byte range": {
			Source: []byte{7},
			N:      10,
			Expect: 7,
		},
		"non positive range": {
			N:         0,
			ExpectErr: "invalid range",
		},
		"exhausted source": {
			Source:    nil,
			N:         10,
			ExpectErr: "failed to read random value",
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			v, err := rand.Int63n(bytes.NewReader(c.Source), c.N)
			if len(c.ExpectErr) != 0 {
				if err == nil {
					t.Fatalf("expect error, got none")
				}
				if e, a := c.ExpectErr, err.Error(); !strings.Contains(a, e) {
					t.Fatalf("expect error to contain %v, got %v", e, a)
				}
				return
			}
			if err != nil {
				t.Fatalf("expect no error, got %v", err)
			}
			if e, a := c.Expect, v; e != a {
				t.Errorf("expect %v, got %v", e, a)
			}
		})
	}
}

func TestCryptoRandInt63n(t *testing.T) {
	for i := 0; i < 100; i++ {
		v, err := rand.CryptoRandInt63n(5)
		if err != nil {
			t.Fatalf("expect no error, got %v", err)
		}
		if v < 0 || v >= 5 {
			t.Fatalf("expect value in [0,5), got %v", v)
		}
	}
}
