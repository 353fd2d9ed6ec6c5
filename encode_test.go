package huffman

import (
	"bytes"
	"math/rand"
	"testing"
)

const (
	randSeed   = 1729
	iterations = 200
)

func TestEncode_RoundTrip(t *testing.T) {
	type testRow struct {
		name string
		data string
	}

	testData := [...]testRow{
		{name: "single", data: "n"},
		{name: "repeats", data: "ab ba"},
		{name: "alnum", data: "abc123"},
		{name: "sentence", data: "Huffman coding"},
		{name: "caps", data: "ABRACADABRA"},
		{name: "river", data: "Mississippi"},
		{name: "tongue-twister", data: "Sally sells seashells down by the seashore."},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			encoded, root := Encode([]byte(row.data))
			if root == nil {
				t.Fatal("expected a tree")
			}
			decoded, err := Decode(encoded, root)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if !bytes.Equal(decoded, []byte(row.data)) {
				t.Errorf("wrong round trip:\n\texpect: %q\n\tactual: %q", row.data, decoded)
			}
		})
	}
}

func TestEncode_Empty(t *testing.T) {
	encoded, root := Encode(nil)
	if encoded != "" {
		t.Errorf("expected empty bit string, got %q", encoded)
	}
	if root != nil {
		t.Error("expected no tree")
	}
}

func TestEncode_SingleSymbol(t *testing.T) {
	encoded, root := Encode([]byte("aaaa"))
	if expect := "0000"; encoded != expect {
		t.Errorf("expected %q, got %q", expect, encoded)
	}
	if root == nil || !root.Leaf() {
		t.Fatal("expected a bare-leaf tree")
	}

	decoded, err := Decode(encoded, root)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if string(decoded) != "aaaa" {
		t.Errorf("wrong round trip: %q", decoded)
	}
}

func TestEncode_Abracadabra(t *testing.T) {
	encoded, root := Encode([]byte("abracadabra"))

	if expect := "01101110100010101101110"; encoded != expect {
		t.Errorf("wrong bit string:\n\texpect: %s\n\tactual: %s", expect, encoded)
	}

	// 5 distinct symbols need 3 bits each under a fixed-width code, so 11
	// symbols cost 33 bits; the variable-width form must beat that.
	if len(encoded) >= 33 {
		t.Errorf("expected fewer than 33 bits, got %d", len(encoded))
	}

	table := NewCodeTable(root)
	expectCodes := CodeTable{'a': "0", 'b': "110", 'c': "100", 'd': "101", 'r': "111"}
	for symbol, code := range expectCodes {
		if table[symbol] != code {
			t.Errorf("symbol %q: expected code %q, got %q", symbol, code, table[symbol])
		}
	}
}

func TestEncode_Deterministic(t *testing.T) {
	data := []byte("Mississippi")
	first, _ := Encode(data)
	for i := 0; i < 10; i++ {
		next, _ := Encode(data)
		if next != first {
			t.Fatalf("differing bit string on encode %d:\n\tfirst: %s\n\tnext:  %s", i, first, next)
		}
	}
}

func TestEncode_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(randSeed))
	for i := 0; i < iterations; i++ {
		data := make([]byte, 1+rng.Intn(512))
		alphabet := 1 << (1 + rng.Intn(8))
		for j := range data {
			data[j] = byte(rng.Intn(alphabet))
		}

		encoded, root := Encode(data)
		decoded, err := Decode(encoded, root)
		if err != nil {
			t.Fatalf("iteration %d: Decode failed: %v", i, err)
		}
		if !bytes.Equal(decoded, data) {
			t.Fatalf("iteration %d: wrong round trip", i)
		}
	}
}
