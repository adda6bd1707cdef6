package crypto

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func TestComputeItemCommitment_StableAndInputSensitive(t *testing.T) {
	idHash := Hash([]byte("item"))
	keyHash := Hash(testKey(0x42))
	ref := "bafkreia6qawhulknew2fkrnzausgaavjv2oqvs4c6gag5hallkqvzuzrpq"

	c1 := ComputeItemCommitment(idHash, ref, keyHash)
	c2 := ComputeItemCommitment(idHash, ref, keyHash)
	if !bytes.Equal(c1, c2) {
		t.Fatalf("commitment not byte-identical across calls")
	}
	if len(c1) != 32 {
		t.Fatalf("commitment length = %d, want 32", len(c1))
	}

	variants := [][]byte{
		ComputeItemCommitment(Hash([]byte("other item")), ref, keyHash),
		ComputeItemCommitment(idHash, ref+"x", keyHash),
		ComputeItemCommitment(idHash, ref, Hash(testKey(0x43))),
	}
	for i, v := range variants {
		if bytes.Equal(c1, v) {
			t.Fatalf("variant %d: changing one input did not change the commitment", i)
		}
	}
}

func TestComputeItemIDHash_HidesRawPair(t *testing.T) {
	salt := []byte("owner-scoped-salt")

	h1 := ComputeItemIDHash(salt, "example.com", "alice")
	h2 := ComputeItemIDHash(salt, "example.com", "alice")
	if !bytes.Equal(h1, h2) {
		t.Fatalf("item id hash not deterministic")
	}

	if bytes.Equal(h1, ComputeItemIDHash(salt, "example.com", "bob")) {
		t.Fatalf("different usernames must produce different item ids")
	}
	if bytes.Equal(h1, ComputeItemIDHash([]byte("other salt"), "example.com", "alice")) {
		t.Fatalf("different salts must produce different item ids")
	}
}

func TestVerifyPasswordIntegrity(t *testing.T) {
	stored := Hash([]byte("Tr0ub4dor&3xtra!"))

	if !VerifyPasswordIntegrity("Tr0ub4dor&3xtra!", stored) {
		t.Fatalf("expected matching plaintext to verify")
	}
	if VerifyPasswordIntegrity("Tr0ub4dor&3xtra?", stored) {
		t.Fatalf("expected mismatching plaintext to return false, not panic or error")
	}
	if VerifyPasswordIntegrity("", stored) {
		t.Fatalf("empty candidate must not verify against a non-empty hash")
	}
}

func TestDecodeCommitmentHex(t *testing.T) {
	c := ComputeItemCommitment(Hash([]byte("a")), "ref", Hash([]byte("k")))

	decoded, err := DecodeCommitmentHex(hex.EncodeToString(c))
	if err != nil {
		t.Fatalf("DecodeCommitmentHex error: %v", err)
	}
	if !bytes.Equal(decoded, c) {
		t.Fatalf("decoded commitment differs from original")
	}

	if _, err := DecodeCommitmentHex("zz"); err == nil {
		t.Fatalf("expected error for non-hex input")
	}
	if _, err := DecodeCommitmentHex("abcd"); err == nil {
		t.Fatalf("expected error for wrong-length input")
	}
}
