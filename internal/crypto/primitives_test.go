package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestHash_DeterministicAndConcatenating(t *testing.T) {
	h1 := Hash([]byte("abc"))
	h2 := Hash([]byte("a"), []byte("bc"))

	if len(h1) != 32 {
		t.Fatalf("digest length = %d, want 32", len(h1))
	}
	if !bytes.Equal(h1, h2) {
		t.Fatalf("Hash over split chunks differs from single-chunk hash")
	}
	if bytes.Equal(h1, Hash([]byte("abd"))) {
		t.Fatalf("different inputs produced identical digests")
	}
}

func TestDeriveBits_SupportedAndUnsupportedLengths(t *testing.T) {
	ikm := []byte("input key material")
	salt := []byte("salt")
	info := []byte("info")

	out, err := DeriveBits(ikm, salt, info, 256)
	if err != nil {
		t.Fatalf("DeriveBits(256) error: %v", err)
	}
	if len(out) != 32 {
		t.Fatalf("output length = %d, want 32", len(out))
	}

	again, err := DeriveBits(ikm, salt, info, 256)
	if err != nil {
		t.Fatalf("DeriveBits(256) second call error: %v", err)
	}
	if !bytes.Equal(out, again) {
		t.Fatalf("HKDF output not deterministic for fixed inputs")
	}

	for _, bits := range []int{0, -8, 100, 7, 255*32*8 + 8} {
		if _, err := DeriveBits(ikm, salt, info, bits); !errors.Is(err, ErrKeyDerivation) {
			t.Fatalf("DeriveBits(%d) error = %v, want ErrKeyDerivation", bits, err)
		}
	}
}

func TestAEAD_RoundTrip(t *testing.T) {
	key := bytes.Repeat([]byte{0x42}, KeySize)
	iv := bytes.Repeat([]byte{0x01}, IVSize)
	plaintext := []byte("attack at dawn")

	ciphertext, err := AEADEncrypt(key, iv, plaintext)
	if err != nil {
		t.Fatalf("AEADEncrypt error: %v", err)
	}

	got, err := AEADDecrypt(key, iv, ciphertext)
	if err != nil {
		t.Fatalf("AEADDecrypt error: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Fatalf("round trip mismatch: got %q want %q", got, plaintext)
	}
}

func TestAEAD_RejectsBadIVLength(t *testing.T) {
	key := bytes.Repeat([]byte{0x42}, KeySize)

	for _, n := range []int{0, 11, 13, 16} {
		iv := make([]byte, n)
		if _, err := AEADEncrypt(key, iv, []byte("x")); !errors.Is(err, ErrInvalidIVLength) {
			t.Fatalf("AEADEncrypt with %d-byte iv: error = %v, want ErrInvalidIVLength", n, err)
		}
		if _, err := AEADDecrypt(key, iv, []byte("x")); !errors.Is(err, ErrInvalidIVLength) {
			t.Fatalf("AEADDecrypt with %d-byte iv: error = %v, want ErrInvalidIVLength", n, err)
		}
	}
}

func TestAEADDecrypt_TamperFailsAuthentication(t *testing.T) {
	key := bytes.Repeat([]byte{0x42}, KeySize)
	iv := bytes.Repeat([]byte{0x02}, IVSize)

	ciphertext, err := AEADEncrypt(key, iv, []byte("secret"))
	if err != nil {
		t.Fatalf("AEADEncrypt error: %v", err)
	}

	tampered := append([]byte(nil), ciphertext...)
	tampered[0] ^= 0x01

	if _, err := AEADDecrypt(key, iv, tampered); !errors.Is(err, ErrAuthentication) {
		t.Fatalf("tampered ciphertext: error = %v, want ErrAuthentication", err)
	}
}

func TestPBKDF2Key_Deterministic(t *testing.T) {
	salt := bytes.Repeat([]byte{0xAB}, 16)

	k1 := PBKDF2Key([]byte("correct horse battery staple"), salt, 1000, KeySize)
	k2 := PBKDF2Key([]byte("correct horse battery staple"), salt, 1000, KeySize)

	if len(k1) != KeySize {
		t.Fatalf("key length = %d, want %d", len(k1), KeySize)
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("PBKDF2 output not deterministic for fixed inputs")
	}
}

func TestRandomBytes_LengthAndRandomness(t *testing.T) {
	b1, err := RandomBytes(IVSize)
	if err != nil {
		t.Fatalf("RandomBytes error: %v", err)
	}
	b2, err := RandomBytes(IVSize)
	if err != nil {
		t.Fatalf("RandomBytes error: %v", err)
	}

	if len(b1) != IVSize || len(b2) != IVSize {
		t.Fatalf("lengths = %d, %d, want %d", len(b1), len(b2), IVSize)
	}
	if bytes.Equal(b1, b2) {
		t.Fatalf("expected random buffers to differ")
	}
}

func TestZeroize(t *testing.T) {
	buf := []byte{1, 2, 3, 4}
	Zeroize(buf)
	if !bytes.Equal(buf, make([]byte, 4)) {
		t.Fatalf("Zeroize left data behind: %v", buf)
	}
}
