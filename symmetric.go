package kyber

import "golang.org/x/crypto/sha3"

// H hashes data to 32 bytes with SHA3-256. Used to bind a public key into a
// decapsulation key and into the FO-transform re-encryption check.
func H(data []byte) [SymSize]byte {
	return sha3.Sum256(data)
}

// G hashes data to 64 bytes with SHA3-512. Callers split the output by
// position into two 32-byte halves (e.g. the pre-key and the encryption
// coins in keygen/encapsulate/decapsulate).
func G(data []byte) [64]byte {
	return sha3.Sum512(data)
}

// XOF extends data to length bytes with SHAKE-128. Used by the matrix
// expansion rule in cbd.go.
func XOF(data []byte, length int) []byte {
	h := sha3.NewShake128()
	h.Write(data)
	out := make([]byte, length)
	h.Read(out)
	return out
}

// PRF derives length pseudorandom bytes from seed and a single-byte nonce
// via SHAKE-256, with input seed||nonce. Used to draw the noise polynomials
// in keygen and encryption.
func PRF(seed []byte, nonce byte, length int) []byte {
	h := sha3.NewShake256()
	h.Write(seed)
	h.Write([]byte{nonce})
	out := make([]byte, length)
	h.Read(out)
	return out
}

// KDF derives length bytes from data via SHAKE-256. Used as the final
// key-derivation step in KEM encapsulate/decapsulate.
func KDF(data []byte, length int) []byte {
	h := sha3.NewShake256()
	h.Write(data)
	out := make([]byte, length)
	h.Read(out)
	return out
}
