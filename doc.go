// Package kyber implements a toy, educational version of the Kyber family
// of post-quantum key-encapsulation mechanisms (KEMs), based on the
// hardness of the module learning-with-errors (LWE) problem, together with
// the IND-CPA public-key encryption scheme (PKE) it is built from.
//
// This is a teaching implementation modeled on the round-3-style "Kyber
// Toy Implementation" reference rather than the final FIPS 203 standard:
// serialization, the matrix-expansion rule, and the randomness-reuse
// convention in encryption all intentionally deviate from the standard in
// ways documented on the individual types and functions below. Notably,
// PKEEncrypt samples r, e1, and e2 from the same seed starting at the same
// nonce rather than advancing one shared counter across them, so at
// parameter sets where eta1 == eta2, r and e1 come out identical. It has no
// NTT acceleration, no masking, and no hardened constant-time arithmetic
// beyond the guidance called out on KEMDecapsulate; it is not suitable for
// production use.
//
// For more information on the underlying construction, see
// https://pq-crystals.org/kyber/index.shtml.
package kyber
