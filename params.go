package kyber

// SymSize is the size in bytes of the shared secret, and of the internal
// 32-byte hashes and seeds (rho, sigma, z, H(ek), ...).
const SymSize = 32

// kyberN is the polynomial degree, fixed for every parameter set.
const kyberN = 256

// kyberQ is the prime modulus, fixed for every parameter set.
const kyberQ = 3329

// ParameterSet is an immutable Kyber parameter tuple, selected at
// construction time. The zero value is not valid; use one of the named
// parameter sets below.
type ParameterSet struct {
	name string

	k    int
	eta1 int
	eta2 int
	du   int
	dv   int

	publicKeySize        int
	privateKeySize       int // PKE secret key
	cipherTextSize       int
	decapsulationKeySize int
}

// Name returns the name of the parameter set ("kyber512", "kyber768", or
// "kyber1024").
func (p *ParameterSet) Name() string { return p.name }

// K returns the module rank.
func (p *ParameterSet) K() int { return p.k }

// PublicKeySize returns the size in bytes of a PKE public key (equivalently,
// a KEM encapsulation key).
func (p *ParameterSet) PublicKeySize() int { return p.publicKeySize }

// PrivateKeySize returns the size in bytes of a PKE private key.
func (p *ParameterSet) PrivateKeySize() int { return p.privateKeySize }

// CipherTextSize returns the size in bytes of a PKE/KEM ciphertext.
func (p *ParameterSet) CipherTextSize() int { return p.cipherTextSize }

// DecapsulationKeySize returns the size in bytes of a KEM decapsulation key.
func (p *ParameterSet) DecapsulationKeySize() int { return p.decapsulationKeySize }

func newParameterSet(name string, k, eta1, eta2, du, dv int) *ParameterSet {
	p := &ParameterSet{
		name: name,
		k:    k,
		eta1: eta1,
		eta2: eta2,
		du:   du,
		dv:   dv,
	}

	// Public-key bytes: 32 + k*n*12/8 = 32 + 384k.
	p.publicKeySize = SymSize + k*kyberN*12/8
	// Private-key (PKE) bytes: 384k.
	p.privateKeySize = k * kyberN * 12 / 8
	// Ciphertext bytes: k*n*du/8 + n*dv/8.
	p.cipherTextSize = k*kyberN*du/8 + kyberN*dv/8
	// Decapsulation-key bytes: 384k + (384k+32) + 32 + 32.
	p.decapsulationKeySize = p.privateKeySize + p.publicKeySize + SymSize + SymSize

	return p
}

var (
	// Kyber512 aims to provide security equivalent to AES-128.
	Kyber512 = newParameterSet("kyber512", 2, 3, 2, 10, 4)

	// Kyber768 aims to provide security equivalent to AES-192.
	Kyber768 = newParameterSet("kyber768", 3, 2, 2, 10, 4)

	// Kyber1024 aims to provide security equivalent to AES-256.
	Kyber1024 = newParameterSet("kyber1024", 4, 2, 2, 11, 5)
)

// ParameterSetByName looks up one of the three named parameter sets.
// It returns an InvalidArgument error for any other name.
func ParameterSetByName(name string) (*ParameterSet, error) {
	switch name {
	case "kyber512":
		return Kyber512, nil
	case "kyber768":
		return Kyber768, nil
	case "kyber1024":
		return Kyber1024, nil
	default:
		return nil, invalidArgf("unknown parameter set %q", name)
	}
}
