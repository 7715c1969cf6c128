package ledger

// Signers is the set of identities asserted as co-authorizers of one
// instruction. Signature math happens outside this core; by the time an
// instruction reaches a service the transport layer has already resolved
// which identities signed it.
type Signers map[string]bool

// NewSigners builds a signer set from the given identities, skipping blanks.
func NewSigners(identities ...string) Signers {
	s := make(Signers, len(identities))
	for _, id := range identities {
		if id != "" {
			s[id] = true
		}
	}
	return s
}

// Authorizes reports whether identity is among the instruction's co-signers.
func (s Signers) Authorizes(identity string) bool {
	return identity != "" && s[identity]
}
