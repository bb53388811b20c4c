package domain

import "time"

// VerificationOutcome is the result of verifying a session token. It is one of
// Valid, Expired or Invalid; callers switch on the concrete type.
type VerificationOutcome interface {
	verificationOutcome()
}

// Valid means the signature matched and the token is within its lifetime.
type Valid struct {
	Claims Claims
}

// Expired means the signature matched but the token is past its expiry.
type Expired struct {
	ExpiredAt time.Time
}

// Invalid means the token is malformed, tampered with, signed with another key
// or algorithm, or otherwise unacceptable.
type Invalid struct {
	Reason error
}

func (Valid) verificationOutcome()   {}
func (Expired) verificationOutcome() {}
func (Invalid) verificationOutcome() {}
