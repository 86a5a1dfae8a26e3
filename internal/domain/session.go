package domain

import "time"

// Snapshot is the read-only view of the session handed to readers.
type Snapshot struct {
	Identity  *Identity
	IsLoading bool
}

func (s Snapshot) Authenticated() bool {
	return s.Identity != nil
}

type PendingVerification struct {
	Handle      string
	PhoneNumber string
	IssuedAt    time.Time
}

type PhoneState string

const (
	PhoneStateIdle     PhoneState = "idle"
	PhoneStateCodeSent PhoneState = "code_sent"
	PhoneStateVerified PhoneState = "verified"
)
