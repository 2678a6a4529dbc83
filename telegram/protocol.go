// Copyright (c) 2025 @AmarnathCJD

package telegram

// ResetMode tells the bootstrap what to do with stored authorization.
type ResetMode int

const (
	ResetNone ResetMode = iota
	// ResetReusePhone drops authorization but logs in again with the phone
	// number of the user we were signed in as, when it is known.
	ResetReusePhone
	ResetOnly
)

// Config supplies credentials, file locations and flags. The client only
// reads it, except for SetDefaultUsername when re-using a known phone number.
type Config interface {
	DefaultUsername() string
	SetDefaultUsername(phone string)
	FirstName() string
	LastName() string
	// SMSCode blocks until the user has entered a login code.
	SMSCode() (string, error)

	AuthKeyFile() string
	StateFile() string
	SecretChatFile() string

	TestMode() bool
	SyncFromStart() bool
	WaitDialogList() bool
	ResetAuthorization() ResetMode
}

// Dialog is one entry of the dialog list.
type Dialog struct {
	Peer          int64
	LastMessageID int32
	UnreadCount   int32
}

// Protocol is the RPC layer. Every request returns immediately; its callback
// runs later from inside Reactor.RunOnce. Authorization and sign-in state is
// reported by mutating the State the protocol was built with.
type Protocol interface {
	SendCode(phone string, done func(ok, registered bool, hash string))
	SignIn(phone, hash, code string, done func(ok bool))
	SignUp(phone, hash, code, firstName, lastName string, done func(ok bool))
	ExportAuth(dc int, done func(ok bool))
	GetDifference(fromStart bool, done func(ok bool))
	GetDialogList(done func(ok bool, dialogs []Dialog))

	SendAllUnsent()
	LookupState()
	DifferenceLocked() bool
}

// Reactor pumps network and timer events. RunOnce processes whatever is
// ready, waiting for at least one event, and runs the callbacks it completes
// before returning.
type Reactor interface {
	RunOnce() error
}
