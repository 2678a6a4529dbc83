// Copyright (c) 2025 @AmarnathCJD

package session

import (
	"fmt"

	"github.com/pkg/errors"
)

const (
	AuthFileMagic       uint32 = 0x868aa81d
	StateFileMagic      uint32 = 0x28949a93
	SecretChatFileMagic uint32 = 0x37a1988a

	AuthKeySize = 256

	// upper bounds on length prefixes read back from disk (exclusive)
	MaxIPLen       = 100
	MaxPrintName   = 1000
	MaxDCIndex     = 1024
	MaxSecretChats = 1 << 20

	SecretChatFileVersion = 1
)

var (
	// ErrCorruptStore marks a file whose magic matched but whose body cannot be
	// trusted: a length or count field is out of bounds, so nothing after it
	// can be located.
	ErrCorruptStore = errors.New("corrupt session store")

	ErrNameTooLong = errors.New("secret chat print name too long")
)

// DataCenter is one routing-table entry. AuthKey is only meaningful while
// Authorized is set.
type DataCenter struct {
	ID         int
	IP         string
	Port       int
	AuthKeyID  int64
	AuthKey    [AuthKeySize]byte
	Authorized bool
	Signed     bool
}

func (dc *DataCenter) String() string {
	return fmt.Sprintf("DC%d(%s:%d)", dc.ID, dc.IP, dc.Port)
}

// AuthTable is the decoded content of the auth key file. DCs is indexed by
// data-center id and may contain nil gaps.
type AuthTable struct {
	MaxDC     int
	WorkingDC int
	OurID     int32
	DCs       []*DataCenter
}

// Cursor is the update-stream read position.
type Cursor struct {
	Pts  int32
	Qts  int32
	Seq  int32
	Date int32
}

// NotAfter reports whether every field of c is <= the same field of o.
func (c Cursor) NotAfter(o Cursor) bool {
	return c.Pts <= o.Pts && c.Qts <= o.Qts && c.Seq <= o.Seq && c.Date <= o.Date
}

type SecretChatState int32

const (
	SecretChatNone SecretChatState = iota
	SecretChatWaiting
	SecretChatRequested
	SecretChatOK
	SecretChatDeleted
)

func (s SecretChatState) String() string {
	switch s {
	case SecretChatNone:
		return "none"
	case SecretChatWaiting:
		return "waiting"
	case SecretChatRequested:
		return "requested"
	case SecretChatOK:
		return "ok"
	case SecretChatDeleted:
		return "deleted"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// SecretChat is an end-to-end encrypted conversation as kept on disk.
type SecretChat struct {
	ID             int32
	UserID         int32
	AdminID        int32
	Date           int32
	TTL            int32
	Layer          int32
	PrintName      string
	AccessHash     int64
	KeyFingerprint int64
	Key            [AuthKeySize]byte
	State          SecretChatState
	InSeqNo        int32
	LastInSeqNo    int32
	OutSeqNo       int32
}

// Paths names the three files a Store works on.
type Paths struct {
	AuthKey    string
	State      string
	SecretChat string
}
