// Copyright (c) 2025 @AmarnathCJD

package telegram

import (
	"encoding/binary"
	"iter"
	"sync"

	"github.com/amarnathcjd/tgloop/internal/session"
	"github.com/amarnathcjd/tgloop/internal/utils"
)

type (
	DataCenter      = session.DataCenter
	Cursor          = session.Cursor
	SecretChat      = session.SecretChat
	SecretChatState = session.SecretChatState
)

const (
	SecretChatNone      = session.SecretChatNone
	SecretChatWaiting   = session.SecretChatWaiting
	SecretChatRequested = session.SecretChatRequested
	SecretChatOK        = session.SecretChatOK
	SecretChatDeleted   = session.SecretChatDeleted
)

// State is the in-memory session: the data-center table, the update cursor,
// known users and secret chats. The bootstrap reads it; the protocol layer
// writes to it through the Set* primitives while the reactor runs.
type State struct {
	sync.Mutex
	dcs       []*DataCenter
	workingDC int
	ourID     int32
	cursor    Cursor
	started   bool

	users       map[int32]*User
	secretChats map[int32]*SecretChat
	secretDirty bool
}

func NewState() *State {
	return &State{
		users:       make(map[int32]*User),
		secretChats: make(map[int32]*SecretChat),
	}
}

// AuthKeyID returns the low 64 bits of SHA1(key), the id a server knows the
// key by.
func AuthKeyID(key [session.AuthKeySize]byte) int64 {
	return int64(binary.LittleEndian.Uint64(utils.AuthKeyHash(key[:])))
}

func (s *State) dc(id int) *DataCenter {
	if id < 0 || id >= len(s.dcs) {
		return nil
	}
	return s.dcs[id]
}

// SetDCOption adds data center id, or moves it to a new address.
func (s *State) SetDCOption(id int, ip string, port int) {
	s.Lock()
	defer s.Unlock()
	if id < 0 {
		return
	}
	for len(s.dcs) <= id {
		s.dcs = append(s.dcs, nil)
	}
	if dc := s.dcs[id]; dc != nil {
		dc.IP, dc.Port = ip, port
		return
	}
	s.dcs[id] = &DataCenter{ID: id, IP: ip, Port: port}
}

// SetAuthKey stores a negotiated key and marks the data center authorized.
// Unknown ids are ignored.
func (s *State) SetAuthKey(id int, key [session.AuthKeySize]byte) {
	s.Lock()
	defer s.Unlock()
	dc := s.dc(id)
	if dc == nil {
		return
	}
	dc.AuthKey = key
	dc.AuthKeyID = AuthKeyID(key)
	dc.Authorized = true
}

func (s *State) SetSigned(id int) {
	s.Lock()
	defer s.Unlock()
	if dc := s.dc(id); dc != nil {
		dc.Signed = true
	}
}

func (s *State) SetWorkingDC(id int) {
	s.Lock()
	defer s.Unlock()
	s.workingDC = id
}

func (s *State) SetOurID(id int32) {
	s.Lock()
	defer s.Unlock()
	s.ourID = id
}

// DC returns a copy of data center id, or nil.
func (s *State) DC(id int) *DataCenter {
	s.Lock()
	defer s.Unlock()
	dc := s.dc(id)
	if dc == nil {
		return nil
	}
	cp := *dc
	return &cp
}

func (s *State) MaxDC() int {
	s.Lock()
	defer s.Unlock()
	return len(s.dcs) - 1
}

func (s *State) WorkingDC() int {
	s.Lock()
	defer s.Unlock()
	return s.workingDC
}

func (s *State) OurID() int32 {
	s.Lock()
	defer s.Unlock()
	return s.ourID
}

func (s *State) Authorized(id int) bool {
	s.Lock()
	defer s.Unlock()
	dc := s.dc(id)
	return dc != nil && dc.Authorized
}

func (s *State) Signed(id int) bool {
	s.Lock()
	defer s.Unlock()
	dc := s.dc(id)
	return dc != nil && dc.Signed
}

// AllAuthorized reports whether every known data center has an auth key.
func (s *State) AllAuthorized() bool {
	s.Lock()
	defer s.Unlock()
	for _, dc := range s.dcs {
		if dc != nil && !dc.Authorized {
			return false
		}
	}
	return true
}

// DataCenters yields copies of the known data centers in id order.
func (s *State) DataCenters() iter.Seq[*DataCenter] {
	s.Lock()
	snapshot := make([]*DataCenter, 0, len(s.dcs))
	for _, dc := range s.dcs {
		if dc != nil {
			cp := *dc
			snapshot = append(snapshot, &cp)
		}
	}
	s.Unlock()

	return func(yield func(*DataCenter) bool) {
		for _, dc := range snapshot {
			if !yield(dc) {
				return
			}
		}
	}
}

// ResetAuthorization forgets every auth key, every sign-in and our user id.
// Addresses stay.
func (s *State) ResetAuthorization() {
	s.Lock()
	defer s.Unlock()
	s.ourID = 0
	for _, dc := range s.dcs {
		if dc == nil {
			continue
		}
		dc.Authorized = false
		dc.Signed = false
		dc.AuthKeyID = 0
		dc.AuthKey = [session.AuthKeySize]byte{}
	}
}

// Started reports whether the initial update sync has finished.
func (s *State) Started() bool {
	s.Lock()
	defer s.Unlock()
	return s.started
}

func (s *State) setStarted() {
	s.Lock()
	defer s.Unlock()
	s.started = true
}

// AuthTable snapshots the data-center table for persistence.
func (s *State) AuthTable() *session.AuthTable {
	s.Lock()
	defer s.Unlock()
	t := &session.AuthTable{
		MaxDC:     len(s.dcs) - 1,
		WorkingDC: s.workingDC,
		OurID:     s.ourID,
		DCs:       make([]*DataCenter, len(s.dcs)),
	}
	for i, dc := range s.dcs {
		if dc != nil {
			cp := *dc
			t.DCs[i] = &cp
		}
	}
	return t
}

func (s *State) restoreAuthTable(t *session.AuthTable) {
	s.Lock()
	for len(s.dcs) <= t.MaxDC {
		s.dcs = append(s.dcs, nil)
	}
	s.Unlock()

	for _, dc := range t.DCs {
		if dc == nil {
			continue
		}
		s.SetDCOption(dc.ID, dc.IP, dc.Port)
		if dc.Authorized {
			s.SetAuthKey(dc.ID, dc.AuthKey)
		}
		if dc.Signed {
			s.SetSigned(dc.ID)
		}
	}
	s.SetWorkingDC(t.WorkingDC)
	s.SetOurID(t.OurID)
}

func (s *State) seedEnvironment(env Environment) {
	for _, ep := range env.DataCenters {
		s.SetDCOption(ep.ID, ep.IP, ep.Port)
	}
	s.SetWorkingDC(env.WorkingDC)
}

func (s *State) Cursor() Cursor {
	s.Lock()
	defer s.Unlock()
	return s.cursor
}

func (s *State) SetCursor(c Cursor) {
	s.Lock()
	defer s.Unlock()
	s.cursor = c
}

func (s *State) SetPts(pts int32) {
	s.Lock()
	defer s.Unlock()
	s.cursor.Pts = pts
}

func (s *State) SetQts(qts int32) {
	s.Lock()
	defer s.Unlock()
	s.cursor.Qts = qts
}

func (s *State) SetSeq(seq int32) {
	s.Lock()
	defer s.Unlock()
	s.cursor.Seq = seq
}

func (s *State) SetDate(date int32) {
	s.Lock()
	defer s.Unlock()
	s.cursor.Date = date
}
