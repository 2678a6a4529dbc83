// Copyright (c) 2025 @AmarnathCJD

package telegram

import (
	"iter"
	"maps"
	"slices"

	"github.com/amarnathcjd/tgloop/internal/session"
	"github.com/pkg/errors"
)

// CreateSecretChat registers chat id, or updates its peers and name when it
// already exists.
func (s *State) CreateSecretChat(id, userID, adminID int32, printName string) error {
	if len(printName) >= session.MaxPrintName {
		return errors.Wrapf(session.ErrNameTooLong, "secret chat %d", id)
	}

	s.Lock()
	defer s.Unlock()
	chat, ok := s.secretChats[id]
	if !ok {
		chat = &SecretChat{ID: id}
		s.secretChats[id] = chat
	}
	chat.UserID = userID
	chat.AdminID = adminID
	chat.PrintName = printName
	s.secretDirty = true
	return nil
}

// RestoreSecretChat rebuilds a chat loaded from disk through the same
// primitives the protocol layer uses. Sequence numbers are only set when the
// record carries any, records from version 0 files have none.
func (s *State) RestoreSecretChat(chat *SecretChat) error {
	if chat == nil {
		return nil
	}
	if err := s.CreateSecretChat(chat.ID, chat.UserID, chat.AdminID, chat.PrintName); err != nil {
		return err
	}

	s.SetSecretChatDate(chat.ID, chat.Date)
	s.SetSecretChatTTL(chat.ID, chat.TTL)
	s.SetSecretChatLayer(chat.ID, chat.Layer)
	s.SetSecretChatAccessHash(chat.ID, chat.AccessHash)
	s.SetSecretChatState(chat.ID, chat.State)
	s.SetSecretChatKey(chat.ID, chat.Key, chat.KeyFingerprint)
	if chat.InSeqNo != 0 || chat.LastInSeqNo != 0 || chat.OutSeqNo != 0 {
		s.SetSecretChatSeq(chat.ID, chat.InSeqNo, chat.LastInSeqNo, chat.OutSeqNo)
	}
	return nil
}

func (s *State) updateSecretChat(id int32, fn func(*SecretChat)) bool {
	s.Lock()
	defer s.Unlock()
	chat, ok := s.secretChats[id]
	if !ok {
		return false
	}
	fn(chat)
	s.secretDirty = true
	return true
}

// The setters below report false when chat id is unknown.

func (s *State) SetSecretChatDate(id, date int32) bool {
	return s.updateSecretChat(id, func(c *SecretChat) { c.Date = date })
}

func (s *State) SetSecretChatTTL(id, ttl int32) bool {
	return s.updateSecretChat(id, func(c *SecretChat) { c.TTL = ttl })
}

func (s *State) SetSecretChatLayer(id, layer int32) bool {
	return s.updateSecretChat(id, func(c *SecretChat) { c.Layer = layer })
}

func (s *State) SetSecretChatAccessHash(id int32, hash int64) bool {
	return s.updateSecretChat(id, func(c *SecretChat) { c.AccessHash = hash })
}

func (s *State) SetSecretChatState(id int32, state SecretChatState) bool {
	return s.updateSecretChat(id, func(c *SecretChat) { c.State = state })
}

func (s *State) SetSecretChatKey(id int32, key [session.AuthKeySize]byte, fingerprint int64) bool {
	return s.updateSecretChat(id, func(c *SecretChat) {
		c.Key = key
		c.KeyFingerprint = fingerprint
	})
}

func (s *State) SetSecretChatSeq(id, inSeqNo, lastInSeqNo, outSeqNo int32) bool {
	return s.updateSecretChat(id, func(c *SecretChat) {
		c.InSeqNo = inSeqNo
		c.LastInSeqNo = lastInSeqNo
		c.OutSeqNo = outSeqNo
	})
}

// SecretChat returns a copy of chat id, or nil.
func (s *State) SecretChat(id int32) *SecretChat {
	s.Lock()
	defer s.Unlock()
	chat, ok := s.secretChats[id]
	if !ok {
		return nil
	}
	cp := *chat
	return &cp
}

// SecretChats yields copies of every known chat ordered by id.
func (s *State) SecretChats() iter.Seq[*SecretChat] {
	s.Lock()
	snapshot := make([]*SecretChat, 0, len(s.secretChats))
	for _, id := range slices.Sorted(maps.Keys(s.secretChats)) {
		cp := *s.secretChats[id]
		snapshot = append(snapshot, &cp)
	}
	s.Unlock()

	return slices.Values(snapshot)
}

// takeSecretDirty reports whether any chat changed since the last call.
func (s *State) takeSecretDirty() bool {
	s.Lock()
	defer s.Unlock()
	dirty := s.secretDirty
	s.secretDirty = false
	return dirty
}
