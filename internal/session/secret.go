// Copyright (c) 2025 @AmarnathCJD

package session

import (
	"io"
	"iter"

	"github.com/amarnathcjd/tgloop/internal/encoding/bin"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const secretChatCountOffset = 8 // magic, version

// WriteSecretChats rewrites the secret chat file with every chat from chats
// that is in the OK state, and returns how many were written. The count in
// the header is patched once iteration is over.
func (s *Store) WriteSecretChats(chats iter.Seq[*SecretChat]) (int, error) {
	var count uint32

	err := s.write(s.paths.SecretChat, func(f afero.File, e *bin.Encoder) error {
		e.PutUint(SecretChatFileMagic)
		e.PutUint(SecretChatFileVersion)
		e.PutUint(0) // count, patched below

		for chat := range chats {
			if chat.State != SecretChatOK {
				continue
			}
			if len(chat.PrintName) >= MaxPrintName {
				return errors.Wrapf(ErrNameTooLong, "secret chat %d", chat.ID)
			}

			e.PutInt(chat.ID)
			e.PutString(chat.PrintName)
			e.PutInt(chat.UserID)
			e.PutInt(chat.AdminID)
			e.PutInt(chat.Date)
			e.PutInt(chat.TTL)
			e.PutInt(chat.Layer)
			e.PutLong(chat.AccessHash)
			e.PutInt(int32(chat.State))
			e.PutLong(chat.KeyFingerprint)
			e.PutRawBytes(chat.Key[:])
			e.PutInt(chat.InSeqNo)
			e.PutInt(chat.LastInSeqNo)
			e.PutInt(chat.OutSeqNo)
			count++
		}
		if err := e.CheckErr(); err != nil {
			return err
		}

		if _, err := f.Seek(secretChatCountOffset, io.SeekStart); err != nil {
			return errors.Wrap(err, "seeking to chat count")
		}
		patch := bin.NewEncoder(f)
		patch.PutUint(count)
		return patch.CheckErr()
	})
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

// ReadSecretChats decodes the secret chat file. A missing, empty, truncated
// or foreign file yields no chats and no error. An unknown version or an out
// of range length fails the whole read with ErrCorruptStore and returns no
// chats at all.
func (s *Store) ReadSecretChats() ([]*SecretChat, error) {
	path := s.paths.SecretChat
	data, ok := s.readFile(path)
	if !ok {
		return nil, nil
	}

	d := bin.NewDecoderBytes(data)
	if magic := d.PopUint(); d.Err() != nil || magic != SecretChatFileMagic {
		s.log.Info("%s has no secret chats", path)
		return nil, nil
	}

	version := d.PopUint()
	count := d.PopUint()
	if d.Err() != nil {
		return nil, s.decodeErr(path, d)
	}
	if version > SecretChatFileVersion {
		return nil, corrupt(path, "unknown version %d", version)
	}
	if count >= MaxSecretChats {
		return nil, corrupt(path, "chat count %d out of range", int32(count))
	}

	chats := make([]*SecretChat, 0, min(count, 64))
	for i := uint32(0); i < count && d.Err() == nil; i++ {
		chat := &SecretChat{ID: d.PopInt()}
		chat.PrintName = string(d.PopBytes(MaxPrintName))
		chat.UserID = d.PopInt()
		chat.AdminID = d.PopInt()
		chat.Date = d.PopInt()
		chat.TTL = d.PopInt()
		chat.Layer = d.PopInt()
		chat.AccessHash = d.PopLong()
		chat.State = SecretChatState(d.PopInt())
		chat.KeyFingerprint = d.PopLong()
		copy(chat.Key[:], d.PopRawBytes(AuthKeySize))
		if version >= 1 {
			chat.InSeqNo = d.PopInt()
			chat.LastInSeqNo = d.PopInt()
			chat.OutSeqNo = d.PopInt()
		}
		chats = append(chats, chat)
	}
	if d.Err() != nil {
		return nil, s.decodeErr(path, d)
	}

	s.log.Debug("loaded %d secret chats from %s (version %d)", len(chats), path, version)
	return chats, nil
}
