package telegram

import (
	"context"

	"github.com/pkg/errors"
)

// bootstrapContext carries what the callbacks of one bootstrap run report
// back to the phase waiting on them.
type bootstrapContext struct {
	codeSent       bool
	shouldRegister bool
	codeHash       string
	signIn         signInResult
	gotDifference  bool
	gotDialogs     bool
	dialogs        []Dialog

	err error
}

type signInResult int

const (
	signInPending signInResult = iota
	signInOK
	signInFailed
)

func (b *bootstrapContext) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// wait pumps until done holds or a callback has failed the run.
func (c *Client) wait(ctx context.Context, bc *bootstrapContext, done func() bool) error {
	if err := c.loop.Wait(ctx, func() bool { return bc.err != nil || done() }); err != nil {
		return err
	}
	return bc.err
}

// persistTick runs after every pump: the cursor is written when it moved
// forward, the secret chat file when a chat changed.
func (c *Client) persistTick() error {
	if _, err := c.store.WriteCursor(c.state.Cursor()); err != nil {
		return errors.Wrap(err, "saving update state")
	}
	if c.state.takeSecretDirty() {
		if err := c.SaveSecretChats(); err != nil {
			return err
		}
	}
	return nil
}

// SaveSecretChats rewrites the secret chat file from the current state.
func (c *Client) SaveSecretChats() error {
	n, err := c.store.WriteSecretChats(c.state.SecretChats())
	if err != nil {
		return errors.Wrap(err, "saving secret chats")
	}
	c.Log.Debug("saved %d secret chats", n)
	return nil
}

func (c *Client) initialSync(ctx context.Context, bc *bootstrapContext) error {
	fromStart := c.cfg.SyncFromStart()
	c.Log.Debug("requesting difference, from start: %v", fromStart)

	c.proto.GetDifference(fromStart, func(ok bool) {
		if !ok {
			bc.fail(ErrDifference)
			return
		}
		bc.gotDifference = true
	})
	if err := c.wait(ctx, bc, func() bool { return bc.gotDifference }); err != nil {
		return err
	}
	if c.proto.DifferenceLocked() {
		return ErrDifferenceLocked
	}

	c.state.setStarted()
	return nil
}

func (c *Client) dialogList(ctx context.Context, bc *bootstrapContext) error {
	if !c.cfg.WaitDialogList() {
		return nil
	}

	c.proto.GetDialogList(func(ok bool, dialogs []Dialog) {
		if !ok {
			c.Log.Warn("dialog list request failed")
		}
		bc.dialogs = dialogs
		bc.gotDialogs = true
	})
	if err := c.wait(ctx, bc, func() bool { return bc.gotDialogs }); err != nil {
		return err
	}

	c.Log.Info("got %d dialogs", len(bc.dialogs))
	return nil
}
