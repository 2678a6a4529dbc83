// Copyright (c) 2025 @AmarnathCJD

package telegram

import (
	"context"

	"github.com/pkg/errors"
)

// login signs the working data center in with the configured phone number,
// asking for the code again until the server accepts one. It does nothing
// when the working data center is already signed in.
func (c *Client) login(ctx context.Context, bc *bootstrapContext) error {
	if c.state.Signed(c.state.WorkingDC()) {
		return nil
	}

	phone := c.cfg.DefaultUsername()
	c.Log.Info("need to login first, sending code to %s", phone)

	c.proto.SendCode(phone, func(ok, registered bool, hash string) {
		if !ok {
			bc.fail(ErrSendCode)
			return
		}
		bc.codeSent = true
		bc.shouldRegister = !registered
		bc.codeHash = hash
	})
	if err := c.wait(ctx, bc, func() bool { return bc.codeSent }); err != nil {
		return err
	}

	var firstName, lastName string
	if bc.shouldRegister {
		c.Log.Info("phone %s is not registered, signing up", phone)
		firstName, lastName = c.cfg.FirstName(), c.cfg.LastName()
	}

	done := func(ok bool) {
		if ok {
			bc.signIn = signInOK
		} else {
			bc.signIn = signInFailed
		}
	}

	for {
		code, err := c.cfg.SMSCode()
		if err != nil {
			return errors.Wrap(err, "reading login code")
		}

		bc.signIn = signInPending
		if bc.shouldRegister {
			c.proto.SignUp(phone, bc.codeHash, code, firstName, lastName, done)
		} else {
			c.proto.SignIn(phone, bc.codeHash, code, done)
		}
		if err := c.wait(ctx, bc, func() bool { return bc.signIn != signInPending }); err != nil {
			return err
		}
		if bc.signIn == signInOK {
			break
		}
		c.Log.Warn("invalid code, try again")
	}

	c.Log.Info("signed in as %s", phone)
	return nil
}

// exportAuth signs every other data center in, one at a time, by exporting
// the working data center's authorization. Each export waits until the data
// center is marked signed, however many pumps after the callback that takes.
func (c *Client) exportAuth(ctx context.Context, bc *bootstrapContext) error {
	working := c.state.WorkingDC()

	for id := 0; id <= c.state.MaxDC(); id++ {
		dc := c.state.DC(id)
		if dc == nil || id == working || dc.Signed {
			continue
		}

		c.Log.WithFields(map[string]any{"dc": id, "ip": dc.IP}).Debug("exporting authorization")
		c.proto.ExportAuth(id, func(ok bool) {
			if !ok {
				bc.fail(errors.Wrapf(ErrExportAuth, "dc %d", id))
			}
		})
		if err := c.wait(ctx, bc, func() bool { return c.state.Signed(id) }); err != nil {
			return err
		}
	}
	return nil
}
