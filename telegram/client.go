// Copyright (c) 2022 RoseLoverX

package telegram

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/amarnathcjd/tgloop/internal/session"
	"github.com/amarnathcjd/tgloop/internal/utils"
)

// Client owns a session and brings it from nothing to a signed-in, synced
// state, then keeps the event loop running.
type Client struct {
	cfg   Config
	proto Protocol
	state *State
	store *session.Store
	loop  *Loop
	env   Environment
	Log   *utils.Logger
}

// ClientConfig is the configuration struct for the client
type ClientConfig struct {
	// Credentials, file locations and flags. Required.
	Config Config
	// RPC layer. Required.
	Protocol Protocol
	// Event pump. Required.
	Reactor Reactor
	// State shared with Protocol; a fresh one is created when nil
	State *State
	// Filesystem the session files live on, default: the OS filesystem
	Fs afero.Fs
	// Default servers when no auth table exists, default: picked by Config.TestMode
	Environment *Environment
	// Logger, default: info level console logger
	Logger *Logger
	// Clock for the hourly state lookup, default: time.Now
	Clock func() time.Time
}

func NewClient(c ClientConfig) (*Client, error) {
	switch {
	case c.Config == nil:
		return nil, errors.New("config is required")
	case c.Protocol == nil:
		return nil, errors.New("protocol is required")
	case c.Reactor == nil:
		return nil, errors.New("reactor is required")
	}

	if c.State == nil {
		c.State = NewState()
	}
	if c.Logger == nil {
		c.Logger = utils.NewLogger("tgloop")
	}
	env := DefaultEnvironment(c.Config.TestMode())
	if c.Environment != nil {
		env = *c.Environment
	}
	if err := env.validate(); err != nil {
		return nil, err
	}

	client := &Client{
		cfg:   c.Config,
		proto: c.Protocol,
		state: c.State,
		env:   env,
		Log:   c.Logger,
		store: session.NewStore(c.Fs, session.Paths{
			AuthKey:    c.Config.AuthKeyFile(),
			State:      c.Config.StateFile(),
			SecretChat: c.Config.SecretChatFile(),
		}, c.Logger),
		loop: NewLoop(c.Reactor, c.Protocol, c.Logger.WithPrefix("loop"), c.Clock),
	}
	client.loop.afterPump = client.persistTick
	return client, nil
}

func (c *Client) State() *State {
	return c.state
}

// Pumps returns how many reactor iterations have run.
func (c *Client) Pumps() uint64 {
	return c.loop.Pumps()
}

// Run bootstraps the session and then pumps events until ctx is done or the
// reactor fails. It never returns nil.
func (c *Client) Run(ctx context.Context) error {
	if err := c.Bootstrap(ctx); err != nil {
		return err
	}
	c.Log.Info("session ready, entering event loop")
	return phaseErr(PhaseSteadyState, c.loop.Wait(ctx, nil))
}

// WaitLoop pumps events until isEnd holds. It is meant for callers that drive
// requests of their own after Bootstrap has returned.
func (c *Client) WaitLoop(ctx context.Context, isEnd func() bool) error {
	return c.loop.Wait(ctx, isEnd)
}

// Bootstrap runs every phase up to, not including, the steady state. A
// failure is returned as a *PhaseError naming the phase.
func (c *Client) Bootstrap(ctx context.Context) error {
	start := time.Now()
	bc := &bootstrapContext{}

	phases := []struct {
		name string
		run  func(context.Context, *bootstrapContext) error
	}{
		{PhaseSeed, c.seed},
		{PhaseAwaitAuthorized, c.awaitAuthorized},
		{PhaseLogin, c.login},
		{PhaseExportAuth, c.exportAuth},
		{PhasePersist, c.persist},
		{PhaseInitialSync, c.initialSync},
		{PhaseDialogList, c.dialogList},
	}
	for _, phase := range phases {
		c.Log.Debug("bootstrap phase %s", phase.name)
		if err := phase.run(ctx, bc); err != nil {
			return phaseErr(phase.name, err)
		}
	}

	c.Log.Info("bootstrap done in %s after %d pumps", utils.Since(start), c.loop.Pumps())
	return nil
}

// seed loads the three session files into the state, falling back to the
// default environment when there is no usable auth table, then applies a
// configured authorization reset.
func (c *Client) seed(_ context.Context, _ *bootstrapContext) error {
	table, err := c.store.ReadAuthTable()
	if err != nil {
		return err
	}
	if table == nil {
		c.Log.Info("no stored auth keys, using %s servers", c.env.Name)
		c.state.seedEnvironment(c.env)
	} else {
		c.state.restoreAuthTable(table)
	}

	c.state.SetCursor(c.store.ReadCursor())

	chats, err := c.store.ReadSecretChats()
	if err != nil {
		return err
	}
	for _, chat := range chats {
		if err := c.state.RestoreSecretChat(chat); err != nil {
			return err
		}
	}
	c.state.takeSecretDirty()

	switch mode := c.cfg.ResetAuthorization(); mode {
	case ResetNone:
	case ResetReusePhone, ResetOnly:
		if self := c.state.Self(); mode == ResetReusePhone && self != nil && self.Phone != "" {
			c.Log.Info("resetting authorization, logging in again as %s", self.Phone)
			c.cfg.SetDefaultUsername(self.Phone)
		} else {
			c.Log.Info("resetting authorization")
		}
		c.state.ResetAuthorization()
	default:
		return errors.Errorf("unknown reset mode %d", mode)
	}
	return nil
}

func (c *Client) awaitAuthorized(ctx context.Context, _ *bootstrapContext) error {
	if !c.state.AllAuthorized() {
		c.Log.Info("waiting for auth key exchange")
	}
	return c.loop.Wait(ctx, c.state.AllAuthorized)
}

// persist writes the auth table once every data center is signed in, then
// flushes requests queued while we were not.
func (c *Client) persist(_ context.Context, _ *bootstrapContext) error {
	if err := c.store.WriteAuthTable(c.state.AuthTable()); err != nil {
		return errors.Wrap(err, "saving auth keys")
	}
	c.proto.SendAllUnsent()
	return nil
}
