package telegram

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/amarnathcjd/tgloop/internal/session"
	"github.com/amarnathcjd/tgloop/internal/utils"
)

const (
	maxFakePumps = 10000
	fakeOurID    = 777
)

var errTooManyPumps = errors.New("too many pumps")

// fakeNet is both reactor and protocol: requests queue their callback, the
// next pump runs it.
type fakeNet struct {
	state   *State
	pending []func()
	pumps   int
	onPump  func(n int)

	registered    bool
	validCode     string
	sendCodeFails bool
	exportFails   map[int]bool
	exportLate    bool
	diffLocked    bool
	dialogs       []Dialog

	firstRequest   int
	sentCodes      []string
	signIns        []string
	signUps        []string
	exports        []int
	diffRequests   []bool
	dialogRequests int
	flushes        int
	lookups        int
}

func newFakeNet(state *State) *fakeNet {
	return &fakeNet{
		state:       state,
		registered:  true,
		validCode:   "12345",
		exportFails: map[int]bool{},
	}
}

func (f *fakeNet) RunOnce() error {
	if f.pumps >= maxFakePumps {
		return errTooManyPumps
	}
	f.pumps++
	queued := f.pending
	f.pending = nil
	for _, fn := range queued {
		fn()
	}
	if f.onPump != nil {
		f.onPump(f.pumps)
	}
	return nil
}

func (f *fakeNet) later(fn func()) {
	if f.firstRequest == 0 {
		f.firstRequest = f.pumps + 1
	}
	f.pending = append(f.pending, fn)
}

// authorizeAll finishes a key exchange with every known data center.
func (f *fakeNet) authorizeAll() {
	for dc := range f.state.DataCenters() {
		if dc.Authorized {
			continue
		}
		var key [session.AuthKeySize]byte
		key[0] = byte(dc.ID)
		f.state.SetAuthKey(dc.ID, key)
	}
}

func (f *fakeNet) signedIn(phone string) {
	f.state.SetSigned(f.state.WorkingDC())
	f.state.SetOurID(fakeOurID)
	f.state.SetUser(&User{ID: fakeOurID, Phone: phone})
}

func (f *fakeNet) SendCode(phone string, done func(ok, registered bool, hash string)) {
	f.sentCodes = append(f.sentCodes, phone)
	f.later(func() { done(!f.sendCodeFails, f.registered, "hash-"+phone) })
}

func (f *fakeNet) SignIn(phone, hash, code string, done func(ok bool)) {
	f.signIns = append(f.signIns, code)
	f.later(func() {
		ok := hash == "hash-"+phone && code == f.validCode
		if ok {
			f.signedIn(phone)
		}
		done(ok)
	})
}

func (f *fakeNet) SignUp(phone, hash, code, firstName, lastName string, done func(ok bool)) {
	f.signUps = append(f.signUps, firstName+" "+lastName+" "+code)
	f.later(func() {
		ok := code == f.validCode
		if ok {
			f.signedIn(phone)
		}
		done(ok)
	})
}

func (f *fakeNet) ExportAuth(dc int, done func(ok bool)) {
	f.exports = append(f.exports, dc)
	f.later(func() {
		switch {
		case f.exportFails[dc]:
			done(false)
		case f.exportLate:
			done(true)
			f.later(func() { f.state.SetSigned(dc) })
		default:
			f.state.SetSigned(dc)
			done(true)
		}
	})
}

func (f *fakeNet) GetDifference(fromStart bool, done func(ok bool)) {
	f.diffRequests = append(f.diffRequests, fromStart)
	f.later(func() {
		c := f.state.Cursor()
		f.state.SetCursor(Cursor{Pts: c.Pts + 5, Qts: c.Qts, Seq: c.Seq + 1, Date: c.Date + 60})
		done(true)
	})
}

func (f *fakeNet) GetDialogList(done func(ok bool, dialogs []Dialog)) {
	f.dialogRequests++
	f.later(func() { done(true, f.dialogs) })
}

func (f *fakeNet) SendAllUnsent()         { f.flushes++ }
func (f *fakeNet) LookupState()           { f.lookups++ }
func (f *fakeNet) DifferenceLocked() bool { return f.diffLocked }

type configOpts struct {
	test          bool
	phone         string
	syncFromStart bool
	waitDialogs   bool
	reset         ResetMode
}

var testPaths = session.Paths{
	AuthKey:    "/tg/auth",
	State:      "/tg/state",
	SecretChat: "/tg/secret",
}

type harness struct {
	cfg   *MockConfig
	fs    afero.Fs
	state *State
	net   *fakeNet
	phone string
}

func newHarness(t *testing.T, o configOpts) *harness {
	t.Helper()

	h := &harness{
		fs:    afero.NewMemMapFs(),
		state: NewState(),
		phone: o.phone,
	}
	require.NoError(t, h.fs.MkdirAll("/tg", 0o700))
	h.net = newFakeNet(h.state)

	h.cfg = NewMockConfig(gomock.NewController(t))
	e := h.cfg.EXPECT()
	e.AuthKeyFile().Return(testPaths.AuthKey).AnyTimes()
	e.StateFile().Return(testPaths.State).AnyTimes()
	e.SecretChatFile().Return(testPaths.SecretChat).AnyTimes()
	e.TestMode().Return(o.test).AnyTimes()
	e.SyncFromStart().Return(o.syncFromStart).AnyTimes()
	e.WaitDialogList().Return(o.waitDialogs).AnyTimes()
	e.ResetAuthorization().Return(o.reset).AnyTimes()
	e.DefaultUsername().DoAndReturn(func() string { return h.phone }).AnyTimes()
	return h
}

func (h *harness) client(t *testing.T) *Client {
	t.Helper()
	c, err := NewClient(ClientConfig{
		Config:   h.cfg,
		Protocol: h.net,
		Reactor:  h.net,
		State:    h.state,
		Fs:       h.fs,
		Logger:   utils.Nop(),
	})
	require.NoError(t, err)
	return c
}

func (h *harness) store() *session.Store {
	return session.NewStore(h.fs, testPaths, nil)
}

// signedSession writes an auth table where every test DC is authorized and
// signed in, as left behind by an earlier run.
func (h *harness) signedSession(t *testing.T) {
	t.Helper()
	table := &session.AuthTable{MaxDC: 3, WorkingDC: 2, OurID: fakeOurID, DCs: make([]*session.DataCenter, 4)}
	for _, ep := range TestEnvironment.DataCenters {
		dc := &session.DataCenter{ID: ep.ID, IP: ep.IP, Port: ep.Port, Authorized: true, Signed: true}
		dc.AuthKey[0] = byte(ep.ID)
		dc.AuthKeyID = AuthKeyID(dc.AuthKey)
		table.DCs[ep.ID] = dc
	}
	require.NoError(t, h.store().WriteAuthTable(table))
}
