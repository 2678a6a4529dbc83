package config

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/amarnathcjd/tgloop/telegram"
)

var _ telegram.Config = (*Session)(nil)

// CodeReader asks the user for the login code.
type CodeReader interface {
	ReadCode(prompt string) (string, error)
}

// Session is the telegram.Config view of a loaded Config. The phone number
// starts out as the configured one and may be replaced by the client.
type Session struct {
	cfg   *Config
	codes CodeReader
	phone string
}

func NewSession(cfg *Config, codes CodeReader) *Session {
	return &Session{cfg: cfg, codes: codes, phone: cfg.Phone}
}

func (s *Session) DefaultUsername() string { return s.phone }
func (s *Session) SetDefaultUsername(phone string) { s.phone = phone }
func (s *Session) FirstName() string { return s.cfg.FirstName }
func (s *Session) LastName() string { return s.cfg.LastName }
func (s *Session) AuthKeyFile() string { return s.cfg.AuthKeyFile }
func (s *Session) StateFile() string { return s.cfg.StateFile }
func (s *Session) SecretChatFile() string { return s.cfg.SecretChatFile }
func (s *Session) TestMode() bool { return s.cfg.TestMode }
func (s *Session) SyncFromStart() bool { return s.cfg.SyncFromStart }
func (s *Session) WaitDialogList() bool { return s.cfg.WaitDialogList }

func (s *Session) ResetAuthorization() telegram.ResetMode {
	return telegram.ResetMode(s.cfg.ResetAuthorization)
}

func (s *Session) SMSCode() (string, error) {
	if s.codes == nil {
		return "", ErrNoCodeReader
	}
	return s.codes.ReadCode(fmt.Sprintf("Enter the code sent to %s: ", s.phone))
}

// PromptReader prints a prompt and reads one line per code.
type PromptReader struct {
	out io.Writer
	in  *bufio.Scanner
}

func NewPromptReader(in io.Reader, out io.Writer) *PromptReader {
	return &PromptReader{out: out, in: bufio.NewScanner(in)}
}

// ReadCode prompts until a non-empty line is entered.
func (p *PromptReader) ReadCode(prompt string) (string, error) {
	for {
		fmt.Fprint(p.out, prompt)
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return "", errors.Wrap(err, "reading code")
			}
			return "", errors.Wrap(io.EOF, "reading code")
		}
		if code := strings.TrimSpace(p.in.Text()); code != "" {
			return code, nil
		}
	}
}
