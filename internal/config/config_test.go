package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amarnathcjd/tgloop/internal/utils"
	"github.com/amarnathcjd/tgloop/telegram"
)

func writeYAML(t *testing.T, fs afero.Fs, body string) string {
	t.Helper()
	path := "/etc/tg/config.yaml"
	require.NoError(t, afero.WriteFile(fs, path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(LoadOptions{Fs: afero.NewMemMapFs(), Environ: map[string]string{}})
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(cfg.Dir, DefaultDirName))
	assert.Equal(t, filepath.Join(cfg.Dir, DefaultAuthKeyFile), cfg.AuthKeyFile)
	assert.Equal(t, filepath.Join(cfg.Dir, DefaultStateFile), cfg.StateFile)
	assert.Equal(t, filepath.Join(cfg.Dir, DefaultSecretChatFile), cfg.SecretChatFile)
	assert.False(t, cfg.TestMode)
	assert.Zero(t, cfg.ResetAuthorization)
	assert.Equal(t, utils.InfoLevel, cfg.Level())
}

func TestLoad_LayersOverride(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := writeYAML(t, fs, `
dir: /var/lib/tg
phone: "+15550100"
first_name: Ada
test_mode: true
secret_chat_file: /secure/secret
log_level: debug
`)

	cfg, err := Load(LoadOptions{Fs: fs, File: path, Environ: map[string]string{
		"TG_PHONE":               "+15550199",
		"TG_STATE_FILE":          "cursor",
		"TG_WAIT_DIALOG_LIST":    "true",
		"TG_RESET_AUTHORIZATION": "1",
		"PHONE":                  "+10000000000",
	}})
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/tg", cfg.Dir)
	assert.Equal(t, "+15550199", cfg.Phone, "env wins over file")
	assert.Equal(t, "Ada", cfg.FirstName)
	assert.True(t, cfg.TestMode)
	assert.True(t, cfg.WaitDialogList)
	assert.Equal(t, 1, cfg.ResetAuthorization)
	assert.Equal(t, "/var/lib/tg/auth", cfg.AuthKeyFile)
	assert.Equal(t, "/var/lib/tg/cursor", cfg.StateFile)
	assert.Equal(t, "/secure/secret", cfg.SecretChatFile)
	assert.Equal(t, utils.DebugLevel, cfg.Level())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		environ map[string]string
		invalid bool
	}{
		{name: "unknown key", file: "phnoe: 1\n"},
		{name: "bad yaml", file: "dir: [\n"},
		{name: "bad env value", environ: map[string]string{"TG_TEST_MODE": "maybe"}},
		{name: "reset out of range", environ: map[string]string{"TG_RESET_AUTHORIZATION": "3"}, invalid: true},
		{name: "unknown log level", file: "log_level: loud\n", invalid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			opts := LoadOptions{Fs: fs, Environ: tt.environ}
			if opts.Environ == nil {
				opts.Environ = map[string]string{}
			}
			if tt.file != "" {
				opts.File = writeYAML(t, fs, tt.file)
			}

			cfg, err := Load(opts)
			require.Error(t, err)
			assert.Nil(t, cfg)
			if tt.invalid {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}

	_, err := Load(LoadOptions{Fs: afero.NewMemMapFs(), File: "/missing.yaml", Environ: map[string]string{}})
	assert.Error(t, err)
}

func TestLoad_EmptyFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	cfg, err := Load(LoadOptions{Fs: fs, File: writeYAML(t, fs, ""), Environ: map[string]string{}})
	require.NoError(t, err)
	assert.Equal(t, defaults().Dir, cfg.Dir)
}

type scriptedCodes []string

func (s *scriptedCodes) ReadCode(string) (string, error) {
	code := (*s)[0]
	*s = (*s)[1:]
	return code, nil
}

func TestSession(t *testing.T) {
	cfg := &Config{
		Phone:              "+15550100",
		FirstName:          "Ada",
		LastName:           "Lovelace",
		AuthKeyFile:        "/tg/auth",
		StateFile:          "/tg/state",
		SecretChatFile:     "/tg/secret",
		TestMode:           true,
		SyncFromStart:      true,
		ResetAuthorization: 2,
	}
	codes := &scriptedCodes{"12345"}
	s := NewSession(cfg, codes)

	assert.Equal(t, "+15550100", s.DefaultUsername())
	s.SetDefaultUsername("+15550199")
	assert.Equal(t, "+15550199", s.DefaultUsername())
	assert.Equal(t, "+15550100", cfg.Phone, "config itself is not changed")

	assert.Equal(t, "Ada", s.FirstName())
	assert.Equal(t, "Lovelace", s.LastName())
	assert.Equal(t, "/tg/auth", s.AuthKeyFile())
	assert.Equal(t, "/tg/state", s.StateFile())
	assert.Equal(t, "/tg/secret", s.SecretChatFile())
	assert.True(t, s.TestMode())
	assert.True(t, s.SyncFromStart())
	assert.False(t, s.WaitDialogList())
	assert.Equal(t, telegram.ResetOnly, s.ResetAuthorization())

	code, err := s.SMSCode()
	require.NoError(t, err)
	assert.Equal(t, "12345", code)

	_, err = NewSession(cfg, nil).SMSCode()
	assert.ErrorIs(t, err, ErrNoCodeReader)
}

func TestPromptReader(t *testing.T) {
	out := new(strings.Builder)
	r := NewPromptReader(strings.NewReader("\n  \n 54321 \n"), out)

	code, err := r.ReadCode("code: ")
	require.NoError(t, err)
	assert.Equal(t, "54321", code)
	assert.Equal(t, "code: code: code: ", out.String())

	_, err = r.ReadCode("code: ")
	assert.Error(t, err)
}
