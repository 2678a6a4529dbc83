package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/amarnathcjd/tgloop/internal/config"
	"github.com/amarnathcjd/tgloop/internal/session"
	"github.com/amarnathcjd/tgloop/internal/utils"
	"github.com/amarnathcjd/tgloop/telegram"
)

type app struct {
	fs      afero.Fs
	environ map[string]string

	configFile string
	cfg        *config.Config
	store      *session.Store
	log        *utils.Logger
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "tgstate",
		Short:         "Inspect and reset stored session files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.LoadOptions{
				Fs:      a.fs,
				File:    a.configFile,
				Environ: a.environ,
			})
			if err != nil {
				return err
			}

			a.cfg = cfg
			a.log = utils.NewLoggerWithConfig(&utils.LoggerConfig{
				Level:  cfg.Level(),
				Prefix: "tgstate",
				Output: cmd.ErrOrStderr(),
			})
			a.store = session.NewStore(a.fs, session.Paths{
				AuthKey:    cfg.AuthKeyFile,
				State:      cfg.StateFile,
				SecretChat: cfg.SecretChatFile,
			}, a.log)
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "YAML config file")
	root.AddCommand(configCmd(a), authCmd(a), stateCmd(a), secretCmd(a), resetCmd(a))
	return root
}

func configCmd(a *app) *cobra.Command {
	var readCode bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the settings a client would start with",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			var sess telegram.Config = config.NewSession(a.cfg, config.NewPromptReader(cmd.InOrStdin(), out))

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "phone\t%s\n", sess.DefaultUsername())
			fmt.Fprintf(w, "name\t%s %s\n", sess.FirstName(), sess.LastName())
			fmt.Fprintf(w, "auth key file\t%s\n", sess.AuthKeyFile())
			fmt.Fprintf(w, "state file\t%s\n", sess.StateFile())
			fmt.Fprintf(w, "secret chat file\t%s\n", sess.SecretChatFile())
			fmt.Fprintf(w, "test mode\t%v\n", sess.TestMode())
			fmt.Fprintf(w, "sync from start\t%v\n", sess.SyncFromStart())
			fmt.Fprintf(w, "wait dialog list\t%v\n", sess.WaitDialogList())
			fmt.Fprintf(w, "reset authorization\t%d\n", sess.ResetAuthorization())
			if err := w.Flush(); err != nil {
				return err
			}

			if !readCode {
				return nil
			}
			code, err := sess.SMSCode()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\ncode read: %s\n", code)
			return nil
		},
	}
	cmd.Flags().BoolVar(&readCode, "read-code", false, "also prompt for a login code the way a client would")
	return cmd
}

func authCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "auth",
		Short: "Print the stored data center table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := a.store.ReadAuthTable()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if table == nil {
				fmt.Fprintf(out, "no auth table in %s\n", a.store.Paths().AuthKey)
				return nil
			}

			fmt.Fprintf(out, "working dc: %d\nuser id: %d\n", table.WorkingDC, table.OurID)
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DC\tADDRESS\tKEY ID")
			for _, dc := range table.DCs {
				if dc == nil {
					continue
				}
				fmt.Fprintf(w, "%d\t%s:%d\t%016x\n", dc.ID, dc.IP, dc.Port, uint64(dc.AuthKeyID))
			}
			return w.Flush()
		},
	}
}

func stateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "Print the stored update cursor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := a.store.ReadCursor()
			fmt.Fprintf(cmd.OutOrStdout(), "pts: %d\nqts: %d\nseq: %d\ndate: %s\n",
				c.Pts, c.Qts, c.Seq, time.Unix(int64(c.Date), 0).UTC().Format(time.RFC3339))
			return nil
		},
	}
}

func secretCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "secret",
		Short: "List stored secret chats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			chats, err := a.store.ReadSecretChats()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tUSER\tLAYER\tTTL\tSEQ IN/OUT")
			for _, c := range chats {
				fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%d/%d\n", c.ID, c.PrintName, c.UserID, c.Layer, c.TTL, c.InSeqNo, c.OutSeqNo)
			}
			return w.Flush()
		},
	}
}

func resetCmd(a *app) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the auth table so the next run logs in again",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stored := a.store.Paths()
			paths := []string{stored.AuthKey}
			if all {
				paths = append(paths, stored.State, stored.SecretChat)
			}
			for _, path := range paths {
				if err := a.fs.Remove(path); err != nil && !os.IsNotExist(err) {
					return errors.Wrapf(err, "removing %s", path)
				}
				a.log.Info("removed %s", path)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "also delete the update cursor and secret chats")
	return cmd
}
