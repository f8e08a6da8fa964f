package cli

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/loadfile/pkg/errors"
	"github.com/arthur-debert/loadfile/pkg/paths"
	"github.com/arthur-debert/loadfile/pkg/style"
	"github.com/arthur-debert/loadfile/pkg/types"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newCatCmd(e *env) *cobra.Command {
	var hexDump bool
	cmd := &cobra.Command{
		Use:   "cat PATH",
		Short: MsgCatShort,
		Long:  MsgCatLong,
		Example: `  loadfile cat assets/level1.map
  loadfile cat https://example.com/data.bin --hex`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := e.client.LoadFile(args[0]).Wait(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if hexDump || isTerminal(out) {
				_, err = io.WriteString(out, hex.Dump(data))
				return err
			}
			_, err = out.Write(data)
			return err
		},
	}
	cmd.Flags().BoolVarP(&hexDump, "hex", "x", false, MsgFlagHex)
	return cmd
}

func newSaveCmd(e *env) *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "save LOCATION PROFILE",
		Short: MsgSaveShort,
		Long:  MsgSaveLong,
		Example: `  echo '{"volume": 7}' | loadfile save config settings
  loadfile save data slot1 --raw < slot1.bin`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := parseLocation(args[0])
			if err != nil {
				return err
			}
			profile := args[1]
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return errors.Wrap(err, errors.ErrIO, MsgErrReadStdin)
			}

			if raw {
				err = e.client.SaveRaw(loc, e.app, profile, data)
			} else {
				var v any
				if uerr := e.codec.Unmarshal(data, &v); uerr != nil {
					return errors.Wrapf(uerr, errors.ErrDeserialize, "stdin is not valid %s", e.codec.Name())
				}
				err = e.client.Save(loc, e.app, profile, v)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), MsgSavedFormat, len(data), loc, profile)
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, MsgFlagRaw)
	return cmd
}

func newLoadCmd(e *env) *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "load LOCATION PROFILE",
		Short: MsgLoadShort,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := parseLocation(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if raw {
				data, err := e.client.LoadRaw(loc, e.app, args[1])
				if err != nil {
					return err
				}
				_, err = out.Write(data)
				return err
			}

			var v any
			if err := e.client.Load(loc, e.app, args[1], &v); err != nil {
				return err
			}
			data, err := e.codec.Marshal(v)
			if err != nil {
				return errors.Wrapf(err, errors.ErrSerialize, "failed to print %q", args[1])
			}
			if !bytes.HasSuffix(data, []byte("\n")) {
				data = append(data, '\n')
			}
			_, err = out.Write(data)
			return err
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, MsgFlagRaw)
	return cmd
}

func newPathsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: MsgPathsShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := paths.New(e.cfg.PathOverrides())
			data := pterm.TableData{{"Location", "Browser area", "Directory"}}
			for _, loc := range types.Locations {
				dir, err := p.SaveFolder(loc, e.app)
				if err != nil {
					dir = style.ErrorStyle.Render(err.Error())
				}
				area := "localStorage"
				if loc.IsSession() {
					area = "sessionStorage"
				}
				data = append(data, []string{style.LocationStyle(loc).Render(loc.String()), area, dir})
			}

			table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, style.TitleStyle.Render("Storage for "+e.app))
			fmt.Fprintln(out, table)
			fmt.Fprintln(out, style.MutedStyle.Render("Log file: ")+style.PathStyle.Render(paths.LogFilePath(p)))
			return nil
		},
	}
}

func parseLocation(s string) (types.Location, error) {
	loc, err := types.ParseLocation(s)
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrInvalidInput, MsgErrLocation).WithDetail("location", s)
	}
	return loc, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
