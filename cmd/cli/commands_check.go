package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/Control-D-Inc/vpnhost"
	vpnnet "github.com/Control-D-Inc/vpnhost/internal/net"
)

func initCheckCmd() *cobra.Command {
	checkCmd := &cobra.Command{
		Use:   "check [hostname...]",
		Short: "Check client hostnames and report which are accepted",
		Long: `Check client hostnames the way the VPN server does: truncate, strip
the domain, then validate the remaining label.

Exits with status 1 if any hostname is rejected. Use "--" before
hostnames starting with a hyphen.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if readStdin && len(args) > 0 {
				return errors.New("hostname arguments cannot be used with --stdin")
			}
			if !readStdin && len(args) == 0 {
				return errors.New("requires at least one hostname, or --stdin")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			inputs := args
			if readStdin {
				if inputs, err = readLines(cmd.InOrStdin()); err != nil {
					return err
				}
			}

			c := vpnhost.NewChecker(cfg.Hostname)
			results := make([]vpnhost.Result, len(inputs))
			rejected := 0
			for i, in := range inputs {
				ctx := context.WithValue(cmd.Context(), vpnhost.SessionIDCtxKey{}, "input-"+strconv.Itoa(i+1))
				results[i] = c.Check(ctx, in)
				if !results[i].Valid {
					rejected++
				}
			}
			renderResults(cmd.OutOrStdout(), results)

			if rejected > 0 {
				cmd.SilenceUsage = true
				return fmt.Errorf("%d of %d hostnames rejected", rejected, len(results))
			}
			return nil
		},
	}
	checkCmd.Flags().BoolVarP(&readStdin, "stdin", "", false, "Read hostnames from stdin, one per line")
	return checkCmd
}

func initStripCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strip hostname...",
		Short: "Print hostnames without their domain part",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			for _, host := range args {
				fmt.Fprintln(cmd.OutOrStdout(), vpnhost.StripDomain(host))
			}
		},
	}
}

// maxLineLen is how much of a stdin line is kept. One byte more than
// MaxHostnameLen, so the checker still reports the line as truncated.
const maxLineLen = vpnhost.MaxHostnameLen + 1

// readLines returns the non-empty lines of r, as is except for the line
// ending. Lines longer than maxLineLen are cut to that length.
func readLines(r io.Reader) ([]string, error) {
	var (
		lines []string
		line  []byte
	)
	br := bufio.NewReader(r)
	for {
		chunk, isPrefix, err := br.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read hostnames: %w", err)
		}
		if room := maxLineLen - len(line); room > 0 {
			if len(chunk) > room {
				chunk = chunk[:room]
			}
			line = append(line, chunk...)
		}
		if isPrefix {
			continue
		}
		if len(line) > 0 {
			lines = append(lines, string(line))
		}
		line = line[:0]
	}
	return lines, nil
}

func renderResults(w io.Writer, results []vpnhost.Result) {
	data := make([][]string, len(results))
	for i, res := range results {
		data[i] = []string{
			strconv.Quote(res.Input),
			res.Hostname,
			res.Domain,
			strconv.FormatBool(res.Valid),
			resultNote(res),
		}
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Input", "Hostname", "Domain", "Valid", "Note"})
	table.SetAutoFormatHeaders(false)
	table.AppendBulk(data)
	table.Render()
}

func resultNote(res vpnhost.Result) string {
	var notes []string
	switch {
	case res.IPv4:
		notes = append(notes, "ipv4 literal")
	case vpnnet.IsIPv6(res.Input):
		notes = append(notes, "ipv6 literal")
	}
	if res.Truncated {
		notes = append(notes, "truncated")
	}
	if !res.Valid && res.Hostname != "" {
		notes = append(notes, "fallback")
	}
	return strings.Join(notes, ",")
}
