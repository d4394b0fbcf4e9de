package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"chartd/internal/common/fsutil"
	"chartd/internal/page"
)

func newOptionCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:     "option <chart-id>",
		Short:   "Print the effective option of a chart as JSON",
		Example: "  chartd option traffic -c dashboard.yaml",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, _, _, err := openDashboard(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer m.Close()
			opt, err := m.Option(args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(opt)
		},
	}
}

func newPageCmd(opts *Options) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:     "page",
		Short:   "Render the dashboard as a standalone HTML page",
		Example: "  chartd page -c dashboard.yaml -o dashboard.html",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, _, log, err := openDashboard(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer m.Close()
			var buf bytes.Buffer
			if err := page.Render(&buf, m); err != nil {
				return err
			}
			if out == "" || out == "-" {
				_, err := cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			p, err := fsutil.ExpandHome(out)
			if err != nil {
				return err
			}
			if err := fsutil.WriteFileAtomic(p, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", p, err)
			}
			log.Info().Str("path", p).Int("bytes", buf.Len()).Msg("page written")
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "-", "Output file (- for stdout)")
	return cmd
}
