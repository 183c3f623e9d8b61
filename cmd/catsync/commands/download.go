package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.trai.ch/catsync/internal/core/domain"
)

func (c *CLI) newDownloadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "download",
		Short: "Download the content the remote catalogs changed",
		Args:  cobra.NoArgs,
		RunE:  c.runDownload,
	}
	cmd.Flags().BoolP("yes", "y", false, "Download without asking for confirmation")
	return cmd
}

func (c *CLI) runDownload(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	info, err := c.app.CheckForUpdate(ctx)
	if err != nil {
		return err
	}
	if !info.NeedUpdate {
		_, _ = fmt.Fprintln(out, "catalogs are up to date")
		return nil
	}

	yes, err := cmd.Flags().GetBool("yes")
	if err != nil {
		return err
	}
	if !yes && !confirm(cmd.InOrStdin(), out, info.DownloadSizeBytes) {
		_, _ = fmt.Fprintln(out, "download skipped")
		return nil
	}

	bar := progressbar.NewOptions64(info.DownloadSizeBytes,
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionSetDescription("downloading"),
		progressbar.OptionShowDescriptionAtLineEnd(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowBytes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(100*time.Millisecond),
	)

	var final domain.DownloadStatus
	started := c.app.StartDownload(ctx, func(st domain.DownloadStatus) {
		_ = bar.Set64(st.DownloadedBytes)
		if st.IsDone {
			final = st
		}
	})
	if !started {
		return domain.ErrDownloadInProgress
	}

	finished := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			c.app.CancelDownload()
		case <-finished:
		}
	}()
	c.app.WaitDownload()
	close(finished)
	_ = bar.Finish()
	_, _ = fmt.Fprintln(cmd.ErrOrStderr())

	if final.Err != nil {
		return final.Err
	}
	_, _ = fmt.Fprintf(out, "downloaded %s\n", domain.FormatSize(final.DownloadedBytes))
	return nil
}

func confirm(in io.Reader, out io.Writer, size int64) bool {
	_, _ = fmt.Fprintf(out, "download %s now? [y/N] ", domain.FormatSize(size))
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
