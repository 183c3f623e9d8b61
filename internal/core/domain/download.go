package domain

import "fmt"

// SessionStatus is the state of the download session.
type SessionStatus int

const (
	// SessionIdle means no transfer is in flight.
	SessionIdle SessionStatus = iota
	// SessionDownloading means a transfer is in flight.
	SessionDownloading
)

// String returns the name of the session status.
func (s SessionStatus) String() string {
	switch s {
	case SessionIdle:
		return "idle"
	case SessionDownloading:
		return "downloading"
	default:
		return "unknown"
	}
}

// DownloadStatus is a snapshot of a transfer's progress.
type DownloadStatus struct {
	DownloadedBytes int64
	TotalBytes      int64
	Percent         float64
	IsDone          bool
	// Err is set on the final snapshot of a failed or cancelled transfer.
	Err error
}

// NewDownloadStatus builds a snapshot from raw byte counters.
// Percent is 1.0 when there is nothing to download.
func NewDownloadStatus(downloaded, total int64, done bool) DownloadStatus {
	if total < 0 {
		total = 0
	}
	if downloaded > total {
		downloaded = total
	}
	if downloaded < 0 {
		downloaded = 0
	}

	percent := 1.0
	if total > 0 {
		percent = float64(downloaded) / float64(total)
	}

	return DownloadStatus{
		DownloadedBytes: downloaded,
		TotalBytes:      total,
		Percent:         percent,
		IsDone:          done,
	}
}

// UpdateInfo is the result of one diff check.
type UpdateInfo struct {
	NeedUpdate        bool
	DownloadSizeBytes int64
}

// DownloadedBundle summarizes one bundle fetched by a transfer.
type DownloadedBundle struct {
	Name   string
	Size   int64
	Assets []string
}

const (
	kib = 1024
	mib = kib * 1024
	gib = mib * 1024
)

// FormatSize renders a byte count with two decimals in the largest fitting unit.
func FormatSize(bytes int64) string {
	switch {
	case bytes >= gib:
		return fmt.Sprintf("%.2fGB", float64(bytes)/gib)
	case bytes >= mib:
		return fmt.Sprintf("%.2fMB", float64(bytes)/mib)
	default:
		return fmt.Sprintf("%.2fKB", float64(bytes)/kib)
	}
}
