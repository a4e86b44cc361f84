package dirinfo

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/v3/disk"
)

// Usage describes the filesystem holding a directory.
type Usage struct {
	Total       uint64
	Free        uint64
	UsedPercent float64
}

// diskUsage is replaced in tests.
var diskUsage = disk.UsageWithContext

// VolumeUsage queries the filesystem that contains dir. statfs does not
// observe ctx, so the call runs in its own goroutine and is abandoned once
// ctx is done.
func VolumeUsage(ctx context.Context, dir string) (*Usage, error) {
	type result struct {
		stat *disk.UsageStat
		err  error
	}
	done := make(chan result, 1)
	go func() {
		stat, err := diskUsage(ctx, dir)
		done <- result{stat, err}
	}()

	var res result
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("volume usage for %s: %w", dir, ctx.Err())
	case res = <-done:
	}
	if res.err != nil {
		return nil, fmt.Errorf("volume usage for %s: %w", dir, res.err)
	}
	return &Usage{
		Total:       res.stat.Total,
		Free:        res.stat.Free,
		UsedPercent: res.stat.UsedPercent,
	}, nil
}

// String renders the usage for the status line, e.g. "12 GiB free of 100 GiB (88% used)".
func (u *Usage) String() string {
	if u == nil {
		return ""
	}
	return fmt.Sprintf("%s free of %s (%.0f%% used)",
		humanize.IBytes(u.Free), humanize.IBytes(u.Total), u.UsedPercent)
}
