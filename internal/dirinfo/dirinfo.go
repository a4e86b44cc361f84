// Package dirinfo gathers the context shown alongside the explorer's
// directory: the git work tree it belongs to and the volume it lives on.
//
// Nothing here is required for the explorer to run; every lookup degrades to
// an empty value.
package dirinfo

import (
	"context"
	"log"
	"time"
)

const volumeTimeout = 500 * time.Millisecond

// Info is the directory context collected once at startup.
type Info struct {
	Path      string
	GitRepo   string
	GitBranch string
	Volume    *Usage
}

// Collect gathers the Info for an already resolved directory.
func Collect(ctx context.Context, dir string) Info {
	info := Info{Path: dir}
	info.GitRepo, info.GitBranch = GitInfo(dir)

	ctx, cancel := context.WithTimeout(ctx, volumeTimeout)
	defer cancel()

	usage, err := VolumeUsage(ctx, dir)
	if err != nil {
		log.Printf("dirinfo: %v", err)
		return info
	}
	info.Volume = usage
	return info
}

// Git formats the repository line, or "" outside a work tree.
func (i Info) Git() string {
	switch {
	case i.GitRepo == "":
		return ""
	case i.GitBranch == "":
		return i.GitRepo
	default:
		return i.GitRepo + " @ " + i.GitBranch
	}
}
