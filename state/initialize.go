package state

import (
	"time"

	"mdtoc/toc"
)

// newLocalEnv creates a new LocalEnv instance with default values
func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		start: time.Now(),
		TOC:   toc.DefaultOptions(),
	}
}
