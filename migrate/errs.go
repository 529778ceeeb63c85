package migrate

import "errors"

var (
	ErrRead   = errors.New("read error")
	ErrWrite  = errors.New("write error")
	ErrRename = errors.New("rename error")
	ErrFilter = errors.New("filter error")
)
