// Package debug holds switches for diagnostic output, read once from the
// environment.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Walk    bool
	Rewrite bool
	Backup  bool
	Filter  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Walk = boolEnv("UUIDMIG_DEBUG_WALK")
	d.Rewrite = boolEnv("UUIDMIG_DEBUG_REWRITE")
	d.Backup = boolEnv("UUIDMIG_DEBUG_BACKUP")
	d.Filter = boolEnv("UUIDMIG_DEBUG_FILTER")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Walk() bool {
	return d.Walk
}
func Rewrite() bool {
	return d.Rewrite
}
func Backup() bool {
	return d.Backup
}
func Filter() bool {
	return d.Filter
}
