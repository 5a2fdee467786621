package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Token   bool
	Parse   bool
	Match   bool
	Compile bool
}

var d *debug

func init() {
	d = &debug{}
	d.Token = boolEnv("SX_DEBUG_TOKEN")
	d.Parse = boolEnv("SX_DEBUG_PARSE")
	d.Match = boolEnv("SX_DEBUG_MATCH")
	d.Compile = boolEnv("SX_DEBUG_COMPILE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Token() bool {
	return d.Token
}
func Parse() bool {
	return d.Parse
}
func Match() bool {
	return d.Match
}
func Compile() bool {
	return d.Compile
}
