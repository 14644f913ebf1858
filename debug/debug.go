package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Transform bool
	Match     bool
	Patch     bool
	Rules     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Transform = boolEnv("DOCTREE_DEBUG_TRANSFORM")
	d.Match = boolEnv("DOCTREE_DEBUG_MATCH")
	d.Patch = boolEnv("DOCTREE_DEBUG_PATCH")
	d.Rules = boolEnv("DOCTREE_DEBUG_RULES")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Transform() bool {
	return d.Transform
}
func Match() bool {
	return d.Match
}
func Patch() bool {
	return d.Patch
}
func Rules() bool {
	return d.Rules
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
