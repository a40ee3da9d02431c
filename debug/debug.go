package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Tokens bool
	Build  bool
	LSP    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokens = boolEnv("VMARK_DEBUG_TOKENS")
	d.Build = boolEnv("VMARK_DEBUG_BUILD")
	d.LSP = boolEnv("VMARK_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokens() bool {
	return d.Tokens
}
func Build() bool {
	return d.Build
}
func LSP() bool {
	return d.LSP
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
