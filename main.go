package main

import (
	"fmt"
	"runtime"

	"github.com/v-byte-cpu/wif/command"
)

// set by -ldflags at release time
var (
	version = "dev"
	commit  = ""
)

func main() {
	command.Main(buildVersion(version, commit, runtime.GOOS+"/"+runtime.GOARCH))
}

func buildVersion(version, commit, platform string) string {
	if len(commit) > 7 {
		commit = commit[:7]
	}
	if commit == "" {
		return fmt.Sprintf("%s %s", version, platform)
	}
	return fmt.Sprintf("%s (%s) %s", version, commit, platform)
}
