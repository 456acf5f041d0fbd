// Package buildinfo describes how the binary was built.
package buildinfo

import (
	"sort"
	"strings"
)

// Version of the bases command. It is overridden at link time with
// -ldflags "-X github.com/basesgo/bases/lib/buildinfo.Version=v1.2.3"
var Version = "v0.1.0-DEV"

// Tags contains slice of build tags.
// The `cgo` tag is detected in this package.
var Tags []string

// GetLinkingAndTags tells how the executable was linked and returns
// space separated build tags or the string "none".
func GetLinkingAndTags() (linking, tagString string) {
	linking = "static"
	tagList := []string{}
	for _, tag := range Tags {
		if tag == "cgo" {
			linking = "dynamic"
		} else {
			tagList = append(tagList, tag)
		}
	}
	if len(tagList) > 0 {
		sort.Strings(tagList)
		tagString = strings.Join(tagList, " ")
	} else {
		tagString = "none"
	}
	return
}
