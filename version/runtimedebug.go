package version

import (
	"errors"
	"runtime/debug"

	"github.com/sirupsen/logrus"
)

var (
	ErrNoBuildInfo    = errors.New("fetching build info failed")
	ErrEmptyBuildInfo = errors.New("build information is empty")
)

// BuildInfo returns the build information
func BuildInfo() (*debug.BuildInfo, error) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return nil, ErrNoBuildInfo
	}

	if bi == nil {
		return nil, ErrEmptyBuildInfo
	}

	return bi, nil
}

// Fields describes the running binary for structured logs: main module, its version,
// the Go version and the VCS revision when the binary was built from a checkout.
func Fields() logrus.Fields {
	bi, err := BuildInfo()
	if err != nil {
		return logrus.Fields{"build_info": err.Error()}
	}

	fields := logrus.Fields{
		"module":     bi.Main.Path,
		"version":    bi.Main.Version,
		"go_version": bi.GoVersion,
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			fields["revision"] = s.Value
		case "vcs.modified":
			fields["modified"] = s.Value
		}
	}

	return fields
}
