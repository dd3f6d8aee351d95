package version_test

import (
	"testing"

	"github.com/anoideaopen/invoker/version"
	"github.com/stretchr/testify/assert"
)

func TestBuildInfo(t *testing.T) {
	bi, err := version.BuildInfo()
	assert.NoError(t, err)
	assert.NotNil(t, bi)
}

func TestFields(t *testing.T) {
	fields := version.Fields()
	assert.Contains(t, fields, "go_version")
	assert.Contains(t, fields, "module")
}

func TestInstanceName(t *testing.T) {
	t.Setenv(version.EnvInstanceName, "invoker-0")
	assert.Equal(t, "invoker-0", version.InstanceName())

	t.Setenv(version.EnvInstanceName, "")
	assert.NotEmpty(t, version.InstanceName())
}
