package build

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo_Normalize(t *testing.T) {
	n := Info{}.Normalize()
	assert.Equal(t, "dev", n.Version)
	assert.Equal(t, "none", n.Commit)
	assert.Equal(t, "unknown", n.BuildDate)
	assert.Equal(t, runtime.Version(), n.GoVersion)

	set := Info{Version: "v1.2.0", Commit: "abc123", BuildDate: "2026-01-02", GoVersion: "go1.25.3"}
	assert.Equal(t, set, set.Normalize())
}

func TestInfo_String(t *testing.T) {
	info := Info{Version: "v1.2.0", Commit: "abc123", BuildDate: "2026-01-02", GoVersion: "go1.25.3"}
	assert.Equal(t, "appstate v1.2.0 (abc123, built 2026-01-02, go1.25.3)", info.String())
}
