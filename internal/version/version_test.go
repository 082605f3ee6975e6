package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo(t *testing.T) {
	v, commit, date := Info()
	assert.Equal(t, Version, v)
	assert.Equal(t, GitCommit, commit)
	assert.Equal(t, BuildDate, date)
	assert.NotEmpty(t, v)
}
