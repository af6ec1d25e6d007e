//go:build small

package shared_test

import (
	"testing"

	"github.com/aqacourses/selenium-waits/shared"
	mapset "github.com/deckarep/golang-set"
	"github.com/stretchr/testify/assert"
)

func TestToStringSlice_nil(t *testing.T) {
	assert.Nil(t, shared.ToStringSlice(nil))
}

func TestSortedStrings(t *testing.T) {
	set := shared.NewStringSet("timeout", "no such element", "timeout")
	assert.Equal(t, []string{"no such element", "timeout"}, shared.SortedStrings(set))
	assert.Equal(t, []string{}, shared.SortedStrings(mapset.NewSet()))
}

func TestIsBrowserName(t *testing.T) {
	assert.True(t, shared.IsBrowserName("chrome"))
	assert.True(t, shared.IsBrowserName("firefox"))
	assert.False(t, shared.IsBrowserName("safari"))
	assert.False(t, shared.IsBrowserName(""))
	assert.Equal(t, []string{"chrome", "firefox"}, shared.GetBrowserNames())
}
