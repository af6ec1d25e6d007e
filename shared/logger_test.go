//go:build small

package shared_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/aqacourses/selenium-waits/shared"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestGetLogger_missing(t *testing.T) {
	logger := shared.GetLogger(context.Background())
	assert.Equal(t, shared.NewNilLogger(), logger)
}

func TestGetLogger_roundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := shared.NewCLILogger(&buf, false)
	ctx := shared.WithLogger(context.Background(), shared.NewLogrusLogger(l))

	shared.GetLogger(ctx).Infof("opened %s", "http://example.test/")
	shared.GetLogger(ctx).Debugf("hidden")

	assert.Contains(t, buf.String(), "opened http://example.test/")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNewCLILogger_verbose(t *testing.T) {
	var buf bytes.Buffer
	l := shared.NewCLILogger(&buf, true)
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())
	l.Debugf("polling")
	assert.Contains(t, buf.String(), "polling")
}

func TestNewLogrusLogger_nil(t *testing.T) {
	assert.Equal(t, shared.Logger(logrus.StandardLogger()), shared.NewLogrusLogger(nil))
}
