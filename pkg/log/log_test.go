package log

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure(t *testing.T) {
	require.NoError(t, Configure("warn"))
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())

	assert.Error(t, Configure("verbose"))

	SetupTestLogger()
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
}

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestDevelopmentFiltersFields(t *testing.T) {
	t.Setenv("APP_ENV", "dev")

	var buf bytes.Buffer
	logrus.SetOutput(&buf)
	t.Cleanup(func() { logrus.SetOutput(os.Stderr) })
	SetupTestLogger()

	ctx, id := WithCorrelationID(context.Background())
	ForContext(ctx).WithFields(Fields{"snapshot_id": "abc", "internal": "x"}).Info("ok")

	out := buf.String()
	assert.Contains(t, out, id)
	assert.Contains(t, out, "snapshot_id=abc")
	assert.NotContains(t, out, "internal=x")
}
