package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newBufferedLogger(buf *bytes.Buffer) Logger {
	base := logrus.New()
	base.SetOutput(buf)
	base.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	return &logger{entry: logrus.NewEntry(base)}
}

func TestWithCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestWithFields_DevelopmentFiltersNoise(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	var buf bytes.Buffer
	newBufferedLogger(&buf).WithFields(Fields{
		"path":            "/metrics",
		"upstream_status": 502,
		"remote_addr":     "10.0.0.1",
	}).Info("done")

	out := buf.String()
	assert.Contains(t, out, "path=/metrics")
	assert.Contains(t, out, "upstream_status=502")
	assert.NotContains(t, out, "remote_addr")
}

func TestWithFields_ProductionKeepsEverything(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	var buf bytes.Buffer
	newBufferedLogger(&buf).WithField("remote_addr", "10.0.0.1").Info("done")

	assert.Contains(t, buf.String(), "remote_addr=10.0.0.1")
}
