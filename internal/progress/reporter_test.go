package progress

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReporterInCI(t *testing.T) {
	t.Setenv("CI", "true")
	log, _ := test.NewNullLogger()

	_, ok := NewReporter(log).(*LogReporter)
	assert.True(t, ok)
}

func TestLogReporter(t *testing.T) {
	log, hook := test.NewNullLogger()
	r := &LogReporter{Log: log}

	r.Start(2)
	r.Update(1, "jadn")
	r.Update(2, "jadn.codec")
	r.Finish()

	entries := hook.AllEntries()
	require.Len(t, entries, 4)
	assert.Equal(t, 2, entries[0].Data["packages"])
	assert.Equal(t, "jadn.codec", entries[2].Message)
	assert.Equal(t, 2, entries[2].Data["step"])
	assert.Equal(t, logrus.InfoLevel, entries[3].Level)
}

func TestNop(t *testing.T) {
	var r Reporter = Nop{}
	r.Start(3)
	r.Update(1, "x")
	r.Finish()
}
