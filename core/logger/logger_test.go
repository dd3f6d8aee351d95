package logger

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestLoggerIsShared(t *testing.T) {
	require.Same(t, Logger(), Logger())
}

func TestConfigure(t *testing.T) {
	l := Logger()
	prevLevel, prevFormatter, prevOut := l.GetLevel(), l.Formatter, l.Out
	t.Cleanup(func() {
		l.SetLevel(prevLevel)
		l.SetFormatter(prevFormatter)
		l.SetOutput(prevOut)
	})

	require.NoError(t, Configure("debug", "json"))
	require.Equal(t, logrus.DebugLevel, l.GetLevel())
	require.IsType(t, &logrus.JSONFormatter{}, l.Formatter)

	var buf bytes.Buffer
	l.SetOutput(&buf)
	l.WithField("function", "sum").Debug("dispatch")
	require.Contains(t, buf.String(), `"function":"sum"`)

	require.NoError(t, Configure("", "text"))
	require.Equal(t, logrus.DebugLevel, l.GetLevel())
	require.IsType(t, &logrus.TextFormatter{}, l.Formatter)

	require.Error(t, Configure("loud", ""))
}
