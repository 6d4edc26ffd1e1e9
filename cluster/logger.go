package cluster

import (
	"io"

	"github.com/sirupsen/logrus"
)

func resolveLogger(l logrus.FieldLogger) logrus.FieldLogger {
	if l != nil {
		return l
	}
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	return discard
}
