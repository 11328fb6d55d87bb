package imgsz

import (
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	logMu sync.RWMutex
	log   logrus.FieldLogger = logrus.StandardLogger()
)

// SetLogger sets the logger that receives diagnostics, most notably the
// failures ImageSize swallows. A nil logger restores the logrus standard
// logger.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = logrus.StandardLogger()
	}
	logMu.Lock()
	log = l
	logMu.Unlock()
}

func logger() logrus.FieldLogger {
	logMu.RLock()
	defer logMu.RUnlock()
	return log
}
