package services

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// TrackTime logs at debug level how long funcName ran. Use it with defer.
func TrackTime(funcName string, start time.Time) {
	log.WithField("elapsed_ms", time.Since(start).Milliseconds()).Debugf("%s finished", funcName)
}
