package logginghelper

import (
	log "github.com/sirupsen/logrus"
)

func LogBadRequest(endpoint string, err error) {
	log.WithFields(log.Fields{
		"endpoint": endpoint,
		"error":    err,
	}).Warn("Rejected dashboard request")
}

func LogRequestFailed(endpoint string, sid, did int, err error) {
	log.WithFields(log.Fields{
		"endpoint": endpoint,
		"sid":      sid,
		"did":      did,
		"error":    err,
	}).Error("Dashboard request failed")
}

func LogServed(endpoint string, sid, did int) {
	log.WithFields(log.Fields{
		"endpoint": endpoint,
		"sid":      sid,
		"did":      did,
	}).Debug("Dashboard request served")
}
