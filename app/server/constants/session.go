package constants

import "time"

const (
	SessionCookieName = "ckd_session"
	SessionKey        = "ckd:session:%s"
)

const SessionDuration = 24 * time.Hour
