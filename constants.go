package main

import "time"

const (
	kiloVersion = "0.1.0"

	tabStop        = 8
	quitTimes      = 3
	statusMsgFade  = 5 * time.Second
	promptBufStart = 32
)
