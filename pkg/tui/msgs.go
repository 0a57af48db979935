package tui

import "time"

type EventLogEntry struct {
	Seq  uint64
	At   time.Time
	Text string
}

type EventLogAppendMsg struct {
	Entry EventLogEntry
}
