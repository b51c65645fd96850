package model

import "time"

type SyncLogEntry struct {
	EntryID        uint64    `gorm:"column:entry_id;primaryKey;autoIncrement"`
	Timestamp      time.Time `gorm:"column:timestamp;not null"`
	SessionID      string    `gorm:"column:session_id;type:text;size:50;not null;index"`
	SourceFunction string    `gorm:"column:source_function;type:text;size:50;not null"`
	Level          string    `gorm:"column:level;type:text;size:10;not null"`
	Message        string    `gorm:"column:message;type:text;size:500;not null"`
	InterventionID *int64    `gorm:"column:intervention_id;index"`
}

func (SyncLogEntry) TableName() string {
	return "sync_log"
}
