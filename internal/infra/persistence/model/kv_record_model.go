package model

import "time"

// KVRecordTable is the table holding every namespaced record.
const KVRecordTable = "kv_records"

// KVRecordModel mirrors one row of kv_records. Value holds the JSON document verbatim.
type KVRecordModel struct {
	Namespace string `gorm:"type:varchar(64);primaryKey"`
	RecordID  string `gorm:"column:record_id;type:varchar(320);primaryKey"`
	Value     []byte `gorm:"type:bytea;not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (KVRecordModel) TableName() string {
	return KVRecordTable
}
