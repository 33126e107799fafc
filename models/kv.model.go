package models

import "gorm.io/datatypes"

// KVEntry is the single persisted table: one row per namespaced key,
// the value holding the whole JSON-encoded collection
type KVEntry struct {
	Key   string         `json:"key" gorm:"primaryKey;column:key"`
	Value datatypes.JSON `json:"value"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}
