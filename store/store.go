package store

import "gorm.io/gorm"

// Store wires the key-value backend to every component
type Store struct {
	KV          *KV
	Ledger      *ProgressLedger
	Enrollments *EnrollmentRegistry
	Aggregator  *Aggregator
	Session     *SessionDirectory
	Catalog     *Catalog
	Feeds       *Feeds
}

// Default is the global store instance, set by Init
var Default *Store

// New builds a store on top of the given database handle
func New(db *gorm.DB) *Store {
	kv := NewKV(db)
	ledger := NewProgressLedger(kv)
	registry := NewEnrollmentRegistry(kv)

	return &Store{
		KV:          kv,
		Ledger:      ledger,
		Enrollments: registry,
		Aggregator:  NewAggregator(kv, ledger, registry),
		Session:     NewSessionDirectory(kv),
		Catalog:     NewCatalog(kv),
		Feeds:       NewFeeds(kv),
	}
}

// Init sets up the global store instance
func Init(db *gorm.DB) {
	Default = New(db)
}
