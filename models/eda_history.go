package models

import "time"

// EDAHistory is one generated profiling report for a dataset. Reports
// accumulate; the newest one is what clients usually want.
// Collection: eda_histories
type EDAHistory struct {
	ID          string    `bson:"_id" json:"id"`
	DatasetID   string    `bson:"dataset_id" json:"-"`
	ReportJSON  any       `bson:"report_json" json:"report_json"`
	GeneratedAt time.Time `bson:"generated_at" json:"generated_at"`
}
