package models

import "time"

// PreprocessingLog records the cleaning run applied to a dataset and
// where the processed copy lives. One log per dataset; reprocessing
// overwrites it.
// Collection: preprocessing_logs
type PreprocessingLog struct {
	ID                   string    `bson:"_id" json:"id"`
	DatasetID            string    `bson:"dataset_id" json:"-"`
	CleaningStepsApplied []string  `bson:"cleaning_steps_applied" json:"cleaning_steps_applied"`
	RowsRemoved          int       `bson:"rows_removed" json:"rows_removed"`
	RowsAfter            int       `bson:"rows_after" json:"rows_after"`
	ProcessedFile        string    `bson:"processed_file" json:"-"`
	ProcessedAt          time.Time `bson:"processed_at" json:"processed_at"`
}
