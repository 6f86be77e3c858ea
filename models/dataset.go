package models

import "time"

// Dataset is an uploaded CSV file owned by a user. At most one dataset
// per user is active at a time; the active one is what processing,
// training and analytics operate on.
// Collection: datasets
type Dataset struct {
	ID               string    `bson:"_id" json:"id"`
	UserID           string    `bson:"user_id" json:"-"`
	FilePath         string    `bson:"file_path" json:"-"`
	OriginalFilename string    `bson:"original_filename" json:"original_filename"`
	RowCount         int       `bson:"row_count" json:"row_count"`
	ColumnCount      int       `bson:"column_count" json:"column_count"`
	Columns          []string  `bson:"columns" json:"columns"`
	IsActive         bool      `bson:"is_active" json:"is_active"`
	UploadedAt       time.Time `bson:"uploaded_at" json:"uploaded_at"`
}
