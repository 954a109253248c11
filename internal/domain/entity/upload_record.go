package entity

import "time"

// UploadRecord is one uploaded question image together with everything the
// pipeline has derived from it so far. ExtractedText and Keywords are filled
// in by the upload pipeline right after creation and never rewritten;
// Solution is filled in on demand and overwritten by each solve call.
type UploadRecord struct {
	ID             string    `db:"id" json:"id"`
	StoredFileName string    `db:"filename" json:"filename"`
	UploadTime     time.Time `db:"uploadTime" json:"uploadTime"`
	ExtractedText  string    `db:"extractedText" json:"extractedText"`
	Keywords       string    `db:"keywords" json:"keywords"`
	Solution       string    `db:"solution" json:"solution"`
}
