package dto

import "time"

type UploadResponse struct {
	Message  string `json:"message"`
	ID       string `json:"id"`
	Filename string `json:"filename"`
}

type RecordInfo struct {
	ID            string    `json:"id"`
	Filename      string    `json:"filename"`
	UploadTime    time.Time `json:"uploadTime"`
	ExtractedText string    `json:"extractedText"`
	Keywords      string    `json:"keywords"`
	Solution      string    `json:"solution"`
}

type SolveResponse struct {
	Solution string `json:"solution"`
}

type ClearRecordsResponse struct {
	Count   int    `json:"count"`
	Message string `json:"message"`
}
