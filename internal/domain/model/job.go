package model

// PendingJob is the unit published to the job queue for the external
// detection worker. The JSON field names are the queue wire contract.
type PendingJob struct {
	PhotoID  string `json:"photo_id"`
	FilePath string `json:"file_path"`
	ChatID   int64  `json:"chat_id"`
}
