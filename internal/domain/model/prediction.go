package model

// DetectedObject is one label produced by the detection worker.
// Class is mandatory; confidence and bounding box may be absent.
type DetectedObject struct {
	Class      string    `json:"class"`
	Confidence float64   `json:"confidence,omitempty"`
	BBox       []float64 `json:"bbox,omitempty"`
}

// PredictionResult is the stored outcome of a completed detection job,
// written by the worker and read-only from this service.
type PredictionResult struct {
	PredictionID     string           `json:"prediction_id"`
	ChatID           int64            `json:"chat_id"`
	Labels           []DetectedObject `json:"labels"`
	PredictedImgPath string           `json:"predicted_img_path,omitempty"`
}
