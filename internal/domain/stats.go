package domain

type LocationUtilization struct {
	LocationID   string  `json:"location_id"`
	LocationName string  `json:"location_name"`
	Date         string  `json:"date"`
	Booked       int     `json:"booked"`
	Capacity     int     `json:"capacity"`
	Percent      float64 `json:"percent"`
}

type Throughput struct {
	Currency string  `json:"currency"`
	Count    int     `json:"count"`
	Total    int64   `json:"total"`
	Average  float64 `json:"average"`
}

type DirectoryStats struct {
	ByStatus    map[SessionStatus]int `json:"by_status"`
	Utilization []LocationUtilization `json:"utilization"`
	Throughput  []Throughput          `json:"throughput"`
}

// PendingReview is one entry of the verification review queue.
type PendingReview struct {
	SessionID        string `json:"session_id"`
	ChallengeGesture string `json:"challenge_gesture"`
	ArtifactRef      string `json:"artifact_ref"`
	ArtifactURL      string `json:"artifact_url,omitempty"`
	SecurityLevel    string `json:"security_level"`
	SubmittedAt      string `json:"submitted_at"`
	ExpiresAt        string `json:"expires_at"`
}
