package domain

import "time"

// DatasetStatus descreve o estado da última carga do dataset
type DatasetStatus struct {
	Loaded          bool       `json:"loaded"`
	SnapshotID      string     `json:"snapshot_id,omitempty"`
	Campaigns       int        `json:"campaigns"`
	LastFetchAt     *time.Time `json:"last_fetch_at,omitempty"`
	LastSuccessAt   *time.Time `json:"last_success_at,omitempty"`
	LastError       string     `json:"last_error,omitempty"`
	RefreshInFlight bool       `json:"refresh_in_flight"`
	Source          string     `json:"source"`
}
