package models

import "github.com/dappsmith/conductor/ent"

// CreateProjectRequest contains fields for creating a project.
// SeedPhrase is optional; when empty a new identity is generated.
type CreateProjectRequest struct {
	Name       string `json:"name"`
	DappURL    string `json:"dapp_url"`
	SeedPhrase string `json:"seed_phrase,omitempty"`
}

// ProjectCreatedResponse is returned exactly once, at creation: the
// only time the seed phrase leaves the service in plaintext.
type ProjectCreatedResponse struct {
	*ent.Project
	SeedPhrase string `json:"seed_phrase"`
}

// CreateRecordingRequest contains fields for creating a recording.
type CreateRecordingRequest struct {
	ProjectID     string                   `json:"project_id"`
	Name          string                   `json:"name"`
	RecordingType string                   `json:"recording_type"`
	URL           string                   `json:"url,omitempty"`
	Actions       []map[string]interface{} `json:"actions"`
}

// CreateSpecRequest contains fields for creating a spec.
type CreateSpecRequest struct {
	RecordingID    string                 `json:"recording_id"`
	Code           string                 `json:"code"`
	Status         string                 `json:"status,omitempty"`
	Version        int                    `json:"version,omitempty"`
	Attempt        int                    `json:"attempt,omitempty"`
	MaxAttempts    int                    `json:"max_attempts,omitempty"`
	ParentSpecID   string                 `json:"parent_spec_id,omitempty"`
	FailureContext map[string]interface{} `json:"failure_context,omitempty"`
}

// CreateClarificationRequest contains fields for creating a clarification.
type CreateClarificationRequest struct {
	SpecID   string `json:"spec_id"`
	Question string `json:"question"`
}

// CreateArtifactRequest contains fields for recording an artifact row.
// The blob must already exist at StoragePath.
type CreateArtifactRequest struct {
	RunID       string `json:"run_id"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	StoragePath string `json:"storage_path"`
	MimeType    string `json:"mime_type"`
	SizeBytes   int64  `json:"size_bytes,omitempty"`
}
