package api

import (
	"github.com/dappsmith/conductor/ent"
	"github.com/dappsmith/conductor/pkg/generator"
	"github.com/dappsmith/conductor/pkg/queue"
)

// UpdateProjectRequest is the body of PATCH /projects/:id.
type UpdateProjectRequest struct {
	Name    string `json:"name,omitempty"`
	DappURL string `json:"dapp_url,omitempty"`
}

// GenerateSpecRequest is the body of POST /recordings/:id/generate.
// Answers carry resolutions from an earlier generation's questions.
type GenerateSpecRequest struct {
	Answers []generator.Answer `json:"answers,omitempty"`
}

// UpdateSpecCodeRequest is the body of PUT /specs/:id/code.
type UpdateSpecCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// SetSpecStatusRequest is the body of POST /specs/:id/status.
type SetSpecStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// AnswerClarificationRequest is the body of POST /clarifications/:id/answer.
type AnswerClarificationRequest struct {
	Answer string `json:"answer" binding:"required"`
}

// CancelResponse acknowledges a cancel request for a run or suite.
type CancelResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// GeneratedSpecResponse is returned by POST /recordings/:id/generate.
type GeneratedSpecResponse struct {
	Spec      *ent.Spec `json:"spec"`
	Summary   string    `json:"summary"`
	Steps     []string  `json:"steps"`
	Questions []string  `json:"questions"`
}

// SystemInfoResponse is returned by GET /system/info.
type SystemInfoResponse struct {
	Version          string            `json:"version"`
	UptimeSeconds    int64             `json:"uptime_seconds"`
	Pool             *queue.PoolHealth `json:"pool,omitempty"`
	StreamPorts      *PortOccupancy    `json:"stream_ports,omitempty"`
	ActiveWebsockets int               `json:"active_websockets"`
}

// PortOccupancy reports the streaming port pool.
type PortOccupancy struct {
	Held  int `json:"held"`
	Total int `json:"total"`
}
