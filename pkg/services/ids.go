package services

import (
	"strings"

	"github.com/google/uuid"
)

// Entity id prefixes. Jobs are the exception: the queue assigns ULIDs
// so that claim order follows id order.
const (
	prefixProject       = "proj"
	prefixRecording     = "rec"
	prefixSpec          = "spec"
	prefixRun           = "run"
	prefixSuiteRun      = "suite"
	prefixArtifact      = "art"
	prefixClarification = "clr"
)

func newID(prefix string) string {
	return prefix + "_" + strings.ReplaceAll(uuid.New().String(), "-", "")
}
