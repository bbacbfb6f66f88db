package helpers

// Stage constants define the possible deployment/runtime environments.
const (
	StageProd  = "prod"
	StageDev   = "dev"
	StageLocal = "local"
)

// IsValidStage checks if the provided stage string is one of the defined valid stages.
func IsValidStage(stage string) bool {
	switch stage {
	case StageProd, StageDev, StageLocal:
		return true
	default:
		return false
	}
}

// ShortHash truncates a hex digest for log lines; full digests go in the
// audit rows, not the logs.
func ShortHash(digest string) string {
	if len(digest) <= 12 {
		return digest
	}
	return digest[:12] + "..."
}
