package constants

// Steps of a bucket round trip, in the order the verifier runs them.
const (
	StepCreateClient    = "CreateClient"
	StepCreateProbeFile = "CreateProbeFile"
	StepUpload          = "Upload"
	StepDeleteProbeFile = "DeleteProbeFile"
	StepDownload        = "Download"
	StepDeleteDownload  = "DeleteDownload"
)

// RoundTripSteps lists every step in execution order.
var RoundTripSteps = []string{
	StepCreateClient,
	StepCreateProbeFile,
	StepUpload,
	StepDeleteProbeFile,
	StepDownload,
	StepDeleteDownload,
}

// StepOrder returns the 1-based position of step within a round trip,
// or zero if step is not a round trip step.
func StepOrder(step string) int {
	for i, s := range RoundTripSteps {
		if s == step {
			return i + 1
		}
	}
	return 0
}
