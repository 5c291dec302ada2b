package verification

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/APTrust/bucket-tester/constants"
	"github.com/APTrust/bucket-tester/models/common"
	"github.com/APTrust/bucket-tester/models/service"
	"github.com/APTrust/bucket-tester/network"
	"github.com/google/uuid"
	"github.com/op/go-logging"
)

// Verifier checks that we can write to and read from a bucket. It
// uploads a probe file, removes the local copy, downloads the object
// again, and removes the download.
//
// Every step after client construction runs even if an earlier step
// failed. Failures are logged and recorded in the RoundTripResult,
// but they never stop the run. The uploaded object is left in the
// bucket.
type Verifier struct {
	Config *common.Config
	Logger *logging.Logger

	// NewClient builds the storage client. Defaults to
	// network.NewObjectStore.
	NewClient network.ClientFactory

	// Now supplies the time used to name and stamp the probe file.
	Now func() time.Time

	// Remove deletes local files. Defaults to os.Remove.
	Remove func(path string) error

	// RunID identifies this round trip in the logs.
	RunID string
}

// NewVerifier creates a new Verifier for the bucket and credentials
// in config.
func NewVerifier(config *common.Config, logger *logging.Logger) *Verifier {
	return &Verifier{
		Config:    config,
		Logger:    logger,
		NewClient: network.NewObjectStore,
		Now:       time.Now,
		Remove:    os.Remove,
		RunID:     uuid.NewString(),
	}
}

// Run performs the round trip. The returned result describes what
// happened at each step. It is for reporting only.
func (v *Verifier) Run(ctx context.Context) *service.RoundTripResult {
	result := service.NewRoundTripResult(v.RunID, v.Config.Bucket)
	result.Start()
	defer result.Finish()
	v.Logger.Infof("Run %s: testing bucket %s (%s)", v.RunID, v.Config.Bucket, v.Config.String())

	var store network.ObjectStore
	clientStep := v.runStep(result, constants.StepCreateClient, v.Config.Bucket, func() *common.Error {
		var err error
		store, err = v.NewClient(v.Config, v.Logger)
		if err != nil {
			return common.NewError("An error occurred while interacting with the specified S3 bucket.", err, true)
		}
		return nil
	})
	if !clientStep.Succeeded() {
		v.logSummary(result)
		return result
	}

	probe := NewProbeFile(v.Config.WorkingDir, v.Now())
	result.Key = probe.Name

	v.runStep(result, constants.StepCreateProbeFile, probe.Path(), func() *common.Error {
		return v.createProbeFile(probe)
	})
	v.runStep(result, constants.StepUpload, probe.Name, func() *common.Error {
		return v.upload(ctx, store, probe)
	})
	v.runStep(result, constants.StepDeleteProbeFile, probe.Path(), func() *common.Error {
		return v.deleteFile(probe.Path())
	})
	v.runStep(result, constants.StepDownload, probe.Name, func() *common.Error {
		return v.download(ctx, store, probe)
	})
	v.runStep(result, constants.StepDeleteDownload, probe.DownloadPath(), func() *common.Error {
		return v.deleteFile(probe.DownloadPath())
	})

	v.logSummary(result)
	return result
}

// runStep runs fn as the named step and records the outcome. A failed
// step is logged here and nowhere else.
func (v *Verifier) runStep(result *service.RoundTripResult, step, identifier string, fn func() *common.Error) *service.StepResult {
	stepResult := service.NewStepResult(step)
	stepResult.Start()
	var procErr *service.ProcessingError
	if err := fn(); err != nil {
		procErr = service.NewProcessingError(v.RunID, step, identifier, err)
		v.Logger.Errorf("%s: %s", step, err.Error())
		v.Logger.Debug(procErr.Error())
		v.Logger.Debug(err.Detail())
		// Storage errors carry the S3 status and error code.
		var detailed common.DetailedError
		if cause := err.Unwrap(); cause != nil && errors.As(cause, &detailed) {
			v.Logger.Debug(detailed.Detail())
		}
	} else {
		v.Logger.Infof("%s: ok (%s)", step, identifier)
	}
	stepResult.Finish(procErr)
	result.AddStep(stepResult)
	return stepResult
}

func (v *Verifier) createProbeFile(probe *ProbeFile) *common.Error {
	if err := probe.Write(); err != nil {
		return common.NewError("The test file could not be created.", err, false)
	}
	return nil
}

func (v *Verifier) upload(ctx context.Context, store network.ObjectStore, probe *ProbeFile) *common.Error {
	if err := store.PutObject(ctx, v.Config.Bucket, probe.Name, probe.Path()); err != nil {
		return common.NewError("The test file could not be uploaded to the bucket.", err, false)
	}
	return nil
}

func (v *Verifier) download(ctx context.Context, store network.ObjectStore, probe *ProbeFile) *common.Error {
	data, err := store.GetObject(ctx, v.Config.Bucket, probe.Name)
	if err != nil {
		return common.NewError("The test file could not be downloaded from the S3 bucket.", err, false)
	}
	file, err := os.Create(probe.DownloadPath())
	if err != nil {
		return common.NewError("The downloaded file could not be created.", err, false)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			v.Logger.Errorf("%s: The file output stream could not be closed. Error: %s",
				constants.StepDownload, closeErr.Error())
		}
	}()
	if _, err = file.Write(data); err != nil {
		return common.NewError("The downloaded file could not be written.", err, false)
	}
	return nil
}

func (v *Verifier) deleteFile(path string) *common.Error {
	if err := v.Remove(path); err != nil {
		return common.NewError("The test file could not be deleted.", err, false)
	}
	return nil
}

func (v *Verifier) logSummary(result *service.RoundTripResult) {
	if result.Succeeded() {
		v.Logger.Infof("Run %s: bucket %s passed the round trip test in %s",
			v.RunID, result.Bucket, result.RunTime())
		return
	}
	if result.Aborted() {
		v.Logger.Errorf("Run %s: round trip for bucket %s was aborted",
			v.RunID, result.Bucket)
		return
	}
	v.Logger.Warningf("Run %s: round trip for bucket %s finished with %d error(s). First error at step %s",
		v.RunID, result.Bucket, len(result.Errors()), result.FirstError().Step)
}
