package deploy

import "errors"

var (
	// ErrDeploymentAborted means the operator declined the safety gate.
	// Intentional stop, not a malfunction, but still a non-zero exit.
	ErrDeploymentAborted = errors.New("deployment aborted")

	// ErrBeforeDeployHook wraps a failing before_deploy hook. Nothing was
	// pushed; the whole deploy is safe to retry.
	ErrBeforeDeployHook = errors.New("before_deploy hook failed")

	// ErrPostDeployHook wraps a failing after_deploy hook. The push has
	// already happened, so a retry must not repeat it; this is surfaced
	// distinctly from every pre-push failure.
	ErrPostDeployHook = errors.New("after_deploy hook failed (code was pushed)")
)
