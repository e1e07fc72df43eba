// Package resetflow implements the two-step forgot-password dialog as a small
// sequential state machine: request an OTP for an email+role, then redeem the
// OTP together with a new password.
package resetflow

import (
	"context"

	apperrors "jobportal-gateway/internal/common/errors"
	"jobportal-gateway/internal/models"
)

// Step is the dialog's current position.
type Step string

const (
	StepRequestOTP   Step = "request-otp"
	StepResetWithOTP Step = "reset-with-otp"
	StepDone         Step = "done"
)

// PasswordClient is the slice of the upstream client the flow depends on.
type PasswordClient interface {
	ForgotPassword(ctx context.Context, email string, role models.Role) error
	ResetPassword(ctx context.Context, email, otp, newPassword string) error
}

// Flow holds the state of one forgot-password dialog. Not safe for concurrent
// use; each browser session owns at most one flow.
type Flow struct {
	step  Step
	email string
	role  models.Role
}

func New() *Flow {
	return &Flow{step: StepRequestOTP}
}

func (f *Flow) Step() Step { return f.step }

// Email returns the address entered in the first step, preserved across Back.
func (f *Flow) Email() string { return f.email }

func (f *Flow) Role() models.Role { return f.role }

// RequestOTP submits the first step. On success the flow advances to the
// reset step; on failure it stays put and the error is surfaced.
func (f *Flow) RequestOTP(ctx context.Context, client PasswordClient, email string, role models.Role) error {
	if f.step != StepRequestOTP {
		return apperrors.NewValidationFailedError("OTP already requested")
	}
	if email == "" {
		return apperrors.NewValidationFailedError("email is required")
	}
	if !role.Valid() {
		return apperrors.NewValidationFailedError("unknown role: " + string(role))
	}

	if err := client.ForgotPassword(ctx, email, role); err != nil {
		return err
	}

	f.email = email
	f.role = role
	f.step = StepResetWithOTP
	return nil
}

// Back returns from the reset step to the request step, preserving the
// entered email and role.
func (f *Flow) Back() {
	if f.step == StepResetWithOTP {
		f.step = StepRequestOTP
	}
}

// Reset submits the second step. The password/confirmation equality check
// runs before any network call; a mismatch blocks submission entirely.
// A successful reset terminates the flow and clears all fields.
func (f *Flow) Reset(ctx context.Context, client PasswordClient, otp, newPassword, confirmPassword string) error {
	if f.step != StepResetWithOTP {
		return apperrors.NewValidationFailedError("no OTP requested yet")
	}
	if newPassword != confirmPassword {
		return apperrors.NewPasswordMismatchError()
	}
	if otp == "" || newPassword == "" {
		return apperrors.NewValidationFailedError("otp and new password are required")
	}

	if err := client.ResetPassword(ctx, f.email, otp, newPassword); err != nil {
		return err
	}

	f.clear()
	f.step = StepDone
	return nil
}

// Cancel closes the dialog from any state: back to the first step with every
// field cleared. No partial state survives.
func (f *Flow) Cancel() {
	f.clear()
	f.step = StepRequestOTP
}

func (f *Flow) clear() {
	f.email = ""
	f.role = ""
}
