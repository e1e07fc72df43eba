// internal/resetflow/flow_test.go
package resetflow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "jobportal-gateway/internal/common/errors"
	"jobportal-gateway/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

// fakePasswordClient records calls so tests can assert whether the flow
// reached the network at all.
type fakePasswordClient struct {
	forgotCalls int
	resetCalls  int
	forgotErr   error
	resetErr    error

	lastEmail string
	lastOTP   string
}

func (f *fakePasswordClient) ForgotPassword(_ context.Context, email string, _ models.Role) error {
	f.forgotCalls++
	f.lastEmail = email
	return f.forgotErr
}

func (f *fakePasswordClient) ResetPassword(_ context.Context, email, otp, _ string) error {
	f.resetCalls++
	f.lastEmail = email
	f.lastOTP = otp
	return f.resetErr
}

func advanceToResetStep(t *testing.T, client *fakePasswordClient) *Flow {
	t.Helper()
	flow := New()
	require.NoError(t, flow.RequestOTP(context.Background(), client, "user@example.com", models.RoleUser))
	require.Equal(t, StepResetWithOTP, flow.Step())
	return flow
}

// ==========================
// Core Functionality Tests
// ==========================

func TestNew_StartsAtRequestStep(t *testing.T) {
	flow := New()

	assert.Equal(t, StepRequestOTP, flow.Step())
	assert.Empty(t, flow.Email())
}

func TestRequestOTP_AdvancesOnSuccess(t *testing.T) {
	client := &fakePasswordClient{}
	flow := New()

	err := flow.RequestOTP(context.Background(), client, "user@example.com", models.RoleUser)

	require.NoError(t, err)
	assert.Equal(t, StepResetWithOTP, flow.Step())
	assert.Equal(t, "user@example.com", flow.Email())
	assert.Equal(t, models.RoleUser, flow.Role())
	assert.Equal(t, 1, client.forgotCalls)
}

func TestRequestOTP_Validation(t *testing.T) {
	tests := []struct {
		name  string
		email string
		role  models.Role
	}{
		{"empty email", "", models.RoleUser},
		{"unknown role", "user@example.com", models.Role("admin")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakePasswordClient{}
			flow := New()

			err := flow.RequestOTP(context.Background(), client, tt.email, tt.role)

			require.Error(t, err)
			assert.Equal(t, StepRequestOTP, flow.Step())
			assert.Zero(t, client.forgotCalls, "validation failures must not reach the client")
		})
	}
}

func TestRequestOTP_StaysPutOnUpstreamFailure(t *testing.T) {
	client := &fakePasswordClient{forgotErr: apperrors.NewUpstreamRejectedError("no such account")}
	flow := New()

	err := flow.RequestOTP(context.Background(), client, "user@example.com", models.RoleUser)

	require.Error(t, err)
	assert.Equal(t, StepRequestOTP, flow.Step())
	assert.Empty(t, flow.Email())
}

func TestReset_PasswordMismatchBlocksBeforeNetwork(t *testing.T) {
	client := &fakePasswordClient{}
	flow := advanceToResetStep(t, client)

	err := flow.Reset(context.Background(), client, "123456", "newpass", "different")

	require.Error(t, err)
	stdErr, ok := err.(*apperrors.StandardError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodePasswordMismatch, stdErr.Code)
	assert.Zero(t, client.resetCalls, "mismatch must block before any network call")
	assert.Equal(t, StepResetWithOTP, flow.Step())
}

func TestReset_SuccessTerminatesFlow(t *testing.T) {
	client := &fakePasswordClient{}
	flow := advanceToResetStep(t, client)

	err := flow.Reset(context.Background(), client, "123456", "newpass", "newpass")

	require.NoError(t, err)
	assert.Equal(t, StepDone, flow.Step())
	assert.Empty(t, flow.Email(), "terminal state carries no residual fields")
	assert.Equal(t, "user@example.com", client.lastEmail)
	assert.Equal(t, "123456", client.lastOTP)
}

func TestReset_WrongOTPStaysOnResetStep(t *testing.T) {
	client := &fakePasswordClient{}
	flow := advanceToResetStep(t, client)
	client.resetErr = apperrors.NewUpstreamRejectedError("invalid OTP")

	err := flow.Reset(context.Background(), client, "000000", "newpass", "newpass")

	require.Error(t, err)
	assert.Equal(t, StepResetWithOTP, flow.Step())
	assert.Equal(t, "user@example.com", flow.Email(), "email survives a failed attempt")
}

func TestReset_BeforeRequestingOTP(t *testing.T) {
	client := &fakePasswordClient{}
	flow := New()

	err := flow.Reset(context.Background(), client, "123456", "a", "a")

	require.Error(t, err)
	assert.Zero(t, client.resetCalls)
}

func TestBack_PreservesEmailAndRole(t *testing.T) {
	client := &fakePasswordClient{}
	flow := advanceToResetStep(t, client)

	flow.Back()

	assert.Equal(t, StepRequestOTP, flow.Step())
	assert.Equal(t, "user@example.com", flow.Email())
	assert.Equal(t, models.RoleUser, flow.Role())
}

func TestCancel_ClearsEverything(t *testing.T) {
	client := &fakePasswordClient{}
	flow := advanceToResetStep(t, client)

	flow.Cancel()

	assert.Equal(t, StepRequestOTP, flow.Step())
	assert.Empty(t, flow.Email())
	assert.Empty(t, string(flow.Role()))
}
