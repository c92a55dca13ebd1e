// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-ride-docs/internal/adapter"
	"github.com/MKhiriev/go-ride-docs/internal/app"
	"github.com/MKhiriev/go-ride-docs/internal/logger"
	"github.com/MKhiriev/go-ride-docs/internal/mock"
	"github.com/MKhiriev/go-ride-docs/internal/store"
	"github.com/MKhiriev/go-ride-docs/internal/validators"
	"github.com/MKhiriev/go-ride-docs/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSubmissionSvc(t *testing.T, policy validators.CompletenessPolicy) (ClientSubmissionService, *mock.MockDocumentGateway) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gateway := mock.NewMockDocumentGateway(ctrl)
	return NewSubmissionService(gateway, validators.NewCompletenessValidator(policy), logger.Nop()), gateway
}

func TestSubmissionService_Submit_NotReady(t *testing.T) {
	svc, _ := newTestSubmissionSvc(t, validators.CompletenessPolicy{})

	c := completeDocuments()
	c.NationalID = c.NationalID[:1]

	_, err := svc.Submit(context.Background(), "user-1", c)

	require.ErrorIs(t, err, ErrNotSubmitReady)
	var notReady *NotReadyError
	require.True(t, errors.As(err, &notReady))
	require.Len(t, notReady.Reasons, 1)
	assert.Equal(t, validators.IncompleteNationalID, notReady.Reasons[0].Code)
}

func TestSubmissionService_Submit_RequireVehicle(t *testing.T) {
	svc, _ := newTestSubmissionSvc(t, validators.CompletenessPolicy{RequireVehicle: true})

	c := completeDocuments()
	c.Vehicles = nil

	_, err := svc.Submit(context.Background(), "user-1", c)
	assert.ErrorIs(t, err, ErrNotSubmitReady)
}

func TestSubmissionService_Submit_NotSignedIn(t *testing.T) {
	svc, _ := newTestSubmissionSvc(t, validators.CompletenessPolicy{})

	_, err := svc.Submit(context.Background(), "", completeDocuments())
	assert.ErrorIs(t, err, ErrNotSignedIn)
}

func TestSubmissionService_Submit_Update(t *testing.T) {
	svc, gateway := newTestSubmissionSvc(t, validators.CompletenessPolicy{})
	c := completeDocuments()

	want := models.SubmitResult{
		Success:      true,
		Verification: models.VerificationState{Status: models.VerificationPending},
	}
	gateway.EXPECT().UpdateDocuments(gomock.Any(), "user-1", c).Return(want, nil)

	got, err := svc.Submit(context.Background(), "user-1", c)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSubmissionService_Submit_CreatesOnFirstSubmission(t *testing.T) {
	svc, gateway := newTestSubmissionSvc(t, validators.CompletenessPolicy{})
	c := completeDocuments()
	record := models.DocumentRecord{ID: "doc-1", UserID: "user-1", Documents: c}

	gomock.InOrder(
		gateway.EXPECT().UpdateDocuments(gomock.Any(), "user-1", c).
			Return(models.SubmitResult{}, fmt.Errorf("%w: %s", adapter.ErrNotFound, app.MsgDocumentsNotFound)),
		gateway.EXPECT().CreateDocuments(gomock.Any(), "user-1", c).Return(record, nil),
	)

	got, err := svc.Submit(context.Background(), "user-1", c)
	require.NoError(t, err)
	assert.True(t, got.Success)
	assert.Equal(t, record, got.Record)
	assert.Equal(t, models.VerificationPending, got.Verification.Status)
}

func TestSubmissionService_Submit_ServerError(t *testing.T) {
	svc, gateway := newTestSubmissionSvc(t, validators.CompletenessPolicy{})

	gateway.EXPECT().UpdateDocuments(gomock.Any(), "user-1", gomock.Any()).
		Return(models.SubmitResult{}, fmt.Errorf("%w: %s", adapter.ErrForbidden, app.MsgForbidden))

	_, err := svc.Submit(context.Background(), "user-1", completeDocuments())
	assert.ErrorIs(t, err, ErrUnauthorizedAccessToDifferentUserData)
}

func TestSubmissionService_Fetch(t *testing.T) {
	svc, gateway := newTestSubmissionSvc(t, validators.CompletenessPolicy{})

	gateway.EXPECT().FetchDocuments(gomock.Any(), "user-1").
		Return(models.DocumentRecord{}, fmt.Errorf("%w: %s", adapter.ErrNotFound, app.MsgDocumentsNotFound))

	_, err := svc.Fetch(context.Background(), "user-1")
	assert.ErrorIs(t, err, store.ErrDocumentsNotFound)

	_, err = svc.Fetch(context.Background(), "")
	assert.ErrorIs(t, err, ErrNotSignedIn)
}
