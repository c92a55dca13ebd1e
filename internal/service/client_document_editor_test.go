// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/MKhiriev/go-ride-docs/internal/adapter"
	"github.com/MKhiriev/go-ride-docs/internal/app"
	"github.com/MKhiriev/go-ride-docs/internal/logger"
	"github.com/MKhiriev/go-ride-docs/internal/mock"
	"github.com/MKhiriev/go-ride-docs/internal/validators"
	"github.com/MKhiriev/go-ride-docs/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// staticSessions is a signed-in session that never changes.
type staticSessions struct {
	session models.Session
}

func (s staticSessions) Restore(context.Context) (models.Session, error) { return s.session, nil }
func (s staticSessions) Begin(_ context.Context, u models.User, token string) (models.Session, error) {
	return models.Session{User: u, Token: token}, nil
}
func (s staticSessions) End(context.Context) error { return nil }
func (s staticSessions) Current() models.Session  { return s.session }

type editorFixture struct {
	editor  *DocumentEditor
	gateway *mock.MockDocumentGateway
	queue   *fakeDeleteQueue
}

func newEditorFixture(t *testing.T) editorFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	gateway := mock.NewMockDocumentGateway(ctrl)
	queue := &fakeDeleteQueue{}
	validator := validators.NewCompletenessValidator(validators.CompletenessPolicy{})

	services := &ClientServices{
		SessionService:    staticSessions{session: models.Session{User: testDriver, Token: "jwt"}},
		UploadService:     NewUploadService(&fakeBlobs{}, queue, testDocumentsConfig(models.PartialFailureSilent), logger.Nop()),
		RemovalService:    NewRemovalService(queue, logger.Nop()),
		SubmissionService: NewSubmissionService(gateway, validator, logger.Nop()),
		Validator:         validator,
	}

	return editorFixture{editor: services.NewEditor(logger.Nop()), gateway: gateway, queue: queue}
}

func TestDocumentEditor_StartsEmpty(t *testing.T) {
	f := newEditorFixture(t)

	assert.Equal(t, models.NewDocumentCollection(), f.editor.Snapshot())
	assert.False(t, f.editor.Ready())
	assert.Len(t, f.editor.Missing(), 4)
}

func TestDocumentEditor_BuildsCompleteCollection(t *testing.T) {
	f := newEditorFixture(t)
	ctx := context.Background()

	var (
		changes   int
		lastReady bool
	)
	f.editor.OnChange(func(_ models.DocumentCollection, ready bool) {
		changes++
		lastReady = ready
	})

	_, err := f.editor.AddImages(ctx, models.IdentityTarget(models.DrivingLicense), images("dl-front", "dl-back"))
	require.NoError(t, err)
	_, err = f.editor.AddImages(ctx, models.IdentityTarget(models.NationalID), images("id-front", "id-back"))
	require.NoError(t, err)
	assert.True(t, lastReady, "documents without vehicles are ready by default")

	f.editor.AddVehicle()
	assert.False(t, lastReady, "an empty vehicle blocks submission")

	for _, typ := range []models.DocumentType{models.RegistrationCertificate, models.InsuranceCertificate, models.PollutionCertificate, models.VehiclePhoto} {
		_, err = f.editor.AddImages(ctx, models.VehicleTarget(typ, 0), images(string(typ)))
		require.NoError(t, err)
	}

	assert.True(t, lastReady)
	assert.True(t, f.editor.Ready())
	assert.Equal(t, 7, changes)
	assert.Equal(t, blobURL("insuranceCertificate"), f.editor.Snapshot().Vehicles[0].InsuranceCertificateURL)
}

func TestDocumentEditor_RemoveVehicleWhileUploading(t *testing.T) {
	f := newEditorFixture(t)
	ctx := context.Background()
	f.editor.AddVehicle()

	report, err := f.editor.upload.Upload(ctx, f.editor.Snapshot(), models.VehicleTarget(models.VehiclePhoto, 0), images("late"))
	require.NoError(t, err)

	f.editor.RemoveVehicle(ctx, 0)

	_, err = f.editor.upload.Apply(f.editor.Snapshot(), report)
	assert.ErrorIs(t, err, ErrInvalidVehicleIndex)
	assert.Equal(t, []string{blobURL("late")}, f.queue.Deleted())
}

func TestDocumentEditor_ConcurrentBatchesAllMerge(t *testing.T) {
	f := newEditorFixture(t)
	ctx := context.Background()
	f.editor.AddVehicle()

	var wg sync.WaitGroup
	for i := range 5 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.editor.AddImages(ctx, models.VehicleTarget(models.VehiclePhoto, 0), images(fmt.Sprintf("p%d", i)))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Len(t, f.editor.Snapshot().Vehicles[0].PhotoURLs, 5)
}

func TestDocumentEditor_Load(t *testing.T) {
	f := newEditorFixture(t)

	stored := completeDocuments()
	f.gateway.EXPECT().FetchDocuments(gomock.Any(), testDriver.ID).
		Return(models.DocumentRecord{ID: "doc-1", UserID: testDriver.ID, Documents: stored}, nil)

	require.NoError(t, f.editor.Load(context.Background()))
	assert.Equal(t, stored, f.editor.Snapshot())
	assert.True(t, f.editor.Ready())
}

func TestDocumentEditor_Load_NoDocumentsYet(t *testing.T) {
	f := newEditorFixture(t)
	f.editor.AddVehicle()

	f.gateway.EXPECT().FetchDocuments(gomock.Any(), testDriver.ID).
		Return(models.DocumentRecord{}, fmt.Errorf("%w: %s", adapter.ErrNotFound, app.MsgDocumentsNotFound))

	require.NoError(t, f.editor.Load(context.Background()))
	assert.Equal(t, models.NewDocumentCollection(), f.editor.Snapshot())
}

func TestDocumentEditor_Submit(t *testing.T) {
	f := newEditorFixture(t)

	_, err := f.editor.Submit(context.Background())
	require.ErrorIs(t, err, ErrNotSubmitReady)

	f.gateway.EXPECT().FetchDocuments(gomock.Any(), testDriver.ID).
		Return(models.DocumentRecord{Documents: completeDocuments()}, nil)
	require.NoError(t, f.editor.Load(context.Background()))

	f.gateway.EXPECT().UpdateDocuments(gomock.Any(), testDriver.ID, completeDocuments()).
		Return(models.SubmitResult{Success: true}, nil)

	result, err := f.editor.Submit(context.Background())
	require.NoError(t, err)
	assert.True(t, result.Success)
}

func TestDocumentEditor_CompleteRegistration_NotReady(t *testing.T) {
	f := newEditorFixture(t)

	_, err := f.editor.CompleteRegistration(context.Background(), models.ProfileForm{FullName: "Ravi"})
	assert.ErrorIs(t, err, ErrNotSubmitReady)
}

func TestDocumentEditor_AddThenRemoveRestoresCollection(t *testing.T) {
	withLicense := oneVehicle()
	withLicense.DrivingLicense = []string{"dl-stored"}

	withPhoto := oneVehicle()
	withPhoto.Vehicles[0].PhotoURLs = []string{"photo-stored"}

	tests := []struct {
		name     string
		stored   models.DocumentCollection
		target   models.Target
		contents []string
	}{
		{
			name:     "identity into empty list",
			stored:   oneVehicle(),
			target:   models.IdentityTarget(models.NationalID),
			contents: []string{"id-front", "id-back"},
		},
		{
			name:     "identity next to stored image",
			stored:   withLicense,
			target:   models.IdentityTarget(models.DrivingLicense),
			contents: []string{"dl-back"},
		},
		{
			name:     "photos",
			stored:   withPhoto,
			target:   models.VehicleTarget(models.VehiclePhoto, 0),
			contents: []string{"photo-1", "photo-2", "photo-3"},
		},
		{
			name:     "empty certificate slot",
			stored:   oneVehicle(),
			target:   models.VehicleTarget(models.InsuranceCertificate, 0),
			contents: []string{"ins"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newEditorFixture(t)
			ctx := context.Background()

			f.gateway.EXPECT().FetchDocuments(gomock.Any(), testDriver.ID).
				Return(models.DocumentRecord{ID: "doc-1", UserID: testDriver.ID, Documents: tt.stored}, nil)
			require.NoError(t, f.editor.Load(ctx))
			before := f.editor.Snapshot()

			report, err := f.editor.AddImages(ctx, tt.target, images(tt.contents...))
			require.NoError(t, err)
			require.False(t, report.HasFailures())
			added := report.URLs()
			require.Len(t, added, len(tt.contents))
			require.Empty(t, f.queue.Deleted())

			first := 0
			switch {
			case tt.target.Type.IsIdentity():
				first = len(before.Identity(tt.target.Type))
			case tt.target.Type == models.VehiclePhoto:
				first = len(before.Vehicles[tt.target.Vehicle].PhotoURLs)
			}
			for i := len(added) - 1; i >= 0; i-- {
				f.editor.RemoveDocument(ctx, tt.target, first+i)
			}

			assert.Equal(t, before, f.editor.Snapshot())
			assert.ElementsMatch(t, added, f.queue.Deleted())
		})
	}
}
