package jobs

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/northhaul/northhaul-backend/pkg/enums"
	pkgerrors "github.com/northhaul/northhaul-backend/pkg/errors"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	svc, err := NewService(NewRepository(openTestDB(t)))
	require.NoError(t, err)
	return svc
}

func sampleSubmitInput() SubmitJobInput {
	return SubmitJobInput{
		Title:       "Freight Coordinator",
		Description: "Coordinate inbound and outbound freight schedules.",
		Location:    "Toronto, ON",
		Company:     "Northern Lines",
		Type:        "Full-Time",
		Category:    "Logistics",
	}
}

func TestSubmitForcesPendingStatus(t *testing.T) {
	svc := newTestService(t)

	job, err := svc.Submit(context.Background(), sampleSubmitInput())
	require.NoError(t, err)
	require.Equal(t, enums.JobStatusPending, job.Status)
	require.NotEqual(t, uuid.Nil, job.ID)
	require.False(t, job.PostedAt.IsZero())
}

func TestSubmittedJobInvisibleUntilApproved(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	job, err := svc.Submit(ctx, sampleSubmitInput())
	require.NoError(t, err)

	public, err := svc.ListPublic(ctx, PublicFilter{})
	require.NoError(t, err)
	require.Empty(t, public)

	pending, err := svc.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	_, err = svc.UpdateStatus(ctx, job.ID, UpdateStatusInput{Status: "approved"})
	require.NoError(t, err)

	public, err = svc.ListPublic(ctx, PublicFilter{})
	require.NoError(t, err)
	require.Len(t, public, 1)
	require.Equal(t, job.ID, public[0].ID)
}

func TestListPublicFilters(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	seed := func(title, company, location, jobType, category string) {
		input := sampleSubmitInput()
		input.Title = title
		input.Company = company
		input.Location = location
		input.Type = jobType
		input.Category = category
		job, err := svc.Submit(ctx, input)
		require.NoError(t, err)
		_, err = svc.UpdateStatus(ctx, job.ID, UpdateStatusInput{Status: "approved"})
		require.NoError(t, err)
	}

	seed("Forklift Operator", "Bay Freight", "Hamilton, ON", "Full-Time", "Warehouse")
	seed("Dispatch Lead", "Lakeside Carriers", "Mississauga, ON", "Contract", "Dispatch")
	seed("Night Dispatcher", "Bay Freight", "Hamilton, ON", "Part-time", "Dispatch")

	byType, err := svc.ListPublic(ctx, PublicFilter{Type: "full-time"})
	require.NoError(t, err)
	require.Len(t, byType, 1)
	require.Equal(t, "Forklift Operator", byType[0].Title)

	byCategory, err := svc.ListPublic(ctx, PublicFilter{Category: "DISPATCH"})
	require.NoError(t, err)
	require.Len(t, byCategory, 2)

	byLocation, err := svc.ListPublic(ctx, PublicFilter{Location: "hamilton"})
	require.NoError(t, err)
	require.Len(t, byLocation, 2)

	byQuery, err := svc.ListPublic(ctx, PublicFilter{Query: "lakeside"})
	require.NoError(t, err)
	require.Len(t, byQuery, 1)
	require.Equal(t, "Dispatch Lead", byQuery[0].Title)
}

func TestCountByCategoryOnlyApproved(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	approved := sampleSubmitInput()
	approved.Category = "Warehouse"
	job, err := svc.Submit(ctx, approved)
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, job.ID, UpdateStatusInput{Status: "approved"})
	require.NoError(t, err)

	pending := sampleSubmitInput()
	pending.Category = "Dispatch"
	_, err = svc.Submit(ctx, pending)
	require.NoError(t, err)

	counts, err := svc.CountByCategory(ctx)
	require.NoError(t, err)
	require.Equal(t, map[string]int{"Warehouse": 1}, counts)
}

func TestUpdateStatusRejectsIllegalTransition(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	job, err := svc.Submit(ctx, sampleSubmitInput())
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, job.ID, UpdateStatusInput{Status: "approved"})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, job.ID, UpdateStatusInput{Status: "pending"})
	require.Error(t, err)
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, pkgerrors.CodeStateConflict, appErr.Code())
}

func TestUpdatePreservesIdentityAndPostedAt(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	job, err := svc.Submit(ctx, sampleSubmitInput())
	require.NoError(t, err)

	title := "Senior Freight Coordinator"
	updated, err := svc.Update(ctx, job.ID, UpdateJobInput{Title: &title})
	require.NoError(t, err)
	require.Equal(t, job.ID, updated.ID)
	require.Equal(t, job.PostedAt.UTC(), updated.PostedAt.UTC())
	require.Equal(t, title, updated.Title)
	require.Equal(t, job.Company, updated.Company)
}

func TestApplyRequiresApprovedJob(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	job, err := svc.Submit(ctx, sampleSubmitInput())
	require.NoError(t, err)

	_, err = svc.Apply(ctx, job.ID, ApplyInput{UserID: "candidate-1"})
	require.Error(t, err)
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, pkgerrors.CodeNotFound, appErr.Code())

	_, err = svc.UpdateStatus(ctx, job.ID, UpdateStatusInput{Status: "approved"})
	require.NoError(t, err)

	app, err := svc.Apply(ctx, job.ID, ApplyInput{UserID: "candidate-1"})
	require.NoError(t, err)
	require.Equal(t, enums.ApplicationStatusPending, app.Status)
	require.Equal(t, job.ID, app.JobID)
}

func TestApplicationStatusPipeline(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	job, err := svc.Submit(ctx, sampleSubmitInput())
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, job.ID, UpdateStatusInput{Status: "approved"})
	require.NoError(t, err)
	app, err := svc.Apply(ctx, job.ID, ApplyInput{UserID: "candidate-1"})
	require.NoError(t, err)

	// pending cannot jump straight to hired
	_, err = svc.UpdateApplicationStatus(ctx, app.ID, UpdateApplicationStatusInput{Status: "hired"})
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, pkgerrors.CodeStateConflict, appErr.Code())

	for _, status := range []string{"reviewed", "interviewed", "hired"} {
		updated, err := svc.UpdateApplicationStatus(ctx, app.ID, UpdateApplicationStatusInput{Status: status})
		require.NoError(t, err)
		require.Equal(t, status, updated.Status.String())
	}

	// hired is terminal
	_, err = svc.UpdateApplicationStatus(ctx, app.ID, UpdateApplicationStatusInput{Status: "rejected"})
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, pkgerrors.CodeStateConflict, appErr.Code())
}

func TestListApplicationsScopedToJob(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.Submit(ctx, sampleSubmitInput())
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, first.ID, UpdateStatusInput{Status: "approved"})
	require.NoError(t, err)

	secondInput := sampleSubmitInput()
	secondInput.Title = "Yard Marshal"
	second, err := svc.Submit(ctx, secondInput)
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, second.ID, UpdateStatusInput{Status: "approved"})
	require.NoError(t, err)

	_, err = svc.Apply(ctx, first.ID, ApplyInput{UserID: "candidate-1"})
	require.NoError(t, err)
	_, err = svc.Apply(ctx, second.ID, ApplyInput{UserID: "candidate-2"})
	require.NoError(t, err)

	all, err := svc.ListApplications(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)

	scoped, err := svc.ListApplications(ctx, &first.ID)
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	require.Equal(t, "candidate-1", scoped[0].UserID)
}

func TestDeleteMissingJobIsNotFound(t *testing.T) {
	svc := newTestService(t)

	err := svc.Delete(context.Background(), uuid.New())
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, pkgerrors.CodeNotFound, appErr.Code())
}
