package repository

import (
	"context"
	"testing"

	"github.com/localnerve/goldphotos/internal/contracts"
	"github.com/localnerve/goldphotos/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertAnnotationRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, _ := setupRepository(t)

	owner := mustUser(t, repo, "owner")
	author := mustUser(t, repo, "author")
	category := mustCategory(t, repo, "Nature")
	photo := mustPhoto(t, repo, owner, category, 0)

	annotation, err := repo.InsertAnnotation(ctx, contracts.AnnotationContract{
		ID:        "client-supplied",
		PhotoID:   photo.ID,
		From:      contracts.UserContract{UserID: author.UserID},
		Text:      "great shot",
		GoldCount: 4,
	})
	require.NoError(t, err)
	assert.NotEqual(t, "client-supplied", annotation.ID, "ids are generated")
	assert.False(t, annotation.CreatedAt.IsZero())
	assert.Equal(t, "author", annotation.From.RegistrationReference)

	got, err := repo.GetPhoto(ctx, photo.ID)
	require.NoError(t, err)
	assert.Equal(t, photo.GoldCount+4, got.GoldCount)
	assert.Equal(t, 1, got.NumberOfAnnotations)

	count := 0
	for _, a := range got.Annotations {
		if a.ID == annotation.ID {
			count++
			assert.Equal(t, "great shot", a.Text)
			assert.Equal(t, "author", a.From.RegistrationReference)
			assert.Equal(t, photo.ID, a.PhotoID)
		}
	}
	assert.Equal(t, 1, count)

	ownerNow, err := repo.GetUser(ctx, owner.UserID, "")
	require.NoError(t, err)
	assert.Equal(t, int64(24), ownerNow.GoldBalance)

	authorNow, err := repo.GetUser(ctx, author.UserID, "")
	require.NoError(t, err)
	assert.Equal(t, int64(16), authorNow.GoldBalance)
	assert.Equal(t, int64(4), authorNow.GoldGiven)

	annotations, err := repo.GetAnnotations(ctx, photo.ID)
	require.NoError(t, err)
	assert.Len(t, annotations, 1)
}

func TestInsertAnnotationWithoutGold(t *testing.T) {
	ctx := context.Background()
	repo, _ := setupRepository(t)

	owner := mustUser(t, repo, "owner")
	category := mustCategory(t, repo, "Nature")
	photo := mustPhoto(t, repo, owner, category, 0)

	_, err := repo.InsertAnnotation(ctx, contracts.AnnotationContract{PhotoID: photo.ID, From: owner, Text: "thanks"})
	require.NoError(t, err)

	ledger, err := repo.GetGoldTransactions(ctx, owner.UserID, "")
	require.NoError(t, err)
	assert.Len(t, ledger.Items, 1, "a free annotation moves no gold")

	_, err = repo.InsertAnnotation(ctx, contracts.AnnotationContract{PhotoID: "missing", From: owner})
	assertCode(t, err, types.NotFound)

	_, err = repo.InsertAnnotation(ctx, contracts.AnnotationContract{PhotoID: photo.ID, From: owner, GoldCount: -1})
	assertCode(t, err, types.FailedGoldTransaction)
}

func TestInsertAnnotationFailedTransferLeavesPhoto(t *testing.T) {
	ctx := context.Background()
	repo, _ := setupRepository(t)

	owner := mustUser(t, repo, "owner")
	category := mustCategory(t, repo, "Nature")
	photo := mustPhoto(t, repo, owner, category, 0)

	_, err := repo.InsertAnnotation(ctx, contracts.AnnotationContract{
		PhotoID:   photo.ID,
		From:      contracts.UserContract{UserID: "ghost"},
		GoldCount: 2,
	})
	assertCode(t, err, types.FailedGoldTransaction)

	got, err := repo.GetPhoto(ctx, photo.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Annotations)
	assert.Equal(t, int64(0), got.GoldCount)
}

func TestInsertAnnotationWritePending(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	driver := &failingDriver{Driver: store}
	repo, _ := newTestRepository(t, driver, testSettings)

	owner := mustUser(t, repo, "owner")
	author := mustUser(t, repo, "author")
	category := mustCategory(t, repo, "Nature")
	photo := mustPhoto(t, repo, owner, category, 0)

	driver.failReplace = true
	_, err := repo.InsertAnnotation(ctx, contracts.AnnotationContract{PhotoID: photo.ID, From: author, GoldCount: 3})
	assertCode(t, err, types.Unknown)
	assert.Contains(t, err.Error(), "gold applied, document write pending")
	assert.ErrorIs(t, err, errInjected)
	driver.failReplace = false

	got, err := repo.GetPhoto(ctx, photo.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Annotations, "the photo write did not happen")

	ownerNow, err := repo.GetUser(ctx, owner.UserID, "")
	require.NoError(t, err)
	assert.Equal(t, int64(23), ownerNow.GoldBalance, "the gold transfer stands")
}

func TestDeleteAnnotation(t *testing.T) {
	ctx := context.Background()
	repo, _ := setupRepository(t)

	owner := mustUser(t, repo, "owner")
	author := mustUser(t, repo, "author")
	category := mustCategory(t, repo, "Nature")
	photo := mustPhoto(t, repo, owner, category, 0)

	keep, err := repo.InsertAnnotation(ctx, contracts.AnnotationContract{PhotoID: photo.ID, From: author, Text: "keep", GoldCount: 1})
	require.NoError(t, err)
	drop, err := repo.InsertAnnotation(ctx, contracts.AnnotationContract{PhotoID: photo.ID, From: author, Text: "drop", GoldCount: 2})
	require.NoError(t, err)

	// any caller may delete; the author is not checked
	require.NoError(t, repo.DeleteAnnotation(ctx, drop.ID, "someone-else"))

	got, err := repo.GetPhoto(ctx, photo.ID)
	require.NoError(t, err)
	require.Len(t, got.Annotations, 1)
	assert.Equal(t, keep.ID, got.Annotations[0].ID)
	assert.Equal(t, int64(3), got.GoldCount, "gold count is not reduced")

	assertCode(t, repo.DeleteAnnotation(ctx, drop.ID, owner.RegistrationReference), types.NotFound)
}

func TestInsertReport(t *testing.T) {
	ctx := context.Background()
	repo, _ := setupRepository(t)

	owner := mustUser(t, repo, "owner")
	reporter := mustUser(t, repo, "reporter")
	category := mustCategory(t, repo, "Nature")
	photo := mustPhoto(t, repo, owner, category, 0)
	annotation, err := repo.InsertAnnotation(ctx, contracts.AnnotationContract{PhotoID: photo.ID, From: owner, Text: "hi"})
	require.NoError(t, err)

	first, err := repo.InsertReport(ctx, contracts.ReportContract{
		ContentID:    photo.ID,
		ContentType:  contracts.ContentTypePhoto,
		ReportReason: contracts.ReportReasonSpam,
	}, "reporter")
	require.NoError(t, err)
	assert.Equal(t, reporter.UserID, first.ReporterUserID)
	assert.NotEmpty(t, first.ID)

	second, err := repo.InsertReport(ctx, contracts.ReportContract{
		ContentID:    photo.ID,
		ContentType:  contracts.ContentTypePhoto,
		ReportReason: contracts.ReportReasonCopyright,
	}, "reporter")
	require.NoError(t, err)

	_, err = repo.InsertReport(ctx, contracts.ReportContract{
		ContentID:    annotation.ID,
		ContentType:  contracts.ContentTypeAnnotation,
		ReportReason: contracts.ReportReasonInappropriate,
	}, "reporter")
	require.NoError(t, err)

	stored, err := repo.loadPhoto(ctx, photo.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Report)
	assert.Equal(t, second.ID, stored.Report.ID, "a new report overwrites the previous one")
	assert.Equal(t, string(contracts.ReportReasonCopyright), stored.Report.ReportReason)
	require.NotNil(t, stored.Annotations[0].Report)
	assert.Equal(t, string(contracts.ReportReasonInappropriate), stored.Annotations[0].Report.ReportReason)

	_, err = repo.InsertReport(ctx, contracts.ReportContract{ContentID: photo.ID, ContentType: "Comment"}, "reporter")
	assertCode(t, err, types.Unknown)

	_, err = repo.InsertReport(ctx, contracts.ReportContract{ContentID: photo.ID, ContentType: contracts.ContentTypePhoto}, "nobody")
	assertCode(t, err, types.NotFound)

	_, err = repo.InsertReport(ctx, contracts.ReportContract{ContentID: "missing", ContentType: contracts.ContentTypeAnnotation}, "reporter")
	assertCode(t, err, types.NotFound)
}
