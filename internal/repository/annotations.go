package repository

import (
	"context"

	"github.com/localnerve/goldphotos/internal/contracts"
	"github.com/localnerve/goldphotos/internal/docstore"
	"github.com/localnerve/goldphotos/internal/documents"
	"github.com/localnerve/goldphotos/internal/types"
	"github.com/sirupsen/logrus"
)

// photoByAnnotation finds the photo embedding an annotation
func (r *DocumentRepository) photoByAnnotation(ctx context.Context, annotationID string) (documents.PhotoDocument, error) {
	q := documents.Query(documents.TypePhoto).Where(docstore.FieldChildID, annotationID)
	q.Limit = 1
	page, err := r.store.Query(ctx, q)
	if err != nil {
		return documents.PhotoDocument{}, types.UnknownError(err, "find photo of annotation %s", annotationID)
	}
	if len(page.Documents) == 0 {
		return documents.PhotoDocument{}, types.NotFoundError("annotation %s", annotationID)
	}
	photo, err := documents.Decode[documents.PhotoDocument](page.Documents[0])
	if err != nil {
		return photo, types.UnknownError(err, "photo of annotation %s", annotationID)
	}
	return photo, nil
}

// GetAnnotations returns the annotations of a photo with their authors resolved
func (r *DocumentRepository) GetAnnotations(ctx context.Context, photoID string) ([]contracts.AnnotationContract, error) {
	photo, err := r.GetPhoto(ctx, photoID)
	if err != nil {
		return nil, err
	}
	return photo.Annotations, nil
}

// InsertAnnotation appends an annotation to its photo and moves its gold from
// the author to the photo owner. The transfer commits before the photo is
// rewritten; a failed rewrite leaves the transfer in place.
func (r *DocumentRepository) InsertAnnotation(ctx context.Context, annotation contracts.AnnotationContract) (contracts.AnnotationContract, error) {
	annotation.ID = r.newID()
	annotation.CreatedAt = r.now()
	annotation.Report = nil
	log := r.log.WithFields(logrus.Fields{"op": "InsertAnnotation", "id": annotation.ID, "photo": annotation.PhotoID})

	if annotation.GoldCount < 0 {
		return contracts.AnnotationContract{}, types.GoldTransactionError(errNegativeAmount, "annotation gold %d", annotation.GoldCount)
	}

	photo, err := r.loadPhoto(ctx, annotation.PhotoID)
	if err != nil {
		return contracts.AnnotationContract{}, err
	}
	if photo.AnnotationIndex(annotation.ID) >= 0 {
		return contracts.AnnotationContract{}, types.DuplicateKeyError("annotation %s already exists", annotation.ID)
	}

	photo.Annotations = append(photo.Annotations, documents.AnnotationFromContract(annotation))
	photo.GoldCount += annotation.GoldCount
	photo.ModifiedAt = annotation.CreatedAt

	var ledger documents.GoldTransactionDocument
	if annotation.GoldCount > 0 {
		ledger, err = r.transferGold(ctx, photo.UserID, annotation.From.UserID, annotation.GoldCount, TransactionAnnotation, photo.ID)
		if err != nil {
			return contracts.AnnotationContract{}, err
		}
	}

	if err := r.replace(ctx, photo); err != nil {
		if ledger.ID != "" {
			return contracts.AnnotationContract{}, r.goldAppliedWritePending("InsertAnnotation", photo.ID, ledger, err)
		}
		return contracts.AnnotationContract{}, err
	}
	log.WithField("gold", annotation.GoldCount).Info("annotation inserted")

	users, err := r.resolveUsers(ctx, []string{annotation.From.UserID})
	if err != nil {
		return contracts.AnnotationContract{}, err
	}
	if from, ok := users[annotation.From.UserID]; ok {
		annotation.From = from
	}
	return annotation, nil
}

// DeleteAnnotation removes an annotation from its photo. The caller is not
// checked against the author and the photo's gold count is left unchanged.
func (r *DocumentRepository) DeleteAnnotation(ctx context.Context, annotationID, registrationReference string) error {
	photo, err := r.photoByAnnotation(ctx, annotationID)
	if err != nil {
		return err
	}

	i := photo.AnnotationIndex(annotationID)
	if i < 0 {
		return types.NotFoundError("annotation %s", annotationID)
	}
	photo.Annotations = append(photo.Annotations[:i], photo.Annotations[i+1:]...)
	photo.ModifiedAt = r.now()

	if err := r.replace(ctx, photo); err != nil {
		return err
	}
	r.log.WithFields(logrus.Fields{
		"op":     "DeleteAnnotation",
		"id":     annotationID,
		"photo":  photo.ID,
		"caller": registrationReference,
	}).Info("annotation deleted")
	return nil
}

// InsertReport attaches a report to a photo or annotation, overwriting any previous report
func (r *DocumentRepository) InsertReport(ctx context.Context, report contracts.ReportContract, registrationReference string) (contracts.ReportContract, error) {
	reporter, err := r.GetUser(ctx, "", registrationReference)
	if err != nil {
		return contracts.ReportContract{}, err
	}
	if reporter.IsEmpty() {
		return contracts.ReportContract{}, types.NotFoundError("reporting user %q", registrationReference)
	}

	report.ID = r.newID()
	report.CreatedAt = r.now()
	report.ReporterUserID = reporter.UserID

	var photo documents.PhotoDocument
	switch report.ContentType {
	case contracts.ContentTypePhoto:
		photo, err = r.loadPhoto(ctx, report.ContentID)
		if err != nil {
			return contracts.ReportContract{}, err
		}
		photo.Report = documents.ReportFromContract(&report)

	case contracts.ContentTypeAnnotation:
		photo, err = r.photoByAnnotation(ctx, report.ContentID)
		if err != nil {
			return contracts.ReportContract{}, err
		}
		i := photo.AnnotationIndex(report.ContentID)
		if i < 0 {
			return contracts.ReportContract{}, types.NotFoundError("annotation %s", report.ContentID)
		}
		photo.Annotations[i].Report = documents.ReportFromContract(&report)

	default:
		return contracts.ReportContract{}, types.UnknownError(nil, "unsupported report content type %q", report.ContentType)
	}

	if err := r.replace(ctx, photo); err != nil {
		return contracts.ReportContract{}, err
	}
	r.log.WithFields(logrus.Fields{
		"op":      "InsertReport",
		"content": report.ContentID,
		"type":    report.ContentType,
	}).Info("report attached")
	return report, nil
}
