// Package contracts holds the wire shapes returned to callers of the repository.
package contracts

import (
	"strings"
	"time"

	"github.com/localnerve/goldphotos/internal/types"
)

// PhotoStatus is the moderation state of a photo
type PhotoStatus string

const (
	PhotoStatusActive         PhotoStatus = "Active"
	PhotoStatusUnderReview    PhotoStatus = "UnderReview"
	PhotoStatusObjectionable  PhotoStatus = "ObjectionableContent"
	PhotoStatusDeletedByOwner PhotoStatus = "DeletedByOwner"
)

// ContentType identifies what a report targets
type ContentType string

const (
	ContentTypePhoto      ContentType = "Photo"
	ContentTypeAnnotation ContentType = "Annotation"
)

// ReportReason is why content was reported
type ReportReason string

const (
	ReportReasonInappropriate ReportReason = "Inappropriate"
	ReportReasonCopyright     ReportReason = "Copyright"
	ReportReasonSpam          ReportReason = "Spam"
	ReportReasonOther         ReportReason = "Other"
)

// CategoryContract is a photo category
type CategoryContract struct {
	ID   string `json:"id"`
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// NormalizeCategoryName trims a category name and collapses inner whitespace
func NormalizeCategoryName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// UserContract is a registered user. An empty RegistrationReference means no such user.
type UserContract struct {
	UserID                string    `json:"userId"`
	RegistrationReference string    `json:"registrationReference,omitempty"`
	GoldBalance           int64     `json:"goldBalance"`
	GoldGiven             int64     `json:"goldGiven"`
	ProfilePhotoID        string    `json:"profilePhotoId,omitempty"`
	ProfilePhotoURL       string    `json:"profilePhotoUrl,omitempty"`
	CreatedAt             time.Time `json:"createdAt"`
	ModifiedAt            time.Time `json:"modifiedAt"`
}

// IsEmpty reports whether the user is the empty "no such user" value
func (u UserContract) IsEmpty() bool {
	return u.RegistrationReference == ""
}

// PhotoContract is a photo with its embedded annotations
type PhotoContract struct {
	ID                  string               `json:"id"`
	CategoryID          string               `json:"categoryId" validate:"required"`
	CategoryName        string               `json:"categoryName"`
	ThumbnailURL        string               `json:"thumbnailUrl"`
	StandardURL         string               `json:"standardUrl"`
	HighResolutionURL   string               `json:"highResolutionUrl"`
	User                UserContract         `json:"user"`
	Description         string               `json:"description" validate:"max=1000"`
	CreatedAt           time.Time            `json:"createdAt"`
	ModifiedAt          time.Time            `json:"modifiedAt"`
	NumberOfAnnotations int                  `json:"numberOfAnnotations"`
	GoldCount           int64                `json:"goldCount"`
	Status              PhotoStatus          `json:"status"`
	Annotations         []AnnotationContract `json:"annotations"`
}

// AnnotationContract is a comment left on a photo, optionally carrying gold
type AnnotationContract struct {
	ID        string          `json:"id"`
	PhotoID   string          `json:"photoId" validate:"required"`
	From      UserContract    `json:"from"`
	Text      string          `json:"text" validate:"max=1000"`
	GoldCount int64           `json:"goldCount" validate:"gte=0"`
	CreatedAt time.Time       `json:"createdAt"`
	Report    *ReportContract `json:"report,omitempty"`
}

// ReportContract flags a photo or annotation
type ReportContract struct {
	ID             string       `json:"id"`
	ContentID      string       `json:"contentId" validate:"required"`
	ContentType    ContentType  `json:"contentType" validate:"required,oneof=Photo Annotation"`
	ReporterUserID string       `json:"reporterUserId"`
	ReportReason   ReportReason `json:"reportReason" validate:"required,oneof=Inappropriate Copyright Spam Other"`
	CreatedAt      time.Time    `json:"createdAt"`
}

// IapPurchaseContract is a fulfilled in-app purchase receipt
type IapPurchaseContract struct {
	ID            string        `json:"id" validate:"required"`
	UserID        string        `json:"userId"`
	ProductID     string        `json:"productId" validate:"required"`
	GoldIncrement types.FlexInt `json:"goldIncrement"`
}

// GoldTransactionContract is a ledger entry of the gold-transfer procedure
type GoldTransactionContract struct {
	ID              string    `json:"id"`
	ToUserID        string    `json:"toUserId"`
	FromUserID      string    `json:"fromUserId"`
	Amount          int64     `json:"amount"`
	TransactionType string    `json:"transactionType"`
	PhotoID         string    `json:"photoId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// CategoryPreviewContract is a category with its most recent thumbnails
type CategoryPreviewContract struct {
	ID              string                   `json:"id"`
	Name            string                   `json:"name"`
	PhotoThumbnails []PhotoThumbnailContract `json:"photoThumbnails"`
}

// PhotoThumbnailContract is the thumbnail view of a photo in a category preview
type PhotoThumbnailContract struct {
	PhotoID      string    `json:"photoId"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PagedResponse is one page of results. An empty ContinuationToken means the last page.
type PagedResponse[T any] struct {
	Items             []T    `json:"items"`
	ContinuationToken string `json:"continuationToken,omitempty"`
}
