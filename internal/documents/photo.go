package documents

import (
	"time"

	"github.com/localnerve/goldphotos/internal/contracts"
	"github.com/localnerve/goldphotos/internal/docstore"
)

// ReportDocument is a report attached to a photo or annotation. A new report overwrites the previous one.
type ReportDocument struct {
	ID             string    `json:"id"`
	ContentID      string    `json:"contentId"`
	ContentType    string    `json:"contentType"`
	ReporterUserID string    `json:"reporterUserId"`
	ReportReason   string    `json:"reportReason"`
	CreatedAt      time.Time `json:"createdAt"`
}

// AnnotationDocument is an annotation embedded in its photo
type AnnotationDocument struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	Text      string          `json:"text"`
	GoldCount int64           `json:"goldCount"`
	CreatedAt time.Time       `json:"createdAt"`
	Report    *ReportDocument `json:"report,omitempty"`
}

// PhotoDocument is a photo with its ordered annotations embedded.
// The photo document is the unit of atomicity for its annotations.
type PhotoDocument struct {
	Base
	CategoryID        string               `json:"categoryId"`
	CategoryName      string               `json:"categoryName"`
	UserID            string               `json:"userId"`
	ThumbnailURL      string               `json:"thumbnailUrl"`
	StandardURL       string               `json:"standardUrl"`
	HighResolutionURL string               `json:"highResolutionUrl"`
	Description       string               `json:"description"`
	Status            string               `json:"status"`
	GoldCount         int64                `json:"goldCount"`
	CreatedAt         time.Time            `json:"createdAt"`
	ModifiedAt        time.Time            `json:"modifiedAt"`
	Annotations       []AnnotationDocument `json:"annotations"`
	Report            *ReportDocument      `json:"report,omitempty"`
}

// Document converts the photo to its stored form. Annotation ids are indexed as children.
func (d PhotoDocument) Document() (docstore.Document, error) {
	children := make([]string, 0, len(d.Annotations))
	for _, a := range d.Annotations {
		children = append(children, a.ID)
	}
	return encode(d.Base, docstore.Index{
		OwnerID:  d.UserID,
		GroupID:  d.CategoryID,
		Status:   d.Status,
		Score:    d.GoldCount,
		SortTime: SortTime(d.CreatedAt),
	}, children, d)
}

// UserIDs returns the deduplicated ids of the owner and every annotation author
func (d PhotoDocument) UserIDs() []string {
	seen := map[string]struct{}{d.UserID: {}}
	ids := []string{d.UserID}
	for _, a := range d.Annotations {
		if _, ok := seen[a.UserID]; ok {
			continue
		}
		seen[a.UserID] = struct{}{}
		ids = append(ids, a.UserID)
	}
	return ids
}

// AnnotationIndex returns the position of an annotation, or -1
func (d PhotoDocument) AnnotationIndex(id string) int {
	for i, a := range d.Annotations {
		if a.ID == id {
			return i
		}
	}
	return -1
}

func resolveUser(users map[string]contracts.UserContract, id string) contracts.UserContract {
	if u, ok := users[id]; ok {
		return u
	}
	return contracts.UserContract{UserID: id}
}

// ToContract maps the photo to its wire contract. Owner and annotation
// authors are resolved through users; unresolved ids keep only the id.
func (d PhotoDocument) ToContract(users map[string]contracts.UserContract) contracts.PhotoContract {
	c := contracts.PhotoContract{
		ID:                  d.ID,
		CategoryID:          d.CategoryID,
		CategoryName:        d.CategoryName,
		ThumbnailURL:        d.ThumbnailURL,
		StandardURL:         d.StandardURL,
		HighResolutionURL:   d.HighResolutionURL,
		User:                resolveUser(users, d.UserID),
		Description:         d.Description,
		CreatedAt:           d.CreatedAt,
		ModifiedAt:          d.ModifiedAt,
		NumberOfAnnotations: len(d.Annotations),
		GoldCount:           d.GoldCount,
		Status:              contracts.PhotoStatus(d.Status),
		Annotations:         make([]contracts.AnnotationContract, 0, len(d.Annotations)),
	}
	for _, a := range d.Annotations {
		c.Annotations = append(c.Annotations, a.ToContract(d.ID, resolveUser(users, a.UserID)))
	}
	return c
}

// PhotoFromContract maps a wire contract to a document
func PhotoFromContract(c contracts.PhotoContract) PhotoDocument {
	d := PhotoDocument{
		Base:              newBase(TypePhoto, c.ID),
		CategoryID:        c.CategoryID,
		CategoryName:      c.CategoryName,
		UserID:            c.User.UserID,
		ThumbnailURL:      c.ThumbnailURL,
		StandardURL:       c.StandardURL,
		HighResolutionURL: c.HighResolutionURL,
		Description:       c.Description,
		Status:            string(c.Status),
		GoldCount:         c.GoldCount,
		CreatedAt:         c.CreatedAt,
		ModifiedAt:        c.ModifiedAt,
		Annotations:       make([]AnnotationDocument, 0, len(c.Annotations)),
	}
	for _, a := range c.Annotations {
		d.Annotations = append(d.Annotations, AnnotationFromContract(a))
	}
	return d
}

// ToContract maps the annotation to its wire contract
func (a AnnotationDocument) ToContract(photoID string, from contracts.UserContract) contracts.AnnotationContract {
	return contracts.AnnotationContract{
		ID:        a.ID,
		PhotoID:   photoID,
		From:      from,
		Text:      a.Text,
		GoldCount: a.GoldCount,
		CreatedAt: a.CreatedAt,
		Report:    a.Report.ToContract(),
	}
}

// AnnotationFromContract maps a wire contract to an embedded annotation
func AnnotationFromContract(c contracts.AnnotationContract) AnnotationDocument {
	return AnnotationDocument{
		ID:        c.ID,
		UserID:    c.From.UserID,
		Text:      c.Text,
		GoldCount: c.GoldCount,
		CreatedAt: c.CreatedAt,
		Report:    ReportFromContract(c.Report),
	}
}

// ToContract maps the report to its wire contract. A nil report maps to nil.
func (r *ReportDocument) ToContract() *contracts.ReportContract {
	if r == nil {
		return nil
	}
	return &contracts.ReportContract{
		ID:             r.ID,
		ContentID:      r.ContentID,
		ContentType:    contracts.ContentType(r.ContentType),
		ReporterUserID: r.ReporterUserID,
		ReportReason:   contracts.ReportReason(r.ReportReason),
		CreatedAt:      r.CreatedAt,
	}
}

// ReportFromContract maps a wire contract to an embedded report
func ReportFromContract(c *contracts.ReportContract) *ReportDocument {
	if c == nil {
		return nil
	}
	return &ReportDocument{
		ID:             c.ID,
		ContentID:      c.ContentID,
		ContentType:    string(c.ContentType),
		ReporterUserID: c.ReporterUserID,
		ReportReason:   string(c.ReportReason),
		CreatedAt:      c.CreatedAt,
	}
}
