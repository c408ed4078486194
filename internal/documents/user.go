package documents

import (
	"time"

	"github.com/localnerve/goldphotos/internal/contracts"
	"github.com/localnerve/goldphotos/internal/docstore"
)

// UserDocument is a registered user. Balances are promoted for the leaderboard.
type UserDocument struct {
	Base
	RegistrationReference string    `json:"registrationReference"`
	GoldBalance           int64     `json:"goldBalance"`
	GoldGiven             int64     `json:"goldGiven"`
	ProfilePhotoID        string    `json:"profilePhotoId,omitempty"`
	ProfilePhotoURL       string    `json:"profilePhotoUrl,omitempty"`
	CreatedAt             time.Time `json:"createdAt"`
	ModifiedAt            time.Time `json:"modifiedAt"`
}

// NewUser creates a user document with a zero balance
func NewUser(id, registrationReference string, now time.Time) UserDocument {
	return UserDocument{
		Base:                  newBase(TypeUser, id),
		RegistrationReference: registrationReference,
		CreatedAt:             now,
		ModifiedAt:            now,
	}
}

// Document converts the user to its stored form
func (d UserDocument) Document() (docstore.Document, error) {
	return encode(d.Base, docstore.Index{
		LookupKey: d.RegistrationReference,
		Score:     d.GoldBalance,
		AltScore:  d.GoldGiven,
		SortTime:  SortTime(d.CreatedAt),
	}, nil, d)
}

// ToContract maps the document to its wire contract
func (d UserDocument) ToContract() contracts.UserContract {
	return contracts.UserContract{
		UserID:                d.ID,
		RegistrationReference: d.RegistrationReference,
		GoldBalance:           d.GoldBalance,
		GoldGiven:             d.GoldGiven,
		ProfilePhotoID:        d.ProfilePhotoID,
		ProfilePhotoURL:       d.ProfilePhotoURL,
		CreatedAt:             d.CreatedAt,
		ModifiedAt:            d.ModifiedAt,
	}
}

// UserFromContract maps a wire contract to a document.
//
// When stored is non-nil the contract is an update of it: identity, creation
// time, the gold balance and gold given come from the stored document, which
// only the gold-transfer procedure may change.
func UserFromContract(c contracts.UserContract, stored *UserDocument) UserDocument {
	d := UserDocument{
		Base:                  newBase(TypeUser, c.UserID),
		RegistrationReference: c.RegistrationReference,
		GoldBalance:           c.GoldBalance,
		GoldGiven:             c.GoldGiven,
		ProfilePhotoID:        c.ProfilePhotoID,
		ProfilePhotoURL:       c.ProfilePhotoURL,
		CreatedAt:             c.CreatedAt,
		ModifiedAt:            c.ModifiedAt,
	}
	if stored == nil {
		return d
	}

	d.Base = stored.Base
	d.Base.DocumentVersion = CurrentVersion
	d.CreatedAt = stored.CreatedAt
	d.GoldBalance = stored.GoldBalance
	d.GoldGiven = stored.GoldGiven
	if d.RegistrationReference == "" {
		d.RegistrationReference = stored.RegistrationReference
	}
	return d
}
