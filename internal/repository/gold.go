// gold.go
//
// Photo sharing and gold economy data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of goldphotos.
// goldphotos is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// goldphotos is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with goldphotos.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/localnerve/goldphotos/internal/docstore"
	"github.com/localnerve/goldphotos/internal/documents"
	"github.com/localnerve/goldphotos/internal/types"
	"github.com/sirupsen/logrus"
)

// ProcedureTransferGold is the id of the gold-transfer procedure
const ProcedureTransferGold = "transferGoldBetweenUsers"

// Gold transaction types recorded on the ledger
const (
	TransactionNewUser           = "NewUser"
	TransactionFirstProfilePhoto = "FirstProfilePhoto"
	TransactionNewPhoto          = "NewPhoto"
	TransactionAnnotation        = "Annotation"
	TransactionIapPurchase       = "IapPurchase"
)

var errNegativeAmount = errors.New("gold amount must not be negative")

// transferGold runs the gold-transfer procedure. It is the only code path that changes balances.
func (r *DocumentRepository) transferGold(ctx context.Context, toUserID, fromUserID string, amount int64, transactionType, photoID string) (documents.GoldTransactionDocument, error) {
	log := r.log.WithFields(logrus.Fields{
		"op":     "transferGold",
		"to":     toUserID,
		"from":   fromUserID,
		"amount": amount,
		"type":   transactionType,
	})

	raw, err := r.store.ExecuteProcedure(ctx, ProcedureTransferGold,
		toUserID,
		fromUserID,
		amount,
		transactionType,
		photoID,
		fromUserID == SystemUserID,
		documents.CurrentVersion,
	)
	if err != nil {
		log.WithError(err).Error("gold transfer failed")
		return documents.GoldTransactionDocument{}, types.GoldTransactionError(err,
			"transfer of %d gold from %s to %s failed", amount, fromUserID, toUserID)
	}

	var ledger documents.GoldTransactionDocument
	if err := json.Unmarshal(raw, &ledger); err != nil {
		return ledger, types.GoldTransactionError(err, "invalid gold transfer result")
	}

	log.WithField("transaction", ledger.ID).Info("gold transferred")
	return ledger, nil
}

// goldAppliedWritePending reports the intermediate state of a multi-step write
// whose gold transfer committed but whose document write failed. The transfer
// is not compensated.
func (r *DocumentRepository) goldAppliedWritePending(op, documentID string, ledger documents.GoldTransactionDocument, err error) error {
	r.log.WithFields(logrus.Fields{
		"op":          op,
		"document":    documentID,
		"transaction": ledger.ID,
		"amount":      ledger.Amount,
		"to":          ledger.ToUserID,
		"from":        ledger.FromUserID,
	}).WithError(err).Error("gold applied, document write pending")

	return types.UnknownError(err, "%s: gold applied, document write pending for %s (transaction %s)", op, documentID, ledger.ID)
}

// readProcedureUser reads a user inside a procedure at the requested schema version
func readProcedureUser(ctx context.Context, tx docstore.Driver, id, version string) (documents.UserDocument, error) {
	doc, err := tx.Read(ctx, id)
	if err != nil {
		return documents.UserDocument{}, fmt.Errorf("user %s: %w", id, err)
	}
	if doc.Type != documents.TypeUser || doc.Version != version {
		return documents.UserDocument{}, fmt.Errorf("user %s: %w", id, docstore.ErrNotFound)
	}
	return documents.Decode[documents.UserDocument](doc)
}

func writeProcedureUser(ctx context.Context, tx docstore.Driver, user documents.UserDocument) error {
	doc, err := user.Document()
	if err != nil {
		return err
	}
	return tx.Replace(ctx, doc)
}

// transferGoldProcedure debits the source (unless system), credits the
// destination, bumps the source's given counter (unless system) and records
// the ledger entry. It runs in one transaction and holds both user rows
// locked, taken in id order, until it commits.
func (r *DocumentRepository) transferGoldProcedure(ctx context.Context, tx docstore.Driver, args docstore.Arguments) (interface{}, error) {
	toUserID := args.String("toUserId")
	fromUserID := args.String("fromUserId")
	amount := args.Int("amount")
	isSystemSource := args.Bool("isSystemSource")
	version := args.String("documentVersion")

	if amount < 0 {
		return nil, errNegativeAmount
	}

	ids := []string{toUserID}
	if !isSystemSource && fromUserID != toUserID {
		ids = append(ids, fromUserID)
		sort.Strings(ids)
	}
	users := make(map[string]documents.UserDocument, len(ids))
	for _, id := range ids {
		user, err := readProcedureUser(ctx, tx, id, version)
		if err != nil {
			return nil, err
		}
		users[id] = user
	}
	now := r.now()

	if !isSystemSource {
		from := users[fromUserID]
		from.GoldBalance -= amount
		from.GoldGiven += amount
		from.ModifiedAt = now
		users[fromUserID] = from
	}
	to := users[toUserID]
	to.GoldBalance += amount
	to.ModifiedAt = now
	users[toUserID] = to

	for _, id := range ids {
		if err := writeProcedureUser(ctx, tx, users[id]); err != nil {
			return nil, err
		}
	}

	ledger := documents.NewGoldTransaction(r.newID(), version)
	ledger.ToUserID = toUserID
	ledger.FromUserID = fromUserID
	ledger.Amount = amount
	ledger.TransactionType = args.String("transactionType")
	ledger.PhotoID = args.String("photoId")
	ledger.CreatedAt = now

	doc, err := ledger.Document()
	if err != nil {
		return nil, err
	}
	if err := tx.Insert(ctx, doc); err != nil {
		return nil, err
	}
	return ledger, nil
}
