package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/saphaniox/sap-technologies.ug-sub002/internal/db"
	"github.com/saphaniox/sap-technologies.ug-sub002/internal/models"
	"github.com/saphaniox/sap-technologies.ug-sub002/internal/notifier"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NormalizeEmail trims and lowercases an address. Vote uniqueness is
// evaluated on the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidTransition reports whether a nomination may move from one status
// to another. Any status may be reset to pending; there are no terminal
// states.
func ValidTransition(from, to string) bool {
	if to == models.StatusPending {
		return true
	}
	switch from {
	case models.StatusPending:
		return to == models.StatusApproved || to == models.StatusRejected
	case models.StatusApproved:
		return to == models.StatusWinner || to == models.StatusFinalist
	}
	return false
}

// VotingOpen reports whether a nomination in the given status accepts
// public votes. Pending and rejected entries are hidden from the public
// listing and cannot collect votes.
func VotingOpen(status string) bool {
	switch status {
	case models.StatusApproved, models.StatusWinner, models.StatusFinalist:
		return true
	}
	return false
}

// --- Categories ---

func CreateCategory(ctx context.Context, category models.AwardCategory) (models.AwardCategory, error) {
	now := time.Now()
	category.ID = primitive.NewObjectID()
	category.CreatedAt = now
	category.UpdatedAt = now

	if _, err := db.GetCollection("award_categories").InsertOne(ctx, category); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.AwardCategory{}, ErrDuplicateCategory
		}
		return models.AwardCategory{}, err
	}
	return category, nil
}

func ListCategories(ctx context.Context, activeOnly bool) ([]models.AwardCategory, error) {
	filter := bson.M{}
	if activeOnly {
		filter["is_active"] = true
	}

	cursor, err := db.GetCollection("award_categories").Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var categories []models.AwardCategory
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func UpdateCategory(ctx context.Context, id string, category models.AwardCategory) (models.AwardCategory, error) {
	objID, err := parseID(id)
	if err != nil {
		return models.AwardCategory{}, err
	}

	result, err := db.GetCollection("award_categories").UpdateOne(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{
			"name":        category.Name,
			"description": category.Description,
			"icon":        category.Icon,
			"is_active":   category.IsActive,
			"updated_at":  time.Now(),
		}},
	)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.AwardCategory{}, ErrDuplicateCategory
		}
		return models.AwardCategory{}, err
	}
	if result.MatchedCount == 0 {
		return models.AwardCategory{}, ErrNotFound
	}

	var updated models.AwardCategory
	if err := db.GetCollection("award_categories").FindOne(ctx, bson.M{"_id": objID}).Decode(&updated); err != nil {
		return models.AwardCategory{}, err
	}
	return updated, nil
}

// DeleteCategory removes a category only when no nominations reference it.
func DeleteCategory(ctx context.Context, id string) error {
	objID, err := parseID(id)
	if err != nil {
		return err
	}

	count, err := db.GetCollection("nominations").CountDocuments(ctx, bson.M{"category_id": objID})
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}

	result, err := db.GetCollection("award_categories").DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Nominations ---

// NominationInput carries the validated public submission fields.
type NominationInput struct {
	NomineeName    string
	NomineeEmail   string
	NomineePhone   string
	NomineeCompany string
	NomineeCountry string
	CategoryID     string
	NominatorName  string
	NominatorEmail string
	Reason         string
}

// CreateNomination stores the photo first and the document second, so a
// failed insert only ever leaves an orphaned object, which is cleaned up
// before returning.
func CreateNomination(ctx context.Context, input NominationInput, photo *multipart.FileHeader) (models.Nomination, error) {
	if photo == nil {
		return models.Nomination{}, ErrPhotoRequired
	}

	categoryID, err := parseID(input.CategoryID)
	if err != nil {
		return models.Nomination{}, err
	}

	var category models.AwardCategory
	if err := db.GetCollection("award_categories").FindOne(ctx, bson.M{"_id": categoryID, "is_active": true}).Decode(&category); err != nil {
		return models.Nomination{}, ErrNotFound
	}

	photoKey, err := storeUpload(ctx, photo, "nominations")
	if err != nil {
		return models.Nomination{}, err
	}

	now := time.Now()
	nomination := models.Nomination{
		ID:             primitive.NewObjectID(),
		NomineeName:    input.NomineeName,
		NomineeEmail:   NormalizeEmail(input.NomineeEmail),
		NomineePhone:   input.NomineePhone,
		NomineeCompany: input.NomineeCompany,
		NomineeCountry: input.NomineeCountry,
		PhotoKey:       photoKey,
		CategoryID:     categoryID,
		NominatorName:  input.NominatorName,
		NominatorEmail: NormalizeEmail(input.NominatorEmail),
		Reason:         input.Reason,
		Status:         models.StatusPending,
		Votes:          0,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if _, err := db.GetCollection("nominations").InsertOne(ctx, nomination); err != nil {
		deleteObject(ctx, photoKey)
		return models.Nomination{}, err
	}

	notifier.Dispatch(notifier.Message{
		Channel:   models.ChannelEmail,
		Recipient: nomination.NominatorEmail,
		Subject:   "We received your nomination",
		Body:      nominationReceivedBody(nomination, category.Name),
		RefID:     nomination.ID.Hex(),
	})
	notifier.Dispatch(notifier.Message{
		Channel:   models.ChannelEmail,
		Recipient: notifier.AdminEmail(),
		Subject:   "New award nomination: " + nomination.NomineeName,
		Body:      nominationAdminAlertBody(nomination, category.Name),
		RefID:     nomination.ID.Hex(),
	})

	nomination.PhotoURL = objectURL(photoKey)
	return nomination, nil
}

// NominationFilter narrows nomination listings.
type NominationFilter struct {
	Status     string
	CategoryID string
	// PublicOnly hides pending and rejected entries from the public site.
	PublicOnly bool
}

func ListNominations(ctx context.Context, filter NominationFilter) ([]models.Nomination, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.CategoryID != "" {
		categoryID, err := parseID(filter.CategoryID)
		if err != nil {
			return nil, err
		}
		query["category_id"] = categoryID
	}
	if filter.PublicOnly {
		query["status"] = bson.M{"$in": []string{models.StatusApproved, models.StatusWinner, models.StatusFinalist}}
	}

	cursor, err := db.GetCollection("nominations").Find(ctx, query,
		options.Find().SetSort(bson.D{{Key: "votes", Value: -1}, {Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var nominations []models.Nomination
	if err := cursor.All(ctx, &nominations); err != nil {
		return nil, err
	}
	for i := range nominations {
		nominations[i].PhotoURL = objectURL(nominations[i].PhotoKey)
	}
	return nominations, nil
}

func GetNomination(ctx context.Context, id string) (models.Nomination, error) {
	objID, err := parseID(id)
	if err != nil {
		return models.Nomination{}, err
	}

	var nomination models.Nomination
	if err := db.GetCollection("nominations").FindOne(ctx, bson.M{"_id": objID}).Decode(&nomination); err != nil {
		return models.Nomination{}, ErrNotFound
	}
	nomination.PhotoURL = objectURL(nomination.PhotoKey)
	return nomination, nil
}

// AddVote appends a ledger entry. The unique index on
// (nomination_id, voter_email) rejects duplicates atomically, so two
// concurrent submissions with the same email cannot both land.
func AddVote(ctx context.Context, nominationID, voterEmail, voterName, ipAddress string) (models.Vote, error) {
	objID, err := parseID(nominationID)
	if err != nil {
		return models.Vote{}, err
	}

	var nomination models.Nomination
	if err := db.GetCollection("nominations").FindOne(ctx, bson.M{"_id": objID}).Decode(&nomination); err != nil {
		return models.Vote{}, ErrNotFound
	}
	if !VotingOpen(nomination.Status) {
		return models.Vote{}, ErrVotingClosed
	}

	vote := models.Vote{
		ID:           primitive.NewObjectID(),
		NominationID: objID,
		VoterEmail:   NormalizeEmail(voterEmail),
		VoterName:    strings.TrimSpace(voterName),
		IPAddress:    ipAddress,
		CreatedAt:    time.Now(),
	}

	if _, err := db.GetCollection("votes").InsertOne(ctx, vote); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.Vote{}, ErrDuplicateVote
		}
		return models.Vote{}, err
	}

	_, err = db.GetCollection("nominations").UpdateOne(ctx,
		bson.M{"_id": objID},
		bson.M{"$inc": bson.M{"votes": 1}, "$set": bson.M{"updated_at": time.Now()}},
	)
	if err != nil {
		log.Error().Err(err).Str("nomination", nominationID).Msg("failed to bump vote count")
	}
	return vote, nil
}

// RemoveVote deletes a ledger entry and recounts rather than decrementing,
// so the derived count stays consistent even after manual cleanup.
func RemoveVote(ctx context.Context, nominationID, voteID string) error {
	nomID, err := parseID(nominationID)
	if err != nil {
		return err
	}
	vID, err := parseID(voteID)
	if err != nil {
		return err
	}

	result, err := db.GetCollection("votes").DeleteOne(ctx, bson.M{"_id": vID, "nomination_id": nomID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	count, err := db.GetCollection("votes").CountDocuments(ctx, bson.M{"nomination_id": nomID})
	if err != nil {
		return err
	}
	_, err = db.GetCollection("nominations").UpdateOne(ctx,
		bson.M{"_id": nomID},
		bson.M{"$set": bson.M{"votes": count, "updated_at": time.Now()}},
	)
	return err
}

// ListVotes returns the ledger for one nomination, newest first.
func ListVotes(ctx context.Context, nominationID string) ([]models.Vote, error) {
	objID, err := parseID(nominationID)
	if err != nil {
		return nil, err
	}

	cursor, err := db.GetCollection("votes").Find(ctx, bson.M{"nomination_id": objID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var votes []models.Vote
	if err := cursor.All(ctx, &votes); err != nil {
		return nil, err
	}
	return votes, nil
}

// UpdateNominationStatus validates the transition and applies it. Entering
// approved, winner or finalist kicks off certificate generation (once) and
// a nominator email. Neither side effect can fail the admin request; both
// leave durable records.
func UpdateNominationStatus(ctx context.Context, id, newStatus string) (models.Nomination, error) {
	nomination, err := GetNomination(ctx, id)
	if err != nil {
		return models.Nomination{}, err
	}

	if !ValidTransition(nomination.Status, newStatus) {
		return models.Nomination{}, ErrInvalidTransition
	}

	objID, _ := parseID(id)
	_, err = db.GetCollection("nominations").UpdateOne(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"status": newStatus, "updated_at": time.Now()}},
	)
	if err != nil {
		return models.Nomination{}, err
	}
	nomination.Status = newStatus

	var category models.AwardCategory
	db.GetCollection("award_categories").FindOne(ctx, bson.M{"_id": nomination.CategoryID}).Decode(&category)

	switch newStatus {
	case models.StatusApproved, models.StatusWinner, models.StatusFinalist:
		if nomination.CertificateFile == "" {
			go func(nom models.Nomination, categoryName string) {
				genCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()
				if _, err := GenerateCertificate(genCtx, nom, categoryName); err != nil {
					log.Error().Err(err).Str("nomination", nom.ID.Hex()).Msg("certificate generation failed")
				}
			}(nomination, category.Name)
		}
		notifier.Dispatch(notifier.Message{
			Channel:   models.ChannelEmail,
			Recipient: nomination.NominatorEmail,
			Subject:   fmt.Sprintf("Nomination update: %s", AwardTitleFor(newStatus)),
			Body:      statusChangedBody(nomination, category.Name, newStatus),
			RefID:     nomination.ID.Hex(),
		})
	case models.StatusRejected:
		notifier.Dispatch(notifier.Message{
			Channel:   models.ChannelEmail,
			Recipient: nomination.NominatorEmail,
			Subject:   "Nomination update",
			Body:      statusChangedBody(nomination, category.Name, newStatus),
			RefID:     nomination.ID.Hex(),
		})
	}

	return nomination, nil
}

// DeleteNomination cascades: photo object, vote ledger, certificate doc,
// then the nomination itself. Photo and votes go in parallel.
func DeleteNomination(ctx context.Context, id string) error {
	nomination, err := GetNomination(ctx, id)
	if err != nil {
		return err
	}
	objID, _ := parseID(id)

	photoChan := make(chan error, 1)
	votesChan := make(chan error, 1)

	go func() {
		photoChan <- deleteObject(ctx, nomination.PhotoKey)
	}()
	go func() {
		_, err := db.GetCollection("votes").DeleteMany(ctx, bson.M{"nomination_id": objID})
		votesChan <- err
	}()

	photoErr := <-photoChan
	votesErr := <-votesChan
	if photoErr != nil {
		log.Error().Err(photoErr).Str("nomination", id).Msg("failed to delete nomination photo")
	}
	if votesErr != nil {
		return votesErr
	}

	db.GetCollection("certificates").DeleteMany(ctx, bson.M{"nomination_id": objID})

	result, err := db.GetCollection("nominations").DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ListNotifications returns dispatch outcomes for the admin dashboard.
func ListNotifications(ctx context.Context) ([]models.NotificationRecord, error) {
	cursor, err := db.GetCollection("notifications").Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(200))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.NotificationRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func nominationReceivedBody(n models.Nomination, categoryName string) string {
	return fmt.Sprintf(
		"<p>Hello %s,</p><p>Your nomination of <strong>%s</strong> in the <strong>%s</strong> category has been received and is pending review.</p>",
		n.NominatorName, n.NomineeName, categoryName)
}

func nominationAdminAlertBody(n models.Nomination, categoryName string) string {
	return fmt.Sprintf(
		"<p>New nomination submitted.</p><ul><li>Nominee: %s</li><li>Category: %s</li><li>Nominator: %s (%s)</li></ul>",
		n.NomineeName, categoryName, n.NominatorName, n.NominatorEmail)
}

func statusChangedBody(n models.Nomination, categoryName, status string) string {
	if status == models.StatusRejected {
		return fmt.Sprintf(
			"<p>Hello %s,</p><p>Your nomination of <strong>%s</strong> in the <strong>%s</strong> category was not approved this time.</p>",
			n.NominatorName, n.NomineeName, categoryName)
	}
	return fmt.Sprintf(
		"<p>Hello %s,</p><p>Your nomination of <strong>%s</strong> in the <strong>%s</strong> category is now <strong>%s</strong>. Congratulations!</p>",
		n.NominatorName, n.NomineeName, categoryName, AwardTitleFor(status))
}
