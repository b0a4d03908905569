package services

import (
	"context"
	"errors"
	"testing"

	"github.com/saphaniox/sap-technologies.ug-sub002/internal/db"
	"github.com/saphaniox/sap-technologies.ug-sub002/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

// useMockDB points the package at the mocked deployment for one subtest.
func useMockDB(mt *mtest.T) func() {
	orig := db.Mongo
	db.Mongo = mt.DB
	return func() { db.Mongo = orig }
}

func nominationDoc(id primitive.ObjectID, status string) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "nominee_name", Value: "Jane Doe"},
		{Key: "photo_key", Value: "nominations/abc_photo.jpg"},
		{Key: "category_id", Value: primitive.NewObjectID()},
		{Key: "nominator_name", Value: "John Smith"},
		{Key: "nominator_email", Value: "john@example.com"},
		{Key: "status", Value: status},
		{Key: "votes", Value: int64(0)},
	}
}

func TestAddVote(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("duplicate email maps to ErrDuplicateVote", func(mt *mtest.T) {
		defer useMockDB(mt)()
		nomID := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "sap.nominations", mtest.FirstBatch, nominationDoc(nomID, models.StatusApproved)),
			mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "E11000 duplicate key error"}),
		)

		_, err := AddVote(context.Background(), nomID.Hex(), "Voter@Example.com", "Voter", "1.2.3.4")
		if !errors.Is(err, ErrDuplicateVote) {
			mt.Errorf("err = %v, want ErrDuplicateVote", err)
		}
	})

	mt.Run("stores the normalized voter email", func(mt *mtest.T) {
		defer useMockDB(mt)()
		nomID := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "sap.nominations", mtest.FirstBatch, nominationDoc(nomID, models.StatusWinner)),
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(),
		)

		vote, err := AddVote(context.Background(), nomID.Hex(), "  Voter@Example.COM ", " Voter ", "1.2.3.4")
		if err != nil {
			mt.Fatalf("AddVote: %v", err)
		}
		if vote.VoterEmail != "voter@example.com" {
			mt.Errorf("voter email = %q, want normalized form", vote.VoterEmail)
		}
		if vote.NominationID != nomID {
			mt.Errorf("nomination id = %s, want %s", vote.NominationID.Hex(), nomID.Hex())
		}
	})

	mt.Run("pending nomination does not accept votes", func(mt *mtest.T) {
		defer useMockDB(mt)()
		nomID := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, "sap.nominations", mtest.FirstBatch, nominationDoc(nomID, models.StatusPending)),
		)

		_, err := AddVote(context.Background(), nomID.Hex(), "voter@example.com", "Voter", "1.2.3.4")
		if !errors.Is(err, ErrVotingClosed) {
			mt.Errorf("err = %v, want ErrVotingClosed", err)
		}
	})

	mt.Run("unknown nomination", func(mt *mtest.T) {
		defer useMockDB(mt)()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "sap.nominations", mtest.FirstBatch),
		)

		_, err := AddVote(context.Background(), primitive.NewObjectID().Hex(), "voter@example.com", "Voter", "1.2.3.4")
		if !errors.Is(err, ErrNotFound) {
			mt.Errorf("err = %v, want ErrNotFound", err)
		}
	})
}

func TestRemoveVote(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("sets the count to the recounted ledger size", func(mt *mtest.T) {
		defer useMockDB(mt)()
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateCursorResponse(0, "sap.votes", mtest.FirstBatch, bson.D{{Key: "n", Value: int64(3)}}),
			mtest.CreateSuccessResponse(),
		)

		err := RemoveVote(context.Background(), primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex())
		if err != nil {
			mt.Fatalf("RemoveVote: %v", err)
		}

		var updateCmd bson.Raw
		for {
			evt := mt.GetStartedEvent()
			if evt == nil {
				break
			}
			if evt.CommandName == "update" {
				updateCmd = evt.Command
			}
		}
		if updateCmd == nil {
			mt.Fatal("no update command issued")
		}
		stmts, err := updateCmd.Lookup("updates").Array().Values()
		if err != nil || len(stmts) == 0 {
			mt.Fatalf("reading update statements: %v", err)
		}
		if votes, ok := stmts[0].Document().Lookup("u", "$set", "votes").AsInt64OK(); !ok || votes != 3 {
			mt.Errorf("votes set to %d, want the recounted 3", votes)
		}
	})

	mt.Run("missing vote", func(mt *mtest.T) {
		defer useMockDB(mt)()
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
		)

		err := RemoveVote(context.Background(), primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex())
		if !errors.Is(err, ErrNotFound) {
			mt.Errorf("err = %v, want ErrNotFound", err)
		}
	})
}

func TestDeleteCategoryInUse(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("category with nominations is kept", func(mt *mtest.T) {
		defer useMockDB(mt)()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "sap.nominations", mtest.FirstBatch, bson.D{{Key: "n", Value: int64(2)}}),
		)

		err := DeleteCategory(context.Background(), primitive.NewObjectID().Hex())
		if !errors.Is(err, ErrCategoryInUse) {
			mt.Errorf("err = %v, want ErrCategoryInUse", err)
		}
	})
}

func TestUpdateNominationStatusRejectsInvalidTransition(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("pending cannot jump to winner", func(mt *mtest.T) {
		defer useMockDB(mt)()
		nomID := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, "sap.nominations", mtest.FirstBatch, nominationDoc(nomID, models.StatusPending)),
		)

		_, err := UpdateNominationStatus(context.Background(), nomID.Hex(), models.StatusWinner)
		if !errors.Is(err, ErrInvalidTransition) {
			mt.Errorf("err = %v, want ErrInvalidTransition", err)
		}

		for {
			evt := mt.GetStartedEvent()
			if evt == nil {
				break
			}
			if evt.CommandName == "update" {
				mt.Error("rejected transition must not write the nomination")
			}
		}
	})
}
