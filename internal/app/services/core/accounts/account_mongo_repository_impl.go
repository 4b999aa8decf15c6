package accounts

import (
	"context"
	"errors"

	"telecheck-service/internal/app/contracts"
	"telecheck-service/internal/app/models"
	"telecheck-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const accountCollection = "accounts"

type accountMongoRepository struct {
	collection *mongo.Collection
}

func NewAccountMongoRepository(db *mongo.Database) contracts.AccountRepository {
	return &accountMongoRepository{collection: db.Collection(accountCollection)}
}

func (r *accountMongoRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	filter := bson.M{"email": email, "deletedAt": nil}

	account := new(models.Account)
	err := r.collection.FindOne(ctx, filter).Decode(account)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return account, nil
}
