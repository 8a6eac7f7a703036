package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gamestore/game-store-api/internal/core/domain"
)

const gamesCollection = "games"

type GameRepository struct {
	coll *mongo.Collection
}

func NewGameRepository(db *mongo.Database) *GameRepository {
	return &GameRepository{coll: db.Collection(gamesCollection)}
}

type gameDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Price       float64            `bson:"price"`
	CreatedAt   int64              `bson:"created_at"`
}

func (d gameDoc) toDomain() domain.Game {
	return domain.Game{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Price:       d.Price,
		CreatedAt:   unixToTime(d.CreatedAt),
	}
}

// Insert persists a new catalog entry and returns it with the assigned id.
func (r *GameRepository) Insert(ctx context.Context, game *domain.Game) (*domain.Game, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := gameDoc{
		Title:       game.Title,
		Description: game.Description,
		Price:       game.Price,
		CreatedAt:   game.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert game: %w", err)
	}

	oid, _ := res.InsertedID.(primitive.ObjectID)
	created := *game
	created.ID = oid.Hex()
	return &created, nil
}

// FindAll returns every catalog entry in store order.
func (r *GameRepository) FindAll(ctx context.Context) ([]domain.Game, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []gameDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode games: %w", err)
	}

	games := make([]domain.Game, 0, len(docs))
	for _, d := range docs {
		games = append(games, d.toDomain())
	}
	return games, nil
}

// FindByID retrieves a catalog entry by its hex id. A malformed id is
// indistinguishable from a missing one: both yield domain.ErrGameNotFound.
func (r *GameRepository) FindByID(ctx context.Context, id string) (*domain.Game, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrGameNotFound
	}

	var doc gameDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrGameNotFound
		}
		return nil, fmt.Errorf("find game: %w", err)
	}

	game := doc.toDomain()
	return &game, nil
}
