package reviews

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"fairway/db"
	"fairway/models"
	"fairway/mq"
	"fairway/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var reviewable = map[string]*mongo.Collection{}

func entityCollection(entityType string) *mongo.Collection {
	if len(reviewable) == 0 {
		reviewable = map[string]*mongo.Collection{
			models.TypeGolf:       db.CoursesCollection,
			models.TypeHotel:      db.HotelsCollection,
			models.TypeRestaurant: db.RestaurantsCollection,
			models.TypeExperience: db.ExperiencesCollection,
		}
	}
	return reviewable[entityType]
}

func entityIDField(entityType string) string {
	switch entityType {
	case models.TypeGolf:
		return "courseid"
	case models.TypeHotel:
		return "hotelid"
	case models.TypeRestaurant:
		return "restaurantid"
	case models.TypeExperience:
		return "experienceid"
	}
	return ""
}

// GET /api/reviews/:entityType/:entityId
func GetReviews(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	entityType := ps.ByName("entityType")
	entityID := ps.ByName("entityId")

	skip, limit := utils.ParsePagination(r, 10, 100)
	sort := utils.ParseSort(r.URL.Query().Get("sort"), bson.D{{Key: "created_at", Value: -1}}, nil)

	filter := bson.M{"entity_type": entityType, "entity_id": entityID}
	opts := options.Find().SetSkip(skip).SetLimit(limit).SetSort(sort)

	list, err := utils.FindAndDecode[models.Review](ctx, db.ReviewsCollection, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve reviews")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"reviews": list})
}

// GET /api/reviews/:entityType/:entityId/:reviewId
func GetReview(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var review models.Review
	err := db.ReviewsCollection.FindOne(ctx, bson.M{"reviewid": ps.ByName("reviewId")}).Decode(&review)
	if err != nil {
		http.Error(w, "Review not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, review)
}

// POST /api/reviews/:entityType/:entityId
func AddReview(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	entityType := ps.ByName("entityType")
	entityID := ps.ByName("entityId")

	coll := entityCollection(entityType)
	if coll == nil {
		http.Error(w, "Entity type does not accept reviews", http.StatusBadRequest)
		return
	}
	count, err := coll.CountDocuments(ctx, bson.M{entityIDField(entityType): entityID})
	if err != nil || count == 0 {
		http.Error(w, "Entity not found", http.StatusNotFound)
		return
	}

	existing, err := db.ReviewsCollection.CountDocuments(ctx, bson.M{
		"userid":      userID,
		"entity_type": entityType,
		"entity_id":   entityID,
	})
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if existing > 0 {
		http.Error(w, "You have already reviewed this item", http.StatusConflict)
		return
	}

	var review models.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil || review.Rating < 1 || review.Rating > 5 || review.Content == "" {
		http.Error(w, "Invalid review data", http.StatusBadRequest)
		return
	}

	review.ReviewID = utils.GenerateRandomString(16)
	review.EntityType = entityType
	review.EntityID = entityID
	review.UserID = userID
	review.CreatedAt = time.Now()
	review.UpdatedAt = review.CreatedAt

	if _, err := db.ReviewsCollection.InsertOne(ctx, review); err != nil {
		http.Error(w, "Failed to save review", http.StatusInternalServerError)
		return
	}

	// Keep the catalog card's aggregate fresh.
	updateAggregate(ctx, entityType, entityID)
	mq.Emit(ctx, mq.Event{Name: "review-added", EntityType: entityType, EntityID: entityID, UserID: userID})

	utils.RespondWithJSON(w, http.StatusCreated, review)
}

// PUT /api/reviews/:entityType/:entityId/:reviewId
func EditReview(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var patch struct {
		Rating  int    `json:"rating"`
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil || patch.Rating < 1 || patch.Rating > 5 || patch.Content == "" {
		http.Error(w, "Invalid review data", http.StatusBadRequest)
		return
	}

	res, err := db.ReviewsCollection.UpdateOne(ctx,
		bson.M{"reviewid": ps.ByName("reviewId"), "userid": userID},
		bson.M{"$set": bson.M{"rating": patch.Rating, "content": patch.Content, "updated_at": time.Now()}})
	if err != nil {
		http.Error(w, "Failed to update review", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Review not found", http.StatusNotFound)
		return
	}

	updateAggregate(ctx, ps.ByName("entityType"), ps.ByName("entityId"))
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// DELETE /api/reviews/:entityType/:entityId/:reviewId
func DeleteReview(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	res, err := db.ReviewsCollection.DeleteOne(ctx, bson.M{"reviewid": ps.ByName("reviewId"), "userid": userID})
	if err != nil {
		http.Error(w, "Failed to delete review", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		http.Error(w, "Review not found", http.StatusNotFound)
		return
	}

	updateAggregate(ctx, ps.ByName("entityType"), ps.ByName("entityId"))
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// updateAggregate recomputes rating/reviewcount on the catalog document.
func updateAggregate(ctx context.Context, entityType, entityID string) {
	coll := entityCollection(entityType)
	if coll == nil {
		return
	}

	cursor, err := db.ReviewsCollection.Aggregate(ctx, mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"entity_type": entityType, "entity_id": entityID}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"avg":   bson.M{"$avg": "$rating"},
			"count": bson.M{"$sum": 1},
		}}},
	})
	if err != nil {
		return
	}
	defer cursor.Close(ctx)

	avg, count := 0.0, 0
	if cursor.Next(ctx) {
		var agg struct {
			Avg   float64 `bson:"avg"`
			Count int     `bson:"count"`
		}
		if err := cursor.Decode(&agg); err == nil {
			avg, count = agg.Avg, agg.Count
		}
	}

	coll.UpdateOne(ctx, bson.M{entityIDField(entityType): entityID},
		bson.M{"$set": bson.M{"rating": avg, "reviewcount": count}})
}
