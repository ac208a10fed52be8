package catalog

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"fairway/db"
	"fairway/models"
	"fairway/rdx"
	"fairway/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

const experiencesCacheKey = "catalog:experiences"

// GET /api/experiences
func GetExperiences(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := commonFilter(r)
	if category := r.URL.Query().Get("category"); category != "" {
		filter["category"] = category
	}

	if cacheable(r, filter) {
		if cached, _ := rdx.RdxGet(experiencesCacheKey); cached != "" {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(cached))
			return
		}
	}

	skip, limit := utils.ParsePagination(r, 10, 100)
	sort := utils.ParseSort(r.URL.Query().Get("sort"), bson.D{{Key: "name", Value: 1}}, nil)

	experiences, err := utils.FindAndDecode[models.Experience](ctx, db.ExperiencesCollection, filter, findOptions(r, skip, limit, sort))
	if err != nil {
		log.Println("GetExperiences Find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve experiences")
		return
	}

	if cacheable(r, filter) {
		if data, err := json.Marshal(experiences); err == nil {
			rdx.RdxSetWithTTL(experiencesCacheKey, string(data), 5*time.Minute)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, experiences)
}

// GET /api/experiences/:id
func GetExperience(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var experience models.Experience
	if err := db.ExperiencesCollection.FindOne(ctx, bson.M{"experienceid": ps.ByName("id")}).Decode(&experience); err != nil {
		http.Error(w, "Experience not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, experience)
}

// POST /api/experiences
func CreateExperience(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var experience models.Experience
	if err := json.NewDecoder(r.Body).Decode(&experience); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if experience.Name == "" || experience.Price <= 0 {
		http.Error(w, "Missing or invalid fields", http.StatusBadRequest)
		return
	}

	experience.ExperienceID = "e" + utils.GenerateRandomString(12)
	experience.CreatedBy = userID
	experience.CreatedAt = time.Now()
	experience.UpdatedAt = time.Now()

	if _, err := db.ExperiencesCollection.InsertOne(ctx, experience); err != nil {
		log.Println("CreateExperience insert error:", err)
		http.Error(w, "Error inserting experience", http.StatusInternalServerError)
		return
	}

	rdx.RdxDel(experiencesCacheKey)
	utils.RespondWithJSON(w, http.StatusCreated, experience)
}

// PUT /api/experiences/:id
func UpdateExperience(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var updated models.Experience
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	update := bson.M{"$set": bson.M{
		"name":         updated.Name,
		"description":  updated.Description,
		"category":     updated.Category,
		"price":        updated.Price,
		"duration_min": updated.DurationMin,
		"city":         updated.City,
		"location":     updated.Location,
		"tags":         updated.Tags,
		"updated_at":   time.Now(),
	}}

	res, err := db.ExperiencesCollection.UpdateOne(ctx, bson.M{"experienceid": ps.ByName("id")}, update)
	if err != nil {
		http.Error(w, "Error updating experience", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Experience not found", http.StatusNotFound)
		return
	}

	rdx.RdxDel(experiencesCacheKey)
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Experience updated successfully"})
}

// DELETE /api/experiences/:id
func DeleteExperience(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	res, err := db.ExperiencesCollection.DeleteOne(ctx, bson.M{"experienceid": ps.ByName("id")})
	if err != nil {
		http.Error(w, "Error deleting experience", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		http.Error(w, "Experience not found", http.StatusNotFound)
		return
	}

	rdx.RdxDel(experiencesCacheKey)
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Experience deleted successfully"})
}
