package catalog

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"fairway/db"
	"fairway/models"
	"fairway/rdx"
	"fairway/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

const coursesCacheKey = "catalog:courses"

// GET /api/courses
func GetCourses(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := commonFilter(r)
	if holes := r.URL.Query().Get("holes"); holes != "" {
		if v, err := strconv.Atoi(holes); err == nil {
			filter["holes"] = v
		}
	}

	if cacheable(r, filter) {
		if cached, _ := rdx.RdxGet(coursesCacheKey); cached != "" {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(cached))
			return
		}
	}

	skip, limit := utils.ParsePagination(r, 10, 100)
	sort := utils.ParseSort(r.URL.Query().Get("sort"), bson.D{{Key: "name", Value: 1}}, nil)

	courses, err := utils.FindAndDecode[models.GolfCourse](ctx, db.CoursesCollection, filter, findOptions(r, skip, limit, sort))
	if err != nil {
		log.Println("GetCourses Find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve courses")
		return
	}

	if cacheable(r, filter) {
		if data, err := json.Marshal(courses); err == nil {
			rdx.RdxSetWithTTL(coursesCacheKey, string(data), 5*time.Minute)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, courses)
}

// GET /api/courses/:id
func GetCourse(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var course models.GolfCourse
	if err := db.CoursesCollection.FindOne(ctx, bson.M{"courseid": ps.ByName("id")}).Decode(&course); err != nil {
		http.Error(w, "Course not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, course)
}

// POST /api/courses
func CreateCourse(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var course models.GolfCourse
	if err := json.NewDecoder(r.Body).Decode(&course); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if course.Name == "" || course.GreenFee <= 0 {
		http.Error(w, "Missing or invalid fields", http.StatusBadRequest)
		return
	}
	if course.Holes == 0 {
		course.Holes = 18
	}

	course.CourseID = "c" + utils.GenerateRandomString(12)
	course.CreatedBy = userID
	course.CreatedAt = time.Now()
	course.UpdatedAt = time.Now()

	if _, err := db.CoursesCollection.InsertOne(ctx, course); err != nil {
		log.Println("CreateCourse insert error:", err)
		http.Error(w, "Error inserting course", http.StatusInternalServerError)
		return
	}

	rdx.RdxDel(coursesCacheKey)
	utils.RespondWithJSON(w, http.StatusCreated, course)
}

// PUT /api/courses/:id
func UpdateCourse(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var updated models.GolfCourse
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	update := bson.M{"$set": bson.M{
		"name":        updated.Name,
		"description": updated.Description,
		"holes":       updated.Holes,
		"par":         updated.Par,
		"price":       updated.GreenFee,
		"city":        updated.City,
		"address":     updated.Address,
		"location":    updated.Location,
		"amenities":   updated.Amenities,
		"tags":        updated.Tags,
		"updated_at":  time.Now(),
	}}

	res, err := db.CoursesCollection.UpdateOne(ctx, bson.M{"courseid": ps.ByName("id")}, update)
	if err != nil {
		http.Error(w, "Error updating course", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Course not found", http.StatusNotFound)
		return
	}

	rdx.RdxDel(coursesCacheKey)
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Course updated successfully"})
}

// DELETE /api/courses/:id
func DeleteCourse(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	res, err := db.CoursesCollection.DeleteOne(ctx, bson.M{"courseid": ps.ByName("id")})
	if err != nil {
		http.Error(w, "Error deleting course", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		http.Error(w, "Course not found", http.StatusNotFound)
		return
	}

	rdx.RdxDel(coursesCacheKey)
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Course deleted successfully"})
}
