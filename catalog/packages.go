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

const packagesCacheKey = "catalog:packages"

// GET /api/packages
func GetPackages(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := commonFilter(r)

	if cacheable(r, filter) {
		if cached, _ := rdx.RdxGet(packagesCacheKey); cached != "" {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(cached))
			return
		}
	}

	skip, limit := utils.ParsePagination(r, 10, 100)
	sort := utils.ParseSort(r.URL.Query().Get("sort"), bson.D{{Key: "name", Value: 1}}, nil)

	packages, err := utils.FindAndDecode[models.TripPackage](ctx, db.PackagesCollection, filter, findOptions(r, skip, limit, sort))
	if err != nil {
		log.Println("GetPackages Find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve packages")
		return
	}

	if cacheable(r, filter) {
		if data, err := json.Marshal(packages); err == nil {
			rdx.RdxSetWithTTL(packagesCacheKey, string(data), 5*time.Minute)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, packages)
}

// GET /api/packages/:id
func GetPackage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var pkg models.TripPackage
	if err := db.PackagesCollection.FindOne(ctx, bson.M{"packageid": ps.ByName("id")}).Decode(&pkg); err != nil {
		http.Error(w, "Package not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, pkg)
}

// POST /api/packages
func CreatePackage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var pkg models.TripPackage
	if err := json.NewDecoder(r.Body).Decode(&pkg); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if pkg.Name == "" || pkg.Price <= 0 {
		http.Error(w, "Missing or invalid fields", http.StatusBadRequest)
		return
	}

	pkg.PackageID = "p" + utils.GenerateRandomString(12)
	pkg.CreatedBy = userID
	pkg.CreatedAt = time.Now()
	pkg.UpdatedAt = time.Now()

	if _, err := db.PackagesCollection.InsertOne(ctx, pkg); err != nil {
		log.Println("CreatePackage insert error:", err)
		http.Error(w, "Error inserting package", http.StatusInternalServerError)
		return
	}

	rdx.RdxDel(packagesCacheKey)
	utils.RespondWithJSON(w, http.StatusCreated, pkg)
}

// DELETE /api/packages/:id
func DeletePackage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	res, err := db.PackagesCollection.DeleteOne(ctx, bson.M{"packageid": ps.ByName("id")})
	if err != nil {
		http.Error(w, "Error deleting package", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		http.Error(w, "Package not found", http.StatusNotFound)
		return
	}

	rdx.RdxDel(packagesCacheKey)
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Package deleted successfully"})
}
