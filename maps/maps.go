package maps

import (
	"context"
	"net/http"
	"time"

	"fairway/db"
	"fairway/models"
	"fairway/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var defaultTypeLabels = map[string]string{
	models.TypeGolf:       "Golf Course",
	models.TypeHotel:      "Hotel",
	models.TypeRestaurant: "Restaurant",
	models.TypeExperience: "Experience",
}

// GET /api/maps/:city
func GetMapConfig(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	city := ps.ByName("city")

	var cfg models.MapConfig
	err := db.MapsCollection.FindOne(ctx, bson.M{"city": city}).Decode(&cfg)
	if err == mongo.ErrNoDocuments {
		// No curated config for this city; hand back a neutral one so the
		// client can still render markers.
		cfg = models.MapConfig{City: city, Zoom: 12}
	} else if err != nil {
		http.Error(w, "Failed to load map config", http.StatusInternalServerError)
		return
	}
	if cfg.TypeLabels == nil {
		cfg.TypeLabels = defaultTypeLabels
	}

	utils.RespondWithJSON(w, http.StatusOK, cfg)
}

// GET /api/maps/:city/markers?type=golf
func GetMarkers(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	city := ps.ByName("city")
	wantType := r.URL.Query().Get("type")

	var markers []models.Marker
	appendMarkers(ctx, &markers, wantType, models.TypeGolf, db.CoursesCollection, "courseid", bson.M{"city": city})
	appendMarkers(ctx, &markers, wantType, models.TypeHotel, db.HotelsCollection, "hotelid", bson.M{"city": city})
	appendMarkers(ctx, &markers, wantType, models.TypeRestaurant, db.RestaurantsCollection, "restaurantid", bson.M{"city": city})
	appendMarkers(ctx, &markers, wantType, models.TypeExperience, db.ExperiencesCollection, "experienceid", bson.M{"city": city})

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"city":    city,
		"markers": markers,
	})
}

// appendMarkers pulls id/name/location for one category, skipping entries
// without coordinates.
func appendMarkers(ctx context.Context, out *[]models.Marker, wantType, markerType string, coll *mongo.Collection, idField string, filter bson.M) {
	if wantType != "" && wantType != markerType {
		return
	}

	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var doc struct {
			ID       string             `bson:"-"`
			Name     string             `bson:"name"`
			Location models.Coordinates `bson:"location"`
			Raw      bson.M             `bson:",inline"`
		}
		if err := cursor.Decode(&doc); err != nil {
			continue
		}
		id, _ := doc.Raw[idField].(string)
		if id == "" || (doc.Location.Latitude == 0 && doc.Location.Longitude == 0) {
			continue
		}
		*out = append(*out, models.Marker{
			ID:       id,
			Name:     doc.Name,
			Type:     markerType,
			Location: doc.Location,
		})
	}
}
