package media

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"fairway/db"
	"fairway/models"
	"fairway/mq"
	"fairway/utils"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	_ "image/gif"
	_ "image/png"
)

var uploadRoot = func() string {
	if p := os.Getenv("UPLOAD_DIR"); p != "" {
		return p
	}
	return "./static/uploads"
}()

const (
	maxUploadBytes = 10 << 20
	thumbWidth     = 300
)

func catalogTarget(entityType string) (*mongo.Collection, string) {
	switch entityType {
	case models.TypeGolf:
		return db.CoursesCollection, "courseid"
	case models.TypeHotel:
		return db.HotelsCollection, "hotelid"
	case models.TypeRestaurant:
		return db.RestaurantsCollection, "restaurantid"
	case models.TypeExperience:
		return db.ExperiencesCollection, "experienceid"
	case models.TypePackage:
		return db.PackagesCollection, "packageid"
	}
	return nil, ""
}

// saveBannerWithThumb writes the original upload and a resized thumbnail,
// returning their public paths.
func saveBannerWithThumb(file io.Reader, entityType, entityID string) (string, string, error) {
	buf, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		return "", "", fmt.Errorf("failed to read file: %w", err)
	}
	if len(buf) > maxUploadBytes {
		return "", "", fmt.Errorf("file exceeds %d bytes", maxUploadBytes)
	}

	img, _, err := image.Decode(bytes.NewReader(buf))
	if err != nil {
		return "", "", fmt.Errorf("failed to decode image: %w", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() > 4000 || bounds.Dy() > 4000 {
		return "", "", fmt.Errorf("image dimensions %dx%d exceed 4000x4000", bounds.Dx(), bounds.Dy())
	}

	dir := filepath.Join(uploadRoot, entityType)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", err
	}

	name := entityID + "_" + utils.GenerateRandomString(8)
	origName := name + ".jpg"
	thumbName := name + "_thumb.jpg"

	out, err := os.Create(filepath.Join(dir, origName))
	if err != nil {
		return "", "", err
	}
	defer out.Close()
	if err := jpeg.Encode(out, img, &jpeg.Options{Quality: 90}); err != nil {
		return "", "", fmt.Errorf("failed to encode banner: %w", err)
	}

	thumbImg := imaging.Resize(img, thumbWidth, 0, imaging.Lanczos)
	thumbOut, err := os.Create(filepath.Join(dir, thumbName))
	if err != nil {
		return origName, "", err
	}
	defer thumbOut.Close()
	if err := jpeg.Encode(thumbOut, thumbImg, &jpeg.Options{Quality: 85}); err != nil {
		return origName, "", fmt.Errorf("failed to encode thumbnail: %w", err)
	}

	prefix := "/uploads/" + entityType + "/"
	return prefix + origName, prefix + thumbName, nil
}

// POST /api/media/:entityType/:entityId/banner
func UploadBanner(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	entityType := ps.ByName("entityType")
	entityID := ps.ByName("entityId")

	coll, idField := catalogTarget(entityType)
	if coll == nil {
		http.Error(w, "Unknown entity type", http.StatusBadRequest)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "Error parsing form data", http.StatusBadRequest)
		return
	}
	file, _, err := r.FormFile("banner")
	if err != nil {
		http.Error(w, "banner file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	bannerPath, thumbPath, err := saveBannerWithThumb(file, entityType, entityID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := coll.UpdateOne(ctx, bson.M{idField: entityID},
		bson.M{"$set": bson.M{"banner": bannerPath, "thumb": thumbPath, "updated_at": time.Now()}})
	if err != nil {
		http.Error(w, "Failed to update entity", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Entity not found", http.StatusNotFound)
		return
	}

	mq.Emit(ctx, mq.Event{Name: "banner-uploaded", EntityType: entityType, EntityID: entityID, UserID: userID})

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{
		"banner": bannerPath,
		"thumb":  thumbPath,
	})
}
