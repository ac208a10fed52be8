package pay

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"fairway/db"
	"fairway/models"
	"fairway/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InitIdempotencyIndexes creates the unique-key and TTL indexes.
func InitIdempotencyIndexes(ctx context.Context) error {
	idxs := []mongo.IndexModel{
		{
			Keys:    bson.M{"key": 1},
			Options: options.Index().SetUnique(true).SetName("unique_key"),
		},
		{
			Keys:    bson.M{"expires_at": 1},
			Options: options.Index().SetExpireAfterSeconds(0).SetName("ttl_expires_at"),
		},
	}
	_, err := db.IdempotencyCollection.Indexes().CreateMany(ctx, idxs)
	return err
}

func computeRequestHash(r *http.Request, bodyBytes []byte, userID string) string {
	h := sha256.New()
	h.Write([]byte(r.Method + ":" + r.URL.Path + ":" + userID + ":"))
	h.Write(bodyBytes)
	return hex.EncodeToString(h.Sum(nil))
}

// captureResponseWriter wraps http.ResponseWriter to record status and body
// for replay.
type captureResponseWriter struct {
	w           http.ResponseWriter
	statusCode  int
	buf         bytes.Buffer
	wroteHeader bool
}

func newCaptureResponseWriter(w http.ResponseWriter) *captureResponseWriter {
	return &captureResponseWriter{w: w, statusCode: http.StatusOK}
}

func (c *captureResponseWriter) Header() http.Header {
	return c.w.Header()
}

func (c *captureResponseWriter) WriteHeader(statusCode int) {
	if !c.wroteHeader {
		c.statusCode = statusCode
		c.w.WriteHeader(statusCode)
		c.wroteHeader = true
	}
}

func (c *captureResponseWriter) Write(b []byte) (int, error) {
	c.buf.Write(b)
	return c.w.Write(b)
}

func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if we, ok := err.(mongo.WriteException); ok {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 {
				return true
			}
		}
	}
	return false
}

// Idempotency gives mutating endpoints safe replay behavior when the client
// sends an Idempotency-Key header:
//   - no header: pass-through
//   - first sighting of a key: run the handler, cache its response
//   - replay with the same key and body: return the cached response
//   - replay with the same key but a different body: 409 Conflict
//   - key inserted but response not yet recorded (in flight): run the
//     handler, which must itself be idempotent at the DB level
func Idempotency(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		key := r.Header.Get("Idempotency-Key")
		if key == "" {
			next(w, r, ps)
			return
		}

		userID := utils.GetUserIDFromRequest(r)

		// Cap body at 1 MB
		bodyBytes, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
		if err != nil {
			http.Error(w, "failed to read request body", http.StatusBadRequest)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(bodyBytes))

		reqHash := computeRequestHash(r, bodyBytes, userID)
		now := time.Now()
		rec := models.IdempotencyRecord{
			Key:         key,
			Method:      r.Method,
			Path:        r.URL.Path,
			UserID:      userID,
			RequestHash: reqHash,
			CreatedAt:   now,
			ExpiresAt:   now.Add(24 * time.Hour),
		}

		ctx := r.Context()
		_, err = db.IdempotencyCollection.InsertOne(ctx, rec)
		if err == nil {
			crw := newCaptureResponseWriter(w)
			next(crw, r, ps)

			var parsed interface{}
			if err := json.Unmarshal(crw.buf.Bytes(), &parsed); err != nil {
				parsed = crw.buf.String()
			}

			responseObj := map[string]interface{}{
				"status": crw.statusCode,
				"body":   parsed,
			}

			_, _ = db.IdempotencyCollection.UpdateOne(ctx,
				bson.M{"key": key},
				bson.M{"$set": bson.M{"response": responseObj}},
			)
			return
		}

		if !isDuplicateKeyError(err) {
			http.Error(w, "idempotency lookup error", http.StatusInternalServerError)
			return
		}

		var existing models.IdempotencyRecord
		if err := db.IdempotencyCollection.FindOne(ctx, bson.M{"key": key}).Decode(&existing); err != nil {
			http.Error(w, "idempotency lookup error", http.StatusInternalServerError)
			return
		}

		if existing.RequestHash != reqHash {
			http.Error(w, "idempotency-key conflict", http.StatusConflict)
			return
		}

		if existing.Response != nil {
			statusFloat, _ := existing.Response["status"].(float64)
			status := int(statusFloat)
			if status == 0 {
				if s, ok := existing.Response["status"].(int32); ok {
					status = int(s)
				}
			}
			utils.RespondWithJSON(w, status, existing.Response["body"])
			return
		}

		// In-flight request with the same key; let the handler run.
		next(w, r, ps)
	}
}
