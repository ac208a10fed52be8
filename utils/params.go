package utils

import (
	"net/http"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
)

// ParsePagination reads ?page= and ?limit= and returns Mongo skip/limit.
func ParsePagination(r *http.Request, defaultLimit, maxLimit int64) (skip, limit int64) {
	q := r.URL.Query()

	page, _ := strconv.ParseInt(q.Get("page"), 10, 64)
	if page < 1 {
		page = 1
	}

	limit, _ = strconv.ParseInt(q.Get("limit"), 10, 64)
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return (page - 1) * limit, limit
}

// ParseSort maps a ?sort= value onto a Mongo sort document. Unknown values
// fall back to the given default. allowed maps query values to field names;
// a nil map allows the built-in price/rating/name set.
func ParseSort(sortParam string, def bson.D, allowed map[string]bson.D) bson.D {
	if allowed == nil {
		allowed = map[string]bson.D{
			"price_asc":  {{Key: "price", Value: 1}},
			"price_desc": {{Key: "price", Value: -1}},
			"rating":     {{Key: "rating", Value: -1}},
			"name":       {{Key: "name", Value: 1}},
			"newest":     {{Key: "created_at", Value: -1}},
		}
	}
	if d, ok := allowed[sortParam]; ok {
		return d
	}
	return def
}
