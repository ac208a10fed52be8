package catalog

import (
	"net/http"
	"strconv"

	"fairway/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Shared query plumbing for every catalog category. Each category handler
// builds on commonFilter for the text/city/price axes and adds its own.

func commonFilter(r *http.Request) bson.M {
	q := r.URL.Query()
	filter := bson.M{}

	if search := q.Get("search"); search != "" {
		filter["name"] = bson.M{"$regex": search, "$options": "i"}
	}
	if city := q.Get("city"); city != "" {
		filter["city"] = city
	}

	price := bson.M{}
	if min := q.Get("minPrice"); min != "" {
		if v, err := strconv.ParseInt(min, 10, 64); err == nil {
			price["$gte"] = v
		}
	}
	if max := q.Get("maxPrice"); max != "" {
		if v, err := strconv.ParseInt(max, 10, 64); err == nil {
			price["$lte"] = v
		}
	}
	if len(price) > 0 {
		filter["price"] = price
	}

	if tags := utils.SplitTags(q.Get("tags")); len(tags) > 0 {
		filter["tags"] = bson.M{"$in": tags}
	}

	return filter
}

func findOptions(r *http.Request, skip, limit int64, sort bson.D) *options.FindOptions {
	return options.Find().SetSkip(skip).SetLimit(limit).SetSort(sort)
}

// cacheable reports whether a list request is the plain first page that the
// Redis fast path may serve.
func cacheable(r *http.Request, filter bson.M) bool {
	q := r.URL.Query()
	return len(filter) == 0 && q.Get("page") == "" && q.Get("sort") == "" && q.Get("limit") == ""
}
