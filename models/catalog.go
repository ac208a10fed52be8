package models

import "time"

// Item types as they appear in itineraries, schedules and bookings.
const (
	TypeGolf       = "golf"
	TypeHotel      = "hotel"
	TypeRestaurant = "restaurant"
	TypeExperience = "experience"
	TypePackage    = "package"
)

type Coordinates struct {
	Latitude  float64 `json:"latitude,omitempty" bson:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty" bson:"longitude,omitempty"`
}

// All prices are minor currency units (cents).

type GolfCourse struct {
	CourseID    string      `json:"courseid" bson:"courseid"`
	Name        string      `json:"name" bson:"name"`
	Description string      `json:"description,omitempty" bson:"description,omitempty"`
	Holes       int         `json:"holes" bson:"holes"`
	Par         int         `json:"par,omitempty" bson:"par,omitempty"`
	GreenFee    int64       `json:"green_fee" bson:"price"`
	City        string      `json:"city,omitempty" bson:"city,omitempty"`
	Address     string      `json:"address,omitempty" bson:"address,omitempty"`
	Location    Coordinates `json:"location,omitempty" bson:"location,omitempty"`
	Banner      string      `json:"banner,omitempty" bson:"banner,omitempty"`
	Thumb       string      `json:"thumb,omitempty" bson:"thumb,omitempty"`
	Amenities   []string    `json:"amenities,omitempty" bson:"amenities,omitempty"`
	Tags        []string    `json:"tags,omitempty" bson:"tags,omitempty"`
	Rating      float64     `json:"rating,omitempty" bson:"rating,omitempty"`
	ReviewCount int         `json:"reviewcount,omitempty" bson:"reviewcount,omitempty"`
	CreatedBy   string      `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	CreatedAt   time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at" bson:"updated_at"`
}

type Hotel struct {
	HotelID       string      `json:"hotelid" bson:"hotelid"`
	Name          string      `json:"name" bson:"name"`
	Description   string      `json:"description,omitempty" bson:"description,omitempty"`
	Stars         int         `json:"stars,omitempty" bson:"stars,omitempty"`
	PricePerNight int64       `json:"price_per_night" bson:"price"`
	City          string      `json:"city,omitempty" bson:"city,omitempty"`
	Address       string      `json:"address,omitempty" bson:"address,omitempty"`
	Location      Coordinates `json:"location,omitempty" bson:"location,omitempty"`
	Banner        string      `json:"banner,omitempty" bson:"banner,omitempty"`
	Thumb         string      `json:"thumb,omitempty" bson:"thumb,omitempty"`
	Amenities     []string    `json:"amenities,omitempty" bson:"amenities,omitempty"`
	Tags          []string    `json:"tags,omitempty" bson:"tags,omitempty"`
	Rating        float64     `json:"rating,omitempty" bson:"rating,omitempty"`
	ReviewCount   int         `json:"reviewcount,omitempty" bson:"reviewcount,omitempty"`
	CreatedBy     string      `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	CreatedAt     time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at" bson:"updated_at"`
}

type Restaurant struct {
	RestaurantID string      `json:"restaurantid" bson:"restaurantid"`
	Name         string      `json:"name" bson:"name"`
	Description  string      `json:"description,omitempty" bson:"description,omitempty"`
	Cuisine      string      `json:"cuisine,omitempty" bson:"cuisine,omitempty"`
	AvgCost      int64       `json:"avg_cost" bson:"price"`
	City         string      `json:"city,omitempty" bson:"city,omitempty"`
	Address      string      `json:"address,omitempty" bson:"address,omitempty"`
	Location     Coordinates `json:"location,omitempty" bson:"location,omitempty"`
	Banner       string      `json:"banner,omitempty" bson:"banner,omitempty"`
	Thumb        string      `json:"thumb,omitempty" bson:"thumb,omitempty"`
	Tags         []string    `json:"tags,omitempty" bson:"tags,omitempty"`
	Rating       float64     `json:"rating,omitempty" bson:"rating,omitempty"`
	ReviewCount  int         `json:"reviewcount,omitempty" bson:"reviewcount,omitempty"`
	CreatedBy    string      `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	CreatedAt    time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at" bson:"updated_at"`
}

type Experience struct {
	ExperienceID string      `json:"experienceid" bson:"experienceid"`
	Name         string      `json:"name" bson:"name"`
	Description  string      `json:"description,omitempty" bson:"description,omitempty"`
	Category     string      `json:"category,omitempty" bson:"category,omitempty"`
	Price        int64       `json:"price" bson:"price"`
	DurationMin  int         `json:"duration_min,omitempty" bson:"duration_min,omitempty"`
	City         string      `json:"city,omitempty" bson:"city,omitempty"`
	Location     Coordinates `json:"location,omitempty" bson:"location,omitempty"`
	Banner       string      `json:"banner,omitempty" bson:"banner,omitempty"`
	Thumb        string      `json:"thumb,omitempty" bson:"thumb,omitempty"`
	Tags         []string    `json:"tags,omitempty" bson:"tags,omitempty"`
	Rating       float64     `json:"rating,omitempty" bson:"rating,omitempty"`
	ReviewCount  int         `json:"reviewcount,omitempty" bson:"reviewcount,omitempty"`
	CreatedBy    string      `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	CreatedAt    time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at" bson:"updated_at"`
}

// TripPackage bundles references to items in other categories. Packages are
// list-only: they are never placed on a calendar.
type TripPackage struct {
	PackageID   string    `json:"packageid" bson:"packageid"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Price       int64     `json:"price" bson:"price"`
	Nights      int       `json:"nights,omitempty" bson:"nights,omitempty"`
	CourseIDs   []string  `json:"courseids,omitempty" bson:"courseids,omitempty"`
	HotelID     string    `json:"hotelid,omitempty" bson:"hotelid,omitempty"`
	Includes    []string  `json:"includes,omitempty" bson:"includes,omitempty"`
	Banner      string    `json:"banner,omitempty" bson:"banner,omitempty"`
	Thumb       string    `json:"thumb,omitempty" bson:"thumb,omitempty"`
	Tags        []string  `json:"tags,omitempty" bson:"tags,omitempty"`
	CreatedBy   string    `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
