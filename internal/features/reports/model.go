package reports

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Report categories and statuses are stored as locale-neutral tags; the
// frontend owns their French/Arabic labels.
const (
	CategoryPerson = "person"
	CategoryObject = "object"
	CategoryAnimal = "animal"

	StatusLost  = "lost"
	StatusFound = "found"
)

// Report is a lost/found classified listing.
// @Description Lost or found report with contact details
type Report struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id" example:"507f1f77bcf86cd799439011"`
	Title       string             `bson:"title" json:"title" example:"Chien perdu"`
	Description string             `bson:"description" json:"description" example:"Berger allemand perdu près du marché capitale"`
	Category    string             `bson:"category" json:"category" example:"animal" enums:"person,object,animal"`
	SubCategory string             `bson:"subCategory,omitempty" json:"subCategory,omitempty" example:"Chien"`
	// LocationName is the French form of a city from the fixed list.
	LocationName string `bson:"locationName" json:"locationName" example:"Nouakchott"`
	Status       string `bson:"status" json:"status" example:"lost" enums:"lost,found"`
	// DateTimeLostOrFound is when the reporter lost or found the subject,
	// distinct from when the record was created.
	DateTimeLostOrFound *time.Time `bson:"dateTimeLostOrFound,omitempty" json:"dateTimeLostOrFound,omitempty" example:"2024-05-01T18:30:00Z"`
	ContactName         string     `bson:"contactName" json:"contactName" example:"Mohamed Vall"`
	ContactPhone        string     `bson:"contactPhone" json:"contactPhone" example:"+22236123456"`
	ImageURL            string     `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	ImagePublicID       string     `bson:"imagePublicId,omitempty" json:"-"`
	// CreatedAt is assigned once at insert and never modified; it is the
	// sole sort key for listings.
	CreatedAt time.Time `bson:"createdAt" json:"createdAt" example:"2024-05-01T19:00:00Z"`
}

// CreateReportRequest carries the multipart create form. The image file, if
// any, travels alongside it in the "image" form field.
type CreateReportRequest struct {
	Title               string `form:"title" example:"Chien perdu"`
	Description         string `form:"description" example:"Berger allemand perdu près du marché capitale"`
	Category            string `form:"category" example:"animal" enums:"person,object,animal"`
	SubCategory         string `form:"subCategory" example:"Chien"`
	LocationName        string `form:"locationName" example:"Nouakchott"`
	Status              string `form:"status" example:"lost" enums:"lost,found"`
	DateTimeLostOrFound string `form:"dateTimeLostOrFound" example:"2024-05-01T18:30:00Z"`
	ContactName         string `form:"contactName" example:"Mohamed Vall"`
	ContactPhone        string `form:"contactPhone" example:"+22236123456"`
}

// UpdateReportRequest is the moderation update payload. ID and createdAt are
// immutable and deliberately absent.
type UpdateReportRequest struct {
	Title               string `json:"title,omitempty"`
	Description         string `json:"description,omitempty"`
	Category            string `json:"category,omitempty" enums:"person,object,animal"`
	SubCategory         string `json:"subCategory,omitempty"`
	LocationName        string `json:"locationName,omitempty"`
	Status              string `json:"status,omitempty" enums:"lost,found"`
	DateTimeLostOrFound string `json:"dateTimeLostOrFound,omitempty"`
	ContactName         string `json:"contactName,omitempty"`
	ContactPhone        string `json:"contactPhone,omitempty"`
}
