package models

import "time"

// DefaultPhoto is assigned to new accounts until a photo is uploaded.
const DefaultPhoto = "/public/images/profile-picture.png"

// MaxFavouriteCategories bounds the favourites subset.
const MaxFavouriteCategories = 4

// DefaultCategories seeds every new account's category list.
var DefaultCategories = []string{
	"Groceries",
	"Clothes",
	"Electronics",
	"Health & Beauty",
	"Restaurants",
	"Pharmacy",
	"Toys & Games",
	"Fitness",
	"Other",
}

// User is an account record. FavouriteCategories is always a subset of
// Categories; names within both lists are unique case-insensitively.
type User struct {
	ID                  int       `json:"id"`
	Username            string    `json:"username"`
	Email               string    `json:"email"`
	PasswordHash        string    `json:"-"` // don't expose hash
	Name                string    `json:"name,omitempty"`
	Surname             string    `json:"surname,omitempty"`
	Bio                 string    `json:"bio,omitempty"`
	Location            string    `json:"location,omitempty"`
	Photo               string    `json:"photo"`
	Categories          []string  `json:"categories"`
	FavouriteCategories []string  `json:"favouriteCategories"`
	CreatedAt           time.Time `json:"joined"`
}
