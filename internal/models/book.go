package models

import (
	"time"

	"github.com/google/uuid"
)

// BookDB represents a book record in the database.
type BookDB struct {
	BookID            uuid.UUID `json:"id" db:"book_id"`                           // Primary key
	Title             string    `json:"title" db:"title"`                          // Book title
	Author            string    `json:"author" db:"author"`                        // Book author
	ISBN              string    `json:"ISBN" db:"isbn"`                            // Unique ISBN
	AvailableQuantity int       `json:"availableQuantity" db:"available_quantity"` // Copies on the shelf, never negative
	ShelfLocation     string    `json:"shelfLocation" db:"shelf_location"`         // Physical shelf location
	CreatedAt         time.Time `json:"created_at" db:"created_at"`                // Creation timestamp
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`                // Last update timestamp
}

// BookSearchFilter holds optional search criteria for books.
// Title and Author match case-insensitive prefixes, ISBN matches exactly.
type BookSearchFilter struct {
	Title  *string
	Author *string
	ISBN   *string
	Offset int
	Limit  int
}
