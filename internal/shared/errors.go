package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Track record rejections
	ErrNotRecord     = fmt.Errorf("not a track record")
	ErrInvalidTitle  = fmt.Errorf("title is not a string")
	ErrInvalidArtist = fmt.Errorf("artist is not a string")
	ErrInvalidYear   = fmt.Errorf("year is not a finite number")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
