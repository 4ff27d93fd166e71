package shared

type Error string

// Implement the error interface
func (e Error) Error() string { return string(e) }

//------------
// Definitions
//------------

// cli errors
const (
	ErrorCreateFile = Error("could not create the file")
	ErrorEncodeFile = Error("could not encode to file")
)

// index errors
const (
	ErrEntryNotFound  = Error("media entry not found")
	ErrSchemaOutdated = Error("database schema is outdated")
)

// boundary errors
const (
	ErrInvalidArgument = Error("invalid argument")
	ErrInvalidPath     = Error("invalid path")
)
