package dataset

import (
	"errors"
	"fmt"
)

// TeamNotFoundError reports a lookup for a team id absent from the
// team directory.
type TeamNotFoundError struct {
	ID int
}

func (e *TeamNotFoundError) Error() string {
	return fmt.Sprintf("team %d not found", e.ID)
}

// AsTeamNotFoundError attempts to unwrap an error into a TeamNotFoundError.
func AsTeamNotFoundError(err error) (*TeamNotFoundError, bool) {
	var tnfErr *TeamNotFoundError
	if errors.As(err, &tnfErr) {
		return tnfErr, true
	}
	return nil, false
}

// SchemaError reports loaded data whose columns do not match the
// expected schema.
type SchemaError struct {
	File   string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("schema: %s", e.Reason)
	}
	return fmt.Sprintf("schema %s: %s", e.File, e.Reason)
}

// AsSchemaError attempts to unwrap an error into a SchemaError.
func AsSchemaError(err error) (*SchemaError, bool) {
	var schemaErr *SchemaError
	if errors.As(err, &schemaErr) {
		return schemaErr, true
	}
	return nil, false
}
