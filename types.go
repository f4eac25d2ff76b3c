package todod

import (
	"errors"
	"fmt"
	"regexp"
)

// Item is a single todo entry. ID is minted server-side at creation and
// never reassigned; Completed is the only field that changes afterwards.
type Item struct {
	ID        string `json:"id" dynamodbav:"id"`
	Title     string `json:"title" dynamodbav:"title"`
	Completed bool   `json:"completed" dynamodbav:"completed"`
}

// CreateItemRequest is the body of a create call.
type CreateItemRequest struct {
	Title string `json:"title" validate:"required"`
}

// UpdateItemRequest is the body of an update call. Completed is a pointer
// so that an absent field is distinguishable from an explicit false.
type UpdateItemRequest struct {
	ID        string `json:"id" validate:"required"`
	Completed *bool  `json:"completed" validate:"required"`
}

// DeleteItemRequest is the body of a delete call.
type DeleteItemRequest struct {
	ID string `json:"id" validate:"required"`
}

// DeleteResult confirms a delete. Delete is idempotent, so the same
// confirmation is returned whether or not the id existed.
type DeleteResult struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// Tables holds the configurable table name for item storage.
type Tables struct {
	Items string `mapstructure:"items"`
}

var validTableNameRegex = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_.-]*$`)

// IsValidTableName checks if a table name is valid (alphanumeric with
// underscores, dots and dashes, max 255 chars).
func IsValidTableName(name string) bool {
	return validTableNameRegex.MatchString(name) && len(name) <= 255
}

// Validate checks that the items table name is set and valid.
func (t Tables) Validate() error {
	if t.Items == "" {
		return errors.New("validate tables: items table name cannot be empty")
	}

	if !IsValidTableName(t.Items) {
		return fmt.Errorf("validate tables: invalid items table name: %s", t.Items)
	}

	return nil
}
