// Package instanceedit records who changed the curation database and when.
//
// Every insert made by a release step is attributed to an InstanceEdit: a
// database object whose author is a Person, stamped with the time of the
// change and a note naming the step that made it.
package instanceedit

import (
	"context"
	"fmt"
	"strings"
	"time"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o mocks/adaptor.go . Adaptor

const (
	ClassPerson       = "Person"
	ClassInstanceEdit = "InstanceEdit"

	// DateTimeLayout is how the dateTime attribute of an InstanceEdit is stored.
	DateTimeLayout = "2006-01-02 15:04:05"
)

// Instance is a database object. Author, DateTime and Note are only set on InstanceEdits.
type Instance struct {
	DBID        int64
	SchemaClass string
	DisplayName string

	Author   *Instance
	DateTime time.Time
	Note     string
}

// Adaptor is the access to the curation database needed to create InstanceEdits.
type Adaptor interface {
	// FetchInstance returns nil and no error when no object has the DB_ID.
	FetchInstance(ctx context.Context, dbID int64) (*Instance, error)
	// StoreInstance inserts a new object and returns its DB_ID.
	StoreInstance(ctx context.Context, instance *Instance) (int64, error)
	UpdateInstance(ctx context.Context, instance *Instance) error
}

// CreateDefault builds an InstanceEdit authored by the Person personID, dated now and carrying note.
// The InstanceEdit is stored, and its DBID set, when needStore is true.
func CreateDefault(ctx context.Context, adaptor Adaptor, personID int64, needStore bool, note string, now time.Time) (*Instance, error) {
	person, err := adaptor.FetchInstance(ctx, personID)
	if err != nil {
		return nil, &DataFetchError{DBID: personID, Err: err}
	}
	if person == nil {
		return nil, &MissingPersonError{PersonID: personID}
	}

	edit := &Instance{
		SchemaClass: ClassInstanceEdit,
		Author:      person,
		DateTime:    now.Truncate(time.Second),
		Note:        note,
	}
	edit.DisplayName = DisplayName(edit)

	if needStore {
		dbID, err := adaptor.StoreInstance(ctx, edit)
		if err != nil {
			return nil, &DataStorageError{Err: err}
		}
		edit.DBID = dbID
	}

	return edit, nil
}

// Create stores an InstanceEdit noted "Inserted by <creatorName>" and updates it once stored.
// creatorName should name the program or step making the change.
func Create(ctx context.Context, adaptor Adaptor, personID int64, creatorName string) (*Instance, error) {
	edit, err := CreateDefault(ctx, adaptor, personID, true, "Inserted by "+creatorName, time.Now())
	if err != nil {
		return nil, err
	}

	if err := adaptor.UpdateInstance(ctx, edit); err != nil {
		return nil, &DataUpdateError{DBID: edit.DBID, Err: err}
	}

	return edit, nil
}

// DisplayName is the name shown for an InstanceEdit: its author followed by the date.
func DisplayName(edit *Instance) string {
	var parts []string
	if edit.Author != nil && edit.Author.DisplayName != "" {
		parts = append(parts, edit.Author.DisplayName)
	}
	if !edit.DateTime.IsZero() {
		parts = append(parts, edit.DateTime.Format(time.DateOnly))
	}
	if len(parts) == 0 {
		return fmt.Sprintf("%s %d", edit.SchemaClass, edit.DBID)
	}
	return strings.Join(parts, ", ")
}
