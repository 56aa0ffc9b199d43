package instanceedit

import (
	"errors"
	"fmt"
)

// ErrDatabase is matched by every error of this package.
var ErrDatabase = errors.New("database error")

// ErrMissingPerson is matched by MissingPersonError.
var ErrMissingPerson = errors.New("person not found")

// DataFetchError reports a failure to read an instance from the database.
type DataFetchError struct {
	DBID int64
	Err  error
}

func (e *DataFetchError) Error() string {
	return fmt.Sprintf("could not fetch instance %d: %v", e.DBID, e.Err)
}

func (e *DataFetchError) Unwrap() error        { return e.Err }
func (e *DataFetchError) Is(target error) bool { return target == ErrDatabase }

// DataStorageError reports a failure to store a new instance.
type DataStorageError struct {
	Err error
}

func (e *DataStorageError) Error() string {
	return fmt.Sprintf("could not store instance: %v", e.Err)
}

func (e *DataStorageError) Unwrap() error        { return e.Err }
func (e *DataStorageError) Is(target error) bool { return target == ErrDatabase }

// DataUpdateError reports a failure to update a stored instance.
type DataUpdateError struct {
	DBID int64
	Err  error
}

func (e *DataUpdateError) Error() string {
	return fmt.Sprintf("could not update instance %d: %v", e.DBID, e.Err)
}

func (e *DataUpdateError) Unwrap() error        { return e.Err }
func (e *DataUpdateError) Is(target error) bool { return target == ErrDatabase }

// MissingPersonError reports that no Person exists with the requested DB_ID.
type MissingPersonError struct {
	PersonID int64
}

func (e *MissingPersonError) Error() string {
	return fmt.Sprintf("could not fetch Person entity with ID %d, please check that a Person entity exists in the database with this ID", e.PersonID)
}

func (e *MissingPersonError) Is(target error) bool {
	return target == ErrDatabase || target == ErrMissingPerson
}
