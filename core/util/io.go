package util

import (
	"errors"
	"io"
)

/*
Closes all given io.Closers, ignoring nils. If priorErr is not nil it
is returned once everything is closed; otherwise the first error hit
while closing is.
*/
func CloseWhileHandlingError(priorErr error, objects ...io.Closer) error {
	var first error
	for _, object := range objects {
		if object == nil {
			continue
		}
		if err := object.Close(); err != nil && first == nil {
			first = err
		}
	}
	if priorErr != nil {
		return priorErr
	}
	return first
}

func CloseWhileSuppressingError(objects ...io.Closer) {
	for _, object := range objects {
		if object != nil {
			object.Close() // ignore error
		}
	}
}

/* Closes all given io.Closers, joining every error hit. */
func Close(objects ...io.Closer) error {
	var errs []error
	for _, object := range objects {
		if object == nil {
			continue
		}
		if err := object.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type FileDeleter interface {
	DeleteFile(name string) error
}

/* Deletes all given files, suppressing all errors. */
func DeleteFilesIgnoringErrors(dir FileDeleter, files ...string) {
	for _, name := range files {
		dir.DeleteFile(name) // ignore error
	}
}
