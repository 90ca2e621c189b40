package errors

import "net/http"

var (
	ErrDatasetNotFound = New(
		"DATASET_NOT_FOUND",
		"Dataset file not found",
		http.StatusInternalServerError,
	)

	ErrDatasetParse = New(
		"DATASET_PARSE_ERROR",
		"Dataset file could not be parsed",
		http.StatusInternalServerError,
	)

	ErrMalformedGeometry = New(
		"MALFORMED_GEOMETRY",
		"Malformed well-known-text geometry",
		http.StatusInternalServerError,
	)

	ErrMalformedLink = New(
		"MALFORMED_LINK",
		"Malformed sharing link",
		http.StatusInternalServerError,
	)

	ErrInsufficientData = New(
		"INSUFFICIENT_DATA",
		"Not enough rows to draw the requested sample",
		http.StatusUnprocessableEntity,
	)

	ErrDatasetNotLoaded = New(
		"DATASET_NOT_LOADED",
		"Datasets have not been loaded yet",
		http.StatusServiceUnavailable,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
