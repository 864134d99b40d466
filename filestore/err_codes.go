package filestore

// Error codes for file retrieval operations.
const (
	// CodeEmptyPath is returned when the requested path is empty.
	CodeEmptyPath = "EMPTY_PATH"

	// CodeInvalidQuality is returned when a caller-supplied compression
	// quality is outside the [1, 100] range.
	CodeInvalidQuality = "INVALID_QUALITY"

	// CodeInvalidDimensions is returned when caller-supplied derivative
	// dimensions are not positive.
	CodeInvalidDimensions = "INVALID_DIMENSIONS"

	// CodeBatchTooLarge is returned when a batch request exceeds the
	// configured maximum item count.
	CodeBatchTooLarge = "BATCH_TOO_LARGE"

	// CodeInvalidBatchOperation is returned when a batch request names an
	// unknown operation.
	CodeInvalidBatchOperation = "INVALID_BATCH_OPERATION"

	// CodeReadFailed is returned when a file that resolved successfully can
	// no longer be read (race with deletion, permission change, disk error).
	CodeReadFailed = "READ_FAILED"

	// CodeTransformFailed marks image decode/encode failures. It never
	// surfaces to callers; the original bytes are served instead.
	CodeTransformFailed = "TRANSFORM_FAILED"

	// CodeEncodeUnsupported marks raster formats the service can decode but
	// not re-encode. Handled the same way as CodeTransformFailed.
	CodeEncodeUnsupported = "ENCODE_UNSUPPORTED"
)
