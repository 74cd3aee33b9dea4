package response

const (
	MessageNotFound     = "Not Found"
	DefaultErrorMessage = "Processing failed"

	// TimestampFormat is the wire format for every timestamp this service emits.
	TimestampFormat = "2006-01-02T15:04:05.000Z07:00"
)
