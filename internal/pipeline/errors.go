package pipeline

// #region errors
import "errors"

var (
	// ErrNoReference is returned when frames arrive before any session
	// has been started with a reference snapshot.
	ErrNoReference = errors.New("pipeline: no reference set")

	// ErrSessionEnded is returned for frames submitted after EndSession
	// and before the next StartSession.
	ErrSessionEnded = errors.New("pipeline: session ended")

	// ErrStaleFrame is returned when a frame's sequence number does not
	// advance past the last one seen in the current session.
	ErrStaleFrame = errors.New("pipeline: stale frame sequence")

	// ErrClosed is returned once the pipeline has been shut down.
	ErrClosed = errors.New("pipeline: closed")
)

// #endregion errors
