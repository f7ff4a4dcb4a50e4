package callbacks

import (
	goerrors "github.com/goliatone/go-errors"
)

// TextCodeCallbackFailed marks errors returned by FallibleRegistry dispatch.
// Callback errors that already carry a go-errors text code keep theirs.
const TextCodeCallbackFailed = "CALLBACK_FAILED"

const (
	metaHandle   = "handle"
	metaPosition = "position"
	metaRegistry = "registry"
)

// callbackError wraps the error returned by the callback registered under
// handle, which ran at position within its dispatch round.
// The source stays in the unwrap chain. A go-errors source lends its category
// and text code to the wrapper; goerrors.Wrap would copy it instead.
func (l *list[F]) callbackError(source error, handle Handle, position int) error {
	l.log.Debug().
		Err(source).
		Uint64("handle", uint64(handle)).
		Int("position", position).
		Msg("callback failed")

	message := "callbacks: callback failed"
	category := goerrors.CategoryHandler
	textCode := TextCodeCallbackFailed

	var richErr *goerrors.Error
	if goerrors.As(source, &richErr) {
		message += ": " + richErr.Message
		category = richErr.Category
		if richErr.TextCode != "" {
			textCode = richErr.TextCode
		}
	}

	err := goerrors.New(message, category).
		WithTextCode(textCode).
		WithMetadata(map[string]any{
			metaHandle:   handle,
			metaPosition: position,
			metaRegistry: l.name,
		})
	err.Source = source
	return err
}

// FailedHandle returns the handle of the callback that produced err.
// For errors joined by DispatchAll it reports the first failure.
func FailedHandle(err error) (Handle, bool) {
	var richErr *goerrors.Error
	if !goerrors.As(err, &richErr) {
		return 0, false
	}
	handle, ok := richErr.Metadata[metaHandle].(Handle)
	return handle, ok
}
