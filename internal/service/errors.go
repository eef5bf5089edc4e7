package service

// MailUnavailableError reports a failed mail-gateway preflight. It is
// distinct from validation and store errors so the handler can map it to a
// 503 response.
type MailUnavailableError struct {
	Err error
}

func (e *MailUnavailableError) Error() string {
	return "mail gateway unavailable: " + e.Err.Error()
}

func (e *MailUnavailableError) Unwrap() error {
	return e.Err
}
