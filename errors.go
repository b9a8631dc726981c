package mailop

import "errors"

var (
	ErrInvalidBody     = errors.New("mailop: payload body must be HTMLBody or TemplateBody")
	ErrUnsupportedBody = errors.New("mailop: mail service does not support this body")
	ErrShutdownTimeout = errors.New("mailop: in-flight sends did not finish before shutdown deadline")
)
