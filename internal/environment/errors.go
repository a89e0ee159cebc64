package environment

import "errors"

var (
	ErrNoManifest = errors.New("the docker compose file does not exist")
	ErrNoDomains  = errors.New("no domains are configured")
)

// ReportedError marks an error the user has already been shown.
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string {
	return e.Err.Error()
}

func (e *ReportedError) Unwrap() error {
	return e.Err
}

// IsReported reports whether err was already printed.
func IsReported(err error) bool {
	var r *ReportedError
	return errors.As(err, &r)
}
