package domain

type errString string

func (e errString) Error() string { return string(e) }

const (
    // ErrInvalidNumber means the numbering-plan resolver rejected the input.
    // Analysis aborts before any artifact generation.
    ErrInvalidNumber = errString("invalid phone number")

    // ErrResolverUnavailable means the numbering-plan collaborator itself
    // could not produce metadata. Fatal to the analysis; not retried here.
    ErrResolverUnavailable = errString("numbering-plan resolver unavailable")
)
