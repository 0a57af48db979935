package content

type ResultKind int

const (
	ResultFailure ResultKind = iota
	ResultText
	ResultImage
)

func (k ResultKind) String() string {
	switch k {
	case ResultText:
		return "text"
	case ResultImage:
		return "image"
	default:
		return "failure"
	}
}

// Result is the outcome of one load attempt. Value holds the fact text or the
// image reference. Err is kept for logging only; consumers branch on Kind.
type Result struct {
	Kind  ResultKind
	Value string
	Err   error
}

func Text(s string) Result {
	return Result{Kind: ResultText, Value: s}
}

func Image(ref string) Result {
	return Result{Kind: ResultImage, Value: ref}
}

func Failure(err error) Result {
	return Result{Kind: ResultFailure, Err: err}
}
