package ipv6

import "github.com/go-prefixset/prefixset/internal/pserr"

func badLengthf(format string, args ...interface{}) *pserr.Error {
	return pserr.New(pserr.BadLength, format, args...)
}

func badRangef(format string, args ...interface{}) *pserr.Error {
	return pserr.New(pserr.BadRange, format, args...)
}

func parseErrorf(format string, args ...interface{}) *pserr.Error {
	return pserr.New(pserr.ParseError, format, args...)
}
