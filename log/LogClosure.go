package log

// LogClosure defers building an expensive log argument until the logger
// actually formats it.
type LogClosure func() string

func (c LogClosure) String() string {
	return c()
}

func InitLogClosure(c func() string) LogClosure {
	return LogClosure(c)
}
